package repository

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog"
)

// ObjectGetter is the part of *s3.Client the catalog needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3Source struct {
	client ObjectGetter
	bucket string
	key    string
}

func NewS3Source(client ObjectGetter, bucket, key string) catalog.Source {
	return &s3Source{client: client, bucket: bucket, key: key}
}

func (s *s3Source) Name() string { return "s3" }

func (s *s3Source) Fetch(ctx context.Context) ([]byte, error) {
	res, err := s.client.GetObject(
		ctx,
		&s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(s.key),
		},
	)
	if err != nil {
		return nil, errors.Wrapf(err, "s3Source.Fetch.GetObject %s/%s", s.bucket, s.key)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxDocumentBytes))
	if err != nil {
		return nil, errors.Wrap(err, "s3Source.Fetch.ReadAll")
	}
	return body, nil
}
