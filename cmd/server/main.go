package main

import (
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	goredis "github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/amankumarsingh77/streamscale-catalog/internal/config"
	"github.com/amankumarsingh77/streamscale-catalog/internal/server"
	"github.com/amankumarsingh77/streamscale-catalog/pkg/db/aws"
	"github.com/amankumarsingh77/streamscale-catalog/pkg/db/postgres"
	"github.com/amankumarsingh77/streamscale-catalog/pkg/db/redis"
	"github.com/amankumarsingh77/streamscale-catalog/pkg/logger"
)

func main() {
	log.Println("Starting catalog server")
	_ = godotenv.Load()

	cfgFile, err := config.LoadConfig(config.GetConfigPath(os.Getenv("config")))
	if err != nil {
		log.Fatalf("LoadConfig: %v", err)
	}
	cfg, err := config.ParseConfig(cfgFile)
	if err != nil {
		log.Fatalf("ParseConfig: %v", err)
	}

	appLogger := logger.NewApiLogger(cfg)
	appLogger.InitLogger()
	appLogger.Infof("AppVersion: %s, LogLevel: %s, Mode: %s, CatalogSource: %s",
		cfg.Server.AppVersion, cfg.Logger.Level, cfg.Server.Mode, cfg.Catalog.Source)

	var psqlDB *sqlx.DB
	if cfg.Catalog.Source == "postgres" {
		psqlDB, err = postgres.NewPsqlDB(cfg)
		if err != nil {
			appLogger.Fatalf("could not connect to postgres: %s", err)
		}
		appLogger.Infof("postgres connected, status: %#v", psqlDB.Stats())
		defer psqlDB.Close()
	}

	// Redis is optional: without it the http source simply skips revalidation.
	var redisClient *goredis.Client
	if cfg.Catalog.Source == "http" && cfg.Redis.RedisAddr != "" {
		redisClient, err = redis.NewRedisClient(cfg)
		if err != nil {
			appLogger.Warnf("could not connect to redis, continuing without revalidation: %s", err)
		} else {
			appLogger.Infof("redis connected")
			defer redisClient.Close()
		}
	}

	var s3Client *s3.Client
	if cfg.Catalog.Source == "s3" {
		s3Client, err = aws.NewAWSClient(cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.AccessKey, cfg.S3.SecretKey)
		if err != nil {
			appLogger.Fatalf("could not create s3 client: %s", err)
		}
	}

	s := server.NewServer(cfg, psqlDB, redisClient, s3Client, appLogger)
	if err = s.Run(); err != nil {
		appLogger.Errorf("server stopped: %s", err)
	}
}
