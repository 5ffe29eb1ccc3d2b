package render

import (
	"bytes"
	"html/template"

	"github.com/amankumarsingh77/streamscale-catalog/internal/lazyload"
)

const cardHTML = `{{define "card"}}<article class="card" data-id="{{.ID}}">
  <a class="thumb-wrap" href="{{.Href}}">
    <img class="thumb lazy" alt="{{.ImageAlt}}" data-src="{{.LazySrc}}" decoding="async">
    {{- if .DurationBadge}}
    <span class="badge duration">{{.DurationBadge}}</span>
    {{- end}}
    {{- if .ResolutionBadge}}
    <span class="badge resolution">{{.ResolutionBadge}}</span>
    {{- end}}
  </a>
  <div class="info">
    <a class="title" href="{{.Href}}">{{.Title}}</a>
    <div class="meta"><span class="length">{{.Length}}</span><span class="size">{{.Size}}</span></div>
  </div>
</article>
{{end}}`

var cardTemplate = template.Must(template.New("cards").Parse(cardHTML))

// HTMLSink renders cards as server-side markup. Images stay inert
// (data-src only); the browser-side loader picks them up, so Append reports
// no placeholders.
type HTMLSink struct {
	buf bytes.Buffer
	err error
}

func NewHTMLSink() *HTMLSink {
	return &HTMLSink{}
}

func (s *HTMLSink) Clear() {
	s.buf.Reset()
	s.err = nil
}

func (s *HTMLSink) Append(cards []Card) []lazyload.Image {
	for _, c := range cards {
		if s.err != nil {
			return nil
		}
		s.err = cardTemplate.ExecuteTemplate(&s.buf, "card", c)
	}
	return nil
}

// Err reports the first template failure since the last Clear.
func (s *HTMLSink) Err() error { return s.err }

func (s *HTMLSink) String() string { return s.buf.String() }
