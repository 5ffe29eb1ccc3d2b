// Package web embeds the page templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the asset tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// SortOption is one entry of the sort control.
type SortOption struct {
	Value    string
	Label    string
	Selected bool
}

// ClientSettings are handed to the browser client as data-* attributes.
type ClientSettings struct {
	DocumentPath     string
	DetailPath       string
	Locale           string
	BatchSize        int
	ImageMarginPx    int
	ScrollMarginPx   int
	PollThresholdPx  int
	SearchDebounceMs int
}

type PageData struct {
	Title       string
	AppVersion  string
	Query       string
	SortOptions []SortOption
	Client      ClientSettings
}

// TemplateRenderer implements echo.Renderer over the embedded templates.
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}
