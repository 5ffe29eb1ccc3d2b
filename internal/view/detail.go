package view

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog/recommend"
	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
	"github.com/amankumarsingh77/streamscale-catalog/internal/querystate"
	"github.com/amankumarsingh77/streamscale-catalog/internal/render"
)

const (
	NotFoundTitle = "Video not found"
	NotFoundHint  = "Check the link or go back to the home page."
	ErrorTitle    = "Something went wrong"

	metaSeparator = "  •  "
)

// Player is what the detail view shows for a resolved video.
type Player struct {
	Title        string
	Source       string
	Poster       string
	DownloadHref string
	OpenHref     string
	Meta         string
}

// NewPlayer builds the player presentation of v.
func NewPlayer(v models.Video) Player {
	var parts []string
	if v.DurationFormatted != "" {
		parts = append(parts, "Duration: "+v.DurationFormatted)
	}
	if v.Width != nil && v.Height != nil && *v.Width != 0 && *v.Height != 0 {
		parts = append(parts, "Resolution: "+strconv.Itoa(*v.Width)+"×"+strconv.Itoa(*v.Height))
	}
	if v.SizeFormatted != "" {
		parts = append(parts, "File size: "+v.SizeFormatted)
	}
	return Player{
		Title:        v.Title,
		Source:       v.URL,
		Poster:       v.Thumbnail,
		DownloadHref: v.URL,
		OpenHref:     v.URL,
		Meta:         strings.Join(parts, metaSeparator),
	}
}

type DetailView interface {
	ShowPlayer(p Player)
	ShowNotFound(title, hint string)
	ShowError(title, msg string)
}

type Detail struct {
	view     DetailView
	renderer *render.Renderer
	rng      *rand.Rand
	count    int

	id      string
	hasID   bool
	current *models.Video
}

// NewDetail wires a detail controller. renderer materializes the
// recommendations and should batch at least count entries.
func NewDetail(v DetailView, renderer *render.Renderer, rng *rand.Rand, count int) *Detail {
	if count <= 0 {
		count = recommend.DefaultCount
	}
	return &Detail{view: v, renderer: renderer, rng: rng, count: count}
}

// Init reads the requested id from the page query string.
func (d *Detail) Init(rawQuery string) {
	d.id, d.hasID = querystate.DetailID(rawQuery)
}

func (d *Detail) Loaded(videos []models.Video, err error) {
	if err != nil {
		d.view.ShowError(ErrorTitle, err.Error())
		return
	}
	for i := range videos {
		if d.hasID && videos[i].ID == d.id {
			d.current = &videos[i]
			break
		}
	}
	if d.current == nil {
		d.view.ShowNotFound(NotFoundTitle, NotFoundHint)
		return
	}
	d.view.ShowPlayer(NewPlayer(*d.current))
	d.renderer.Reset(recommend.Pick(videos, d.current.ID, d.count, d.rng))
}

// Current is the resolved video, or nil.
func (d *Detail) Current() *models.Video { return d.current }
