// Package render materializes the visible list into a sink in bounded batches.
//
// The Renderer holds the only cursor of the pipeline: index counts visible
// entries already handed to the sink. Reset replaces the visible list and
// rewinds the cursor; RenderMore only ever moves it forward.
package render

import (
	"github.com/amankumarsingh77/streamscale-catalog/internal/lazyload"
	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
)

const BatchSize = 30

// Sink receives materialized cards. Append returns the image placeholders it
// created so the renderer can hand them to the lazy loader.
type Sink interface {
	Clear()
	Append(cards []Card) []lazyload.Image
}

// Registrar accepts freshly created placeholders. *lazyload.Loader implements it.
type Registrar interface {
	Register(imgs ...lazyload.Image)
}

type Renderer struct {
	sink       Sink
	images     Registrar
	batch      int
	detailPath string

	visible []models.Video
	index   int
}

// New builds a renderer; batch <= 0 means BatchSize. images may be nil.
func New(sink Sink, images Registrar, batch int, detailPath string) *Renderer {
	if batch <= 0 {
		batch = BatchSize
	}
	return &Renderer{sink: sink, images: images, batch: batch, detailPath: detailPath}
}

// Reset switches to a new visible list: clears the sink, rewinds to 0 and
// renders the first batch.
func (r *Renderer) Reset(visible []models.Video) int {
	r.visible = visible
	r.index = 0
	r.sink.Clear()
	return r.RenderMore()
}

// RenderMore materializes [index, min(index+batch, len)) and returns how many
// entries it added. It is a no-op once the visible list is exhausted.
func (r *Renderer) RenderMore() int {
	if r.index >= len(r.visible) {
		return 0
	}
	end := min(r.index+r.batch, len(r.visible))
	cards := Cards(r.visible[r.index:end], r.detailPath)
	imgs := r.sink.Append(cards)
	if r.images != nil && len(imgs) > 0 {
		r.images.Register(imgs...)
	}
	n := end - r.index
	r.index = end
	return n
}

func (r *Renderer) Index() int { return r.index }

func (r *Renderer) Len() int { return len(r.visible) }

func (r *Renderer) HasMore() bool { return r.index < len(r.visible) }
