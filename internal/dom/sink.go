//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/amankumarsingh77/streamscale-catalog/internal/lazyload"
	"github.com/amankumarsingh77/streamscale-catalog/internal/render"
)

// CardSink appends rendered cards to a container element.
type CardSink struct {
	root js.Value
	html *render.HTMLSink
}

var _ render.Sink = (*CardSink)(nil)

func NewCardSink(root js.Value) *CardSink {
	catchImageErrors(root)
	return &CardSink{root: root, html: render.NewHTMLSink()}
}

func (s *CardSink) Clear() {
	s.root.Set("innerHTML", "")
}

func (s *CardSink) Append(cards []render.Card) []lazyload.Image {
	s.html.Clear()
	s.html.Append(cards)
	if err := s.html.Err(); err != nil {
		js.Global().Get("console").Call("error", "render cards: "+err.Error())
		return nil
	}

	children := s.root.Get("children")
	before := children.Length()
	s.root.Call("insertAdjacentHTML", "beforeend", s.html.String())

	imgs := make([]lazyload.Image, 0, len(cards))
	for i := before; i < children.Length(); i++ {
		img := children.Index(i).Call("querySelector", "img.thumb")
		if img.Truthy() {
			imgs = append(imgs, &Image{el: img})
		}
	}
	return imgs
}
