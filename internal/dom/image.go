//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/amankumarsingh77/streamscale-catalog/internal/lazyload"
)

// Image is an <img> placeholder carrying its source in data-src.
type Image struct {
	el js.Value
}

var _ lazyload.Image = (*Image)(nil)

func (i *Image) JSValue() js.Value { return i.el }

func (i *Image) LazySource() string {
	v := i.el.Call("getAttribute", "data-src")
	if v.IsNull() {
		return ""
	}
	return v.String()
}

func (i *Image) SetSource(src string) {
	i.el.Set("src", src)
	i.el.Call("removeAttribute", "data-src")
	i.el.Get("classList").Call("remove", "lazy")
}

func (i *Image) MarkFallback() {
	i.el.Get("classList").Call("add", "fallback")
}

// catchImageErrors installs one capturing error listener on root so a failed
// thumbnail only marks itself.
func catchImageErrors(root js.Value) {
	root.Call("addEventListener", "error", js.FuncOf(func(_ js.Value, args []js.Value) any {
		target := args[0].Get("target")
		if target.Get("tagName").String() == "IMG" {
			lazyload.HandleError(&Image{el: target})
		}
		return nil
	}), true)
}
