package mock

import "github.com/Bluscream/acedocs"

var _ acedocs.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of acedocs.Renderer.
type Renderer struct {
	RenderFn func(html string, opts acedocs.RenderOptions) string
}

func (r *Renderer) Render(html string, opts acedocs.RenderOptions) string {
	return r.RenderFn(html, opts)
}
