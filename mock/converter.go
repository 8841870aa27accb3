package mock

import "github.com/Bluscream/acedocs"

var _ acedocs.Converter = (*Converter)(nil)

// Converter is a mock implementation of acedocs.Converter.
type Converter struct {
	ConvertFn func(html, pageURL string) (string, error)
}

func (c *Converter) Convert(html, pageURL string) (string, error) {
	return c.ConvertFn(html, pageURL)
}
