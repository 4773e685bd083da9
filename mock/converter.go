package mock

import "github.com/fwojciec/docreview"

var _ docreview.Converter = (*Converter)(nil)

// Converter is a mock implementation of docreview.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
