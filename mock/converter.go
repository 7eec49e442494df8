package mock

import "github.com/fwojciec/prospect"

var _ prospect.Converter = (*Converter)(nil)

// Converter is a mock implementation of prospect.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
