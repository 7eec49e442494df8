package mock

import "github.com/fwojciec/prospect"

var _ prospect.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of prospect.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*prospect.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*prospect.ExtractResult, error) {
	return e.ExtractFn(html)
}
