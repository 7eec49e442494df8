package mock

import "github.com/fwojciec/prospect"

var _ prospect.Engine = (*Engine)(nil)

// Engine is a mock implementation of prospect.Engine.
type Engine struct {
	ExtractFn func(page *prospect.RawPage) []prospect.Candidate
}

func (e *Engine) Extract(page *prospect.RawPage) []prospect.Candidate {
	return e.ExtractFn(page)
}
