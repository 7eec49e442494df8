package mock

import "github.com/fwojciec/prospect"

var _ prospect.Strategy = (*Strategy)(nil)

// Strategy is a mock implementation of prospect.Strategy.
type Strategy struct {
	NameFn    func() string
	ExtractFn func(page *prospect.RawPage) []prospect.Candidate
}

func (s *Strategy) Name() string {
	return s.NameFn()
}

func (s *Strategy) Extract(page *prospect.RawPage) []prospect.Candidate {
	return s.ExtractFn(page)
}
