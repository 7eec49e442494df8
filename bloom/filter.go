// Package bloom provides page URL deduplication for batch runs using Bloom
// filters. Crawl exports routinely list the same team page under trailing
// slashes, tracking params, and plain repeats; a Bloom filter keeps the skip
// check O(1) in memory even for very large exports.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for page URL deduplication. It is not safe
// for concurrent use; the batch processor consults it from the dispatch
// goroutine only.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// AddIfNew adds a URL and reports whether it was new. A false return means
// the URL was (probably) seen before; false positives are possible, false
// negatives are not, so a duplicate page is never processed twice while a
// fresh page is very rarely skipped.
func (f *Filter) AddIfNew(url string) bool {
	return !f.f.TestAndAddString(url)
}

// Test returns true if the URL might be in the filter.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
