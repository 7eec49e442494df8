package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/prospect/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddIfNew(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.True(t, f.AddIfNew("https://acme.com/team"))
	assert.False(t, f.AddIfNew("https://acme.com/team"))
	assert.True(t, f.AddIfNew("https://acme.com/about"))
	assert.True(t, f.Test("https://acme.com/team"))
	assert.False(t, f.Test("https://acme.com/careers"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	assert.Equal(t, uint(0), f.EstimatedCount())

	f.AddIfNew("https://acme.com/team")
	f.AddIfNew("https://acme.com/about")
	f.AddIfNew("https://acme.com/contact")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)
	for i := range numItems {
		f.AddIfNew(fmt.Sprintf("https://acme.com/added/%d", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Test(fmt.Sprintf("https://acme.com/notadded/%d", i)) {
			falsePositives++
		}
	}

	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
