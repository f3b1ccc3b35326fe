package bloom_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/scrape/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("https://arxiv.org/abs/2412.00001"))

	f.Add("https://arxiv.org/abs/2412.00001")

	assert.True(t, f.Test("https://arxiv.org/abs/2412.00001"))
	assert.False(t, f.Test("https://arxiv.org/abs/2412.00002"))
}

func TestFilter_TreatsURLVariantsAsOne(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	f.Add("https://arxiv.org/abs/2412.00001")

	assert.True(t, f.Test("http://arxiv.org/abs/2412.00001"))
	assert.True(t, f.Test("https://ArXiv.org/abs/2412.00001#S2"))
	assert.True(t, f.Test("  https://arxiv.org/abs/2412.00001 "))
	assert.False(t, f.Test("https://arxiv.org/ABS/2412.00001"))
}

func TestFilter_TestAndAdd(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.TestAndAdd("https://arxiv.org/list/cs.AI/new"))
	assert.True(t, f.TestAndAdd("https://arxiv.org/list/cs.AI/new"))
	assert.True(t, f.TestAndAdd("http://arxiv.org/list/cs.AI/new#dlpage"))
}

func TestFilter_TestAndAddConcurrent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	var wg sync.WaitGroup
	var mu sync.Mutex
	firsts := 0
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !f.TestAndAdd("https://arxiv.org/abs/2412.00001") {
				mu.Lock()
				firsts++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, firsts)
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add("https://arxiv.org/abs/1")
	f.Add("https://arxiv.org/abs/2")
	f.Add("https://arxiv.org/abs/3")
	f.Add("http://arxiv.org/abs/3#again")

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
		f.Add(fmt.Sprintf("https://arxiv.org/abs/2412.%05d", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Test(fmt.Sprintf("https://arxiv.org/html/2501.%05d", i)) {
			falsePositives++
		}
	}

	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://arxiv.org/abs/1", bloom.Canonical("HTTP://ARXIV.org/abs/1#x"))
	assert.Equal(t, "https://example.com/a?b=1", bloom.Canonical(" https://example.com/a?b=1 "))
	assert.Equal(t, "/relative", bloom.Canonical("/relative#frag"))
}
