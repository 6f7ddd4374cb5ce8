package approx

import (
	"fmt"
	"math"

	"github.com/patrickmn/go-cache"
)

// Memo caches the results of Eval for an Approximation. The cache is flushed
// whenever the Approximation changes.
//
// Cached results do not record Neville error estimates.
type Memo struct {
	ap  *Approximation
	c   *cache.Cache
	gen uint64
}

// NewMemo creates a Memo for ap.
func NewMemo(ap *Approximation) *Memo {
	return &Memo{ap: ap, c: cache.New(cache.NoExpiration, 0), gen: ap.gen}
}

func memoKey(x float64, ext Extrapolation) string {
	return fmt.Sprintf("%d:%x", int(ext), math.Float64bits(x))
}

// Eval returns the cached value of Eval(x, ext), computing it on a miss.
// Errors are not cached.
func (m *Memo) Eval(x float64, ext Extrapolation) (float64, error) {
	if m.gen != m.ap.gen {
		m.c.Flush()
		m.gen = m.ap.gen
	}

	key := memoKey(x, ext)
	if y, ok := m.c.Get(key); ok {
		return y.(float64), nil
	}

	y, err := m.ap.Eval(x, ext)
	if err != nil {
		return 0, err
	}
	m.c.Set(key, y, cache.NoExpiration)
	return y, nil
}

// sampleMemo returns the Memo used for finite difference samples, creating
// it on first use.
func (ap *Approximation) sampleMemo() *Memo {
	if ap.samples == nil {
		ap.samples = NewMemo(ap)
	}
	return ap.samples
}

// Len returns the number of cached values.
func (m *Memo) Len() int { return m.c.ItemCount() }
