package symbols

import (
	"fmt"
	"unicode/utf8"
)

// Candidate is one palette entry awaiting a symbol. Symbol, when non-empty,
// is an externally provided suggestion (e.g. from a parsed chart file).
type Candidate struct {
	Symbol string
}

// Options controls assignment behaviour.
type Options struct {
	// HonorProvided keeps a candidate's own symbol when it is a valid,
	// unused pool-grade symbol. When false all suggestions are ignored.
	HonorProvided bool

	// StartOffset is the pool position where conflict resolution begins
	// scanning for the next unused symbol. Wraps around the pool.
	StartOffset int

	// Reject makes any invalid or duplicate provided symbol an error
	// instead of silently reassigning it.
	Reject bool
}

// Assign gives every candidate a unique symbol. Provided symbols are
// honoured per Options; everything else is drawn from the pool in order,
// starting at StartOffset. More candidates than pool entries is a hard
// error: the palette cannot be represented.
func Assign(candidates []Candidate, opts Options) ([]string, error) {
	if len(candidates) > PoolSize {
		return nil, fmt.Errorf("palette has %d entries but the symbol pool holds %d", len(candidates), PoolSize)
	}

	out := make([]string, len(candidates))
	used := make(map[rune]bool, len(candidates))

	// First pass: settle provided symbols so pool scanning knows what is
	// taken.
	for i, c := range candidates {
		if c.Symbol == "" {
			continue
		}
		r, ok := singleRune(c.Symbol)
		switch {
		case !ok || !Valid(r):
			if opts.Reject {
				return nil, fmt.Errorf("candidate %d: invalid symbol %q", i, c.Symbol)
			}
		case used[r]:
			if opts.Reject {
				return nil, fmt.Errorf("candidate %d: duplicate symbol %q", i, c.Symbol)
			}
		case opts.HonorProvided:
			out[i] = string(r)
			used[r] = true
		}
	}

	// Second pass: fill the rest from the pool, scanning from the offset.
	cursor := ((opts.StartOffset % PoolSize) + PoolSize) % PoolSize
	// With a wrapped scan a pool position can be visited at most twice.
	limit := 2 * PoolSize
	scanned := 0
	for i := range candidates {
		if out[i] != "" {
			continue
		}
		for scanned < limit && used[pool[cursor]] {
			cursor = (cursor + 1) % PoolSize
			scanned++
		}
		if scanned >= limit {
			return nil, fmt.Errorf("symbol pool exhausted after %d assignments", i)
		}
		r := pool[cursor]
		out[i] = string(r)
		used[r] = true
		cursor = (cursor + 1) % PoolSize
		scanned++
	}

	return out, nil
}

func singleRune(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, false
	}
	return r, true
}
