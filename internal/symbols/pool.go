// Package symbols manages the fixed pool of chart display symbols and their
// one-to-one assignment to palette entries.
package symbols

import (
	"fmt"
	"unicode"
)

// PoolSize is the number of symbols available for palette assignment. A
// palette can never need more entries than this.
const PoolSize = 490

// The pool is foundational: a malformed pool is a fatal startup error, not
// something to degrade around.
var pool = mustBuildPool()

// Pool returns a copy of the symbol pool, in assignment order.
func Pool() []rune {
	out := make([]rune, len(pool))
	copy(out, pool)
	return out
}

// Valid reports whether r may serve as a chart symbol: a single BMP code
// unit (no surrogates), not whitespace, control, format, or combining, not
// in the braille block, and not the soft hyphen.
func Valid(r rune) bool {
	if r > 0xFFFF {
		return false
	}
	if r >= 0xD800 && r <= 0xDFFF {
		return false
	}
	if r >= 0x2800 && r <= 0x28FF { // braille
		return false
	}
	if r == 0x00AD { // soft hyphen
		return false
	}
	if unicode.IsSpace(r) {
		return false
	}
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Cc, unicode.Cs) {
		return false
	}
	return true
}

// candidateRanges are scanned in order when building the pool: printable
// ASCII (minus backslash), Latin-1 supplement, Latin Extended-A, Greek,
// Cyrillic, then box drawing, block elements, and geometric shapes.
var candidateRanges = [][2]rune{
	{0x0021, 0x007E},
	{0x00A1, 0x00FF},
	{0x0100, 0x017F},
	{0x0370, 0x03FF},
	{0x0400, 0x04FF},
	{0x2500, 0x25FF},
}

func mustBuildPool() []rune {
	out := make([]rune, 0, PoolSize)
	seen := make(map[rune]bool, PoolSize)

	for _, rng := range candidateRanges {
		for r := rng[0]; r <= rng[1] && len(out) < PoolSize; r++ {
			if r == '\\' || seen[r] || !Valid(r) {
				continue
			}
			if !unicode.IsLetter(r) && !unicode.IsNumber(r) && !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
				continue
			}
			out = append(out, r)
			seen[r] = true
		}
	}

	if err := validatePool(out); err != nil {
		panic(fmt.Sprintf("symbols: %v", err))
	}
	return out
}

func validatePool(p []rune) error {
	if len(p) != PoolSize {
		return fmt.Errorf("pool has %d symbols, want %d", len(p), PoolSize)
	}
	seen := make(map[rune]bool, len(p))
	for i, r := range p {
		if seen[r] {
			return fmt.Errorf("duplicate symbol %q at pool position %d", r, i)
		}
		seen[r] = true
		if !Valid(r) {
			return fmt.Errorf("invalid symbol %q at pool position %d", r, i)
		}
	}
	return nil
}
