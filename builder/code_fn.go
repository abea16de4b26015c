// SPDX-License-Identifier: MIT

// Package builder provides the airport-code schemes used by constructors.
package builder

import (
	"fmt"
	"strconv"
)

// CodeFn generates an airport code from its zero-based index.
// It must be pure and deterministic. Panics indicate programmer error.
type CodeFn func(idx int) string

// DefaultCodeFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultCodeFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolCodeFn returns the uppercase letter for idx in [0..25].
// Panics if idx is out of range.
func SymbolCodeFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolCodeFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnCodeFn returns the Excel-style column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnCodeFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnCodeFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// IATACodeFn returns a three-letter code in base 26, e.g. 0→"AAA",
// 1→"AAB", 26→"ABA". Panics if idx is outside [0, 26³).
func IATACodeFn(idx int) string {
	const span = 26 * 26 * 26
	if idx < 0 || idx >= span {
		panic(fmt.Sprintf("IATACodeFn: idx must be in [0,%d), got %d", span, idx))
	}

	return string([]rune{
		rune('A' + idx/(26*26)),
		rune('A' + (idx/26)%26),
		rune('A' + idx%26),
	})
}
