// SPDX-License-Identifier: MIT
// Package builder provides label schemes for generated nodes.
package builder

import (
	"fmt"
	"strconv"
)

// LabelFn generates a node label from its zero-based local index within one
// constructor call. It must be pure: the same idx always yields the same label.
type LabelFn func(idx int) string

// DefaultLabelFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultLabelFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolLabelFn returns the uppercase Latin letter for idx in [0..25].
// Panics if idx is out of range.
func SymbolLabelFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolLabelFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnLabelFn returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnLabelFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnLabelFn: idx must be ≥ 0, got %d", idx))
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

// PrefixLabelFn returns prefix + decimal index, e.g. "v0", "v1", ...
func PrefixLabelFn(prefix string) LabelFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithDefaultLabels resets the label scheme to DefaultLabelFn.
func WithDefaultLabels() BuilderOption { return WithLabelScheme(DefaultLabelFn) }

// WithExcelColumnLabels sets the label scheme to ExcelColumnLabelFn.
// Unlike SymbolLabelFn it never runs out of letters.
func WithExcelColumnLabels() BuilderOption { return WithLabelScheme(ExcelColumnLabelFn) }

// WithPrefixLabels sets the label scheme to PrefixLabelFn(prefix).
func WithPrefixLabels(prefix string) BuilderOption { return WithLabelScheme(PrefixLabelFn(prefix)) }
