package builder

import (
	"fmt"
	"strconv"
)

// SymbolNumberIDFn returns prefix followed by the decimal index: "C0", "C1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnIDFn names cities like spreadsheet columns: "A".."Z", "AA", "AB", ...
// Alphabetical order of the names matches index order for idx < 26.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
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

// WithSymbNumb is WithIDScheme(SymbolNumberIDFn(prefix)).
func WithSymbNumb(prefix string) Option {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithExcelColumnIDs is WithIDScheme(ExcelColumnIDFn).
func WithExcelColumnIDs() Option {
	return WithIDScheme(ExcelColumnIDFn)
}
