// SPDX-License-Identifier: MIT
// Package: fgraph/builder
//
// id_fn.go - value schemes: how a constructor names the nodes it appends.
//
// A scheme is a total function over its domain: an index outside that domain
// yields ErrValueRange, which constructors surface as ErrConstructFailed
// before a single node is appended.

package builder

import (
	"fmt"
	"slices"
	"strconv"
)

// IDFn produces the value of the node at a constructor-local, zero-based index.
// It must be pure: the same idx always yields the same value. Graph identities
// are assigned by core and are unrelated to these values.
type IDFn func(idx int) (string, error)

// symbolLetters is the size of the SymbolIDFn alphabet.
const symbolLetters = 26

// Registered scheme names, accepted by LookupScheme.
const (
	SchemeDecimal = "decimal"
	SchemeSymbol  = "symbol"
	SchemeExcel   = "excel"
	SchemeHex     = "hex"
	SchemeAlnum   = "alnum"
)

var schemes = map[string]IDFn{
	SchemeDecimal: DefaultIDFn,
	SchemeSymbol:  SymbolIDFn,
	SchemeExcel:   ExcelColumnIDFn,
	SchemeHex:     HexIDFn,
	SchemeAlnum:   AlphanumericIDFn,
}

// LookupScheme returns the registered scheme called name.
func LookupScheme(name string) (IDFn, error) {
	fn, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownScheme, name, SchemeNames())
	}
	return fn, nil
}

// SchemeNames lists the registered scheme names in ascending order.
func SchemeNames() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// rangeErr reports idx outside [0, limit); limit 0 means no upper bound.
func rangeErr(scheme string, idx, limit int) error {
	if limit > 0 {
		return fmt.Errorf("%s: index %d outside [0,%d): %w", scheme, idx, limit, ErrValueRange)
	}
	return fmt.Errorf("%s: negative index %d: %w", scheme, idx, ErrValueRange)
}

// radix formats non-negative indices in base.
func radix(scheme string, base int) IDFn {
	return func(idx int) (string, error) {
		if idx < 0 {
			return "", rangeErr(scheme, idx, 0)
		}
		return strconv.FormatInt(int64(idx), base), nil
	}
}

// DefaultIDFn names nodes "0", "1", "2", ...
func DefaultIDFn(idx int) (string, error) { return radix(SchemeDecimal, 10)(idx) }

// HexIDFn names nodes in lowercase hexadecimal: "0" .. "9", "a" .. "f", "10", ...
func HexIDFn(idx int) (string, error) { return radix(SchemeHex, 16)(idx) }

// AlphanumericIDFn names nodes in base 36: "0" .. "9", "a" .. "z", "10", ...
func AlphanumericIDFn(idx int) (string, error) { return radix(SchemeAlnum, 36)(idx) }

// SymbolIDFn names nodes "A" .. "Z". It holds 26 values; larger blocks need
// ExcelColumnIDFn.
func SymbolIDFn(idx int) (string, error) {
	if idx < 0 || idx >= symbolLetters {
		return "", rangeErr(SchemeSymbol, idx, symbolLetters)
	}
	return string(rune('A' + idx)), nil
}

// ExcelColumnIDFn names nodes like spreadsheet columns: "A" .. "Z", "AA", "AB", ...
// (bijective base 26).
func ExcelColumnIDFn(idx int) (string, error) {
	if idx < 0 {
		return "", rangeErr(SchemeExcel, idx, 0)
	}
	var out []byte
	for n := idx + 1; n > 0; n = (n - 1) / symbolLetters {
		out = append(out, byte('A'+(n-1)%symbolLetters))
	}
	slices.Reverse(out)

	return string(out), nil
}

// SymbolNumberIDFn names nodes prefix+"0", prefix+"1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) (string, error) {
		if idx < 0 {
			return "", rangeErr("prefix "+strconv.Quote(prefix), idx, 0)
		}
		return prefix + strconv.Itoa(idx), nil
	}
}

// WithSymbNumb sets the value scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }

// WithDefaultIDs resets the value scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithSymbolIDs sets the value scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs sets the value scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithHexIDs sets the value scheme to HexIDFn.
func WithHexIDs() BuilderOption { return WithIDScheme(HexIDFn) }

// WithAlphanumericIDs sets the value scheme to AlphanumericIDFn.
func WithAlphanumericIDs() BuilderOption { return WithIDScheme(AlphanumericIDFn) }
