package index

import (
	"fmt"
	"strings"
)

// SymbolMap is a bidirectional mapping between vocabulary symbols and
// their integer indices. The seven reserved symbols always occupy
// indices [0, NumSpecial); user symbols follow in the order given at
// construction.
type SymbolMap struct {
	symbols []string
	indices map[string]int32
}

// NewSymbolMap builds a SymbolMap over the given user vocabulary. The
// reserved symbols are prepended automatically. If a symbol occurs more
// than once (including a user symbol that collides with a reserved
// one), the first occurrence keeps its index.
func NewSymbolMap(vocabulary []string) *SymbolMap {
	symbols := make([]string, 0, NumSpecial+len(vocabulary))
	symbols = append(symbols, reservedSymbols[:]...)
	symbols = append(symbols, vocabulary...)
	return newSymbolMapFromSymbols(symbols)
}

// newSymbolMapFromSymbols wraps an already-complete symbol list,
// reserved prefix included. Used when rebuilding a map from a
// serialized index.
func newSymbolMapFromSymbols(symbols []string) *SymbolMap {
	m := &SymbolMap{
		symbols: symbols,
		indices: make(map[string]int32, len(symbols)),
	}
	for i, symbol := range symbols {
		if _, ok := m.indices[symbol]; ok {
			continue
		}
		m.indices[symbol] = int32(i) //nolint:gosec // G115: vocabulary size < 2^31
	}
	return m
}

// Index returns the index of symbol, or fallback when the symbol is
// not in the map.
func (m *SymbolMap) Index(symbol string, fallback int32) int32 {
	if i, ok := m.indices[symbol]; ok {
		return i
	}
	return fallback
}

// Symbol returns the symbol stored at index i.
func (m *SymbolMap) Symbol(i int32) (string, error) {
	if i < 0 || int(i) >= len(m.symbols) {
		return "", &OutOfRangeError{Index: i, Size: len(m.symbols)}
	}
	return m.symbols[i], nil
}

// Len returns the total number of symbols, reserved prefix included.
func (m *SymbolMap) Len() int {
	return len(m.symbols)
}

// String renders every symbol in index order, quoted and
// comma-separated.
func (m *SymbolMap) String() string {
	var b strings.Builder
	for i, symbol := range m.symbols {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", symbol)
	}
	return b.String()
}
