package analyze

import (
	"tenet/internal/source"
)

// SymbolKind classifies top-level declarations.
type SymbolKind uint8

const (
	SymbolFunction SymbolKind = iota
	SymbolVariable
)

// Symbol is one resolved top-level name.
type Symbol struct {
	Name        source.StringID
	Kind        SymbolKind
	ReturnsVoid bool // functions only: declared return type carries no value
	Span        source.Span
}

// SymbolTable indexes the top-level declarations of one translation
// unit. The checks treat C file scope as flat: redeclaring a name
// overwrites the earlier entry, so the last declaration wins.
type SymbolTable struct {
	byName map[source.StringID]Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[source.StringID]Symbol)}
}

// Register stores sym, replacing any previous declaration of the name.
func (st *SymbolTable) Register(sym Symbol) {
	if sym.Name == source.NoStringID {
		return
	}
	st.byName[sym.Name] = sym
}

// Lookup returns the symbol declared under name, if any.
func (st *SymbolTable) Lookup(name source.StringID) (Symbol, bool) {
	sym, ok := st.byName[name]
	return sym, ok
}

// Len reports how many names are declared.
func (st *SymbolTable) Len() int {
	return len(st.byName)
}
