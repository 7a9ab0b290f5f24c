// SPDX-License-Identifier: MIT

package fol2circuit

import "strconv"

// SymbolTable is a bidirectional name<->[Address] mapping, embedded in every
// [Tree]. It backs variable ids, predicate ids, and grounded-atom ids alike:
// whoever allocates an id decides what it means, the table only remembers
// the name, if any.
//
// Apart from [SymbolTable.CopyFrom], which replaces the whole table, entries
// are append-only: names are never renamed and addresses are never
// reused once assigned (contrast with [Tree.Remove], which does reuse node
// slots — the symbol table and the node arena are independent address
// spaces that happen to share the [Address] type).
//
// The zero value is an empty, usable table.
type SymbolTable struct {
	names []*string      // nil entry means anonymous
	index map[string]Address
}

// AddNamed returns the address of name, allocating a fresh one if this is
// the first time name has been seen. Idempotent: calling it twice with the
// same name returns the same address both times.
func (t *SymbolTable) AddNamed(name string) Address {
	if t.index == nil {
		t.index = make(map[string]Address)
	}
	if a, ok := t.index[name]; ok {
		return a
	}
	a := AddressOf(len(t.names))
	n := name
	t.names = append(t.names, &n)
	t.index[name] = a
	return a
}

// AddAnon always allocates a fresh address with no reverse-lookable name.
func (t *SymbolTable) AddAnon() Address {
	a := AddressOf(len(t.names))
	t.names = append(t.names, nil)
	return a
}

// Get returns the address previously bound to name by [SymbolTable.AddNamed],
// or [NoAddress] if name was never added.
func (t *SymbolTable) Get(name string) Address {
	if t.index == nil {
		return NoAddress
	}
	if a, ok := t.index[name]; ok {
		return a
	}
	return NoAddress
}

// NameOf returns the name bound to id, if any. Anonymous entries and
// out-of-range ids both report ok == false.
func (t *SymbolTable) NameOf(id Address) (name string, ok bool) {
	if id.IsNone() || id.Int() >= len(t.names) {
		return "", false
	}
	p := t.names[id.Int()]
	if p == nil {
		return "", false
	}
	return *p, true
}

// NumNamed returns the total number of entries in the table — named and
// anonymous alike. This is the "n" used throughout the enumerator:
// the number of distinct variables a tree's assignments range over.
func (t *SymbolTable) NumNamed() int { return len(t.names) }

// CopyFrom replaces t's entries with a verbatim copy of other's: same
// addresses, same names, same anonymous slots. Used by compilers (nnf,
// compile.PropToCircuit) that build a fresh destination [Tree] but need
// its symbol-table addresses to line up one-to-one with the source's, so
// a [Node]'s Value.ID keeps meaning the same variable across both trees
// without re-interning.
func (t *SymbolTable) CopyFrom(other *SymbolTable) {
	t.names = make([]*string, len(other.names))
	t.index = make(map[string]Address, len(other.index))
	for i, p := range other.names {
		if p == nil {
			continue
		}
		n := *p
		t.names[i] = &n
		t.index[n] = AddressOf(i)
	}
}

// DisplayName formats id for output. If id has a bound name, that name is
// returned verbatim. Otherwise the deterministic fallback "x<i+1>" is used,
// matching the reference encoding so anonymous variables still print
// reproducibly.
func (t *SymbolTable) DisplayName(id Address) string {
	if name, ok := t.NameOf(id); ok {
		return name
	}
	return "x" + strconv.Itoa(id.Int()+1)
}
