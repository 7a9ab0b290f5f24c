// SPDX-License-Identifier: MIT

package fol2circuit

import "testing"

func TestDomainHas(t *testing.T) {
	d := Domain{Vars: []Address{AddressOf(1), AddressOf(3)}, Card: 2}
	if !d.Has(AddressOf(1)) {
		t.Fatal("Has(#1) = false, want true")
	}
	if d.Has(AddressOf(2)) {
		t.Fatal("Has(#2) = true, want false")
	}
}

func TestDomainSetLookup(t *testing.T) {
	people := Domain{Vars: []Address{AddressOf(0), AddressOf(1)}, Card: 4}
	colors := Domain{Vars: []Address{AddressOf(2)}, Card: 3}
	ds := NewDomainSet([]Domain{people, colors})

	got, ok := ds.Lookup(AddressOf(1))
	if !ok || got.Card != 4 {
		t.Fatalf("Lookup(#1) = (%v, %v), want the people domain", got, ok)
	}

	got, ok = ds.Lookup(AddressOf(2))
	if !ok || got.Card != 3 {
		t.Fatalf("Lookup(#2) = (%v, %v), want the colors domain", got, ok)
	}

	if _, ok := ds.Lookup(AddressOf(99)); ok {
		t.Fatal("Lookup(#99) reported ok, want false")
	}
}

func TestDomainSetDomainIndexDistinguishesDomains(t *testing.T) {
	people := Domain{Vars: []Address{AddressOf(0)}, Card: 4}
	colors := Domain{Vars: []Address{AddressOf(1)}, Card: 4} // same cardinality, different domain
	ds := NewDomainSet([]Domain{people, colors})

	i0, ok0 := ds.DomainIndex(AddressOf(0))
	i1, ok1 := ds.DomainIndex(AddressOf(1))
	if !ok0 || !ok1 {
		t.Fatalf("DomainIndex lookups failed: (%v,%v), (%v,%v)", i0, ok0, i1, ok1)
	}
	if i0 == i1 {
		t.Fatalf("DomainIndex(#0) == DomainIndex(#1) == %d, want distinct domains despite equal cardinality", i0)
	}
}
