// SPDX-License-Identifier: MIT

// Package ground implements the Grounder: it discovers every distinct
// predicate appearing in a FOL tree, checks that each predicate's argument
// domains are consistent across all its occurrences, and allocates a named
// slot in a target arena for every grounding of every predicate.
package ground

import (
	"errors"
	"fmt"

	"github.com/gaissmai/fol2circuit"
	"github.com/gaissmai/fol2circuit/fol"
	"github.com/gaissmai/fol2circuit/propositional"
)

// Errors returned by [Build]; callers can pattern-match on the message as
// well as errors.Is.
var (
	ErrDomainMismatch   = errors.New("domains didn't match")
	ErrUnknownDomain    = errors.New("unknown domain")
	ErrArityMismatch    = errors.New("arguments don't match")
	ErrInvalidPredicate = errors.New("invalid predicate")
)

// Predicate is the grounding record for one predicate identifier: its
// argument domains in declared order, and the addresses of all of its
// groundings in the target arena, laid out as a row-major mixed-radix
// index: grounded[t] is "P(t0,...,tk-1)" where t decodes with t0 most
// significant.
type Predicate struct {
	ID       fol2circuit.Address
	Domains  []fol2circuit.Domain
	Grounded []fol2circuit.Address
}

// Count returns the total number of groundings: the product of this
// predicate's domain cardinalities.
func (p *Predicate) Count() int {
	n := 1
	for _, d := range p.Domains {
		n *= d.Card
	}
	return n
}

// GetID resolves argIdx — the chosen index into each argument position's
// domain, in declared order — to the address of the corresponding grounded
// atom. The offset arithmetic is seeded with an accumulator of 1 and folds
// domain cardinalities in reverse of their declared order, so it produces
// exactly the row-major offset used when the groundings were allocated —
// the same fold, run the same way, at both ends.
func (p *Predicate) GetID(argIdx []int) (fol2circuit.Address, error) {
	if len(argIdx) != len(p.Domains) {
		return fol2circuit.NoAddress, fmt.Errorf("ground: %w: predicate %s wants %d args, got %d",
			ErrArityMismatch, p.ID, len(p.Domains), len(argIdx))
	}

	offset := 0
	acc := 1
	for i := len(p.Domains) - 1; i >= 0; i-- {
		offset += argIdx[i] * acc
		acc *= p.Domains[i].Card
	}
	return p.Grounded[offset], nil
}

// Table is the Grounder's output: every predicate's grounding record,
// keyed by predicate identifier.
type Table struct {
	predicates map[fol2circuit.Address]*Predicate
}

// Predicate returns the grounding record for id, if the Grounder saw it.
func (t *Table) Predicate(id fol2circuit.Address) (*Predicate, bool) {
	p, ok := t.predicates[id]
	return p, ok
}

// occurrence records one sighting of a predicate application, for the
// cross-occurrence consistency check.
type occurrence struct {
	domainIdx []int // DomainSet index per argument position
}

// Build walks src's output in post-order, collects every predicate
// application, validates argument-domain consistency across occurrences,
// and allocates one named [propositional.Builder] leaf per grounding,
// through target — so every invariant the Builder enforces (back-pointer
// consistency) holds for grounded leaves exactly as it does for
// hand-built ones.
func Build(src *fol.Tree, domains *fol2circuit.DomainSet, target *propositional.Builder) (*Table, error) {
	t := &Table{predicates: make(map[fol2circuit.Address]*Predicate)}
	seen := make(map[fol2circuit.Address]occurrence) // predicate id -> first occurrence

	root := src.Output()
	if root.IsNone() {
		return t, nil
	}

	heads, err := collectHeads(src, root)
	if err != nil {
		return nil, err
	}

	for _, head := range heads {
		n := src.At(head)
		predID := n.Value.ID

		args, err := walkChain(src, head)
		if err != nil {
			return nil, err
		}

		domainIdx := make([]int, len(args))
		predDomains := make([]fol2circuit.Domain, len(args))
		for i, argVar := range args {
			idx, ok := domains.DomainIndex(argVar)
			if !ok {
				return nil, fmt.Errorf("ground: %w: predicate %s argument %d (variable %s)",
					ErrUnknownDomain, displayID(src, predID), i, displayID(src, argVar))
			}
			domainIdx[i] = idx
			d, _ := domains.Lookup(argVar)
			predDomains[i] = d
		}

		prior, ok := seen[predID]
		if !ok {
			seen[predID] = occurrence{domainIdx: domainIdx}

			grounded, err := allocate(displayID(src, predID), predDomains, target)
			if err != nil {
				return nil, err
			}
			t.predicates[predID] = &Predicate{ID: predID, Domains: predDomains, Grounded: grounded}
			continue
		}

		if len(prior.domainIdx) != len(domainIdx) {
			return nil, fmt.Errorf("ground: %w: predicate %s", ErrArityMismatch, displayID(src, predID))
		}
		for i := range domainIdx {
			if prior.domainIdx[i] != domainIdx[i] {
				return nil, fmt.Errorf("ground: %w: predicate %s argument %d", ErrDomainMismatch, displayID(src, predID), i)
			}
		}
	}

	return t, nil
}

// allocate names and appends one propositional Variable leaf per grounding
// of the predicate called name (its display name in the source tree), in
// row-major order — the same offset order [Predicate.GetID] decodes back.
func allocate(name string, domains []fol2circuit.Domain, target *propositional.Builder) ([]fol2circuit.Address, error) {
	count := 1
	for _, d := range domains {
		count *= d.Card
	}

	grounded := make([]fol2circuit.Address, count)
	idx := make([]int, len(domains))

	for t := 0; t < count; t++ {
		decode(t, domains, idx)
		grounded[t] = target.VarNamed(groundedName(name, idx))
	}
	return grounded, nil
}

// decode fills idx with the mixed-radix tuple for flat index t, t0 (idx[0])
// most significant, using the same seed-1-then-fold-in-reverse arithmetic
// as [Predicate.GetID] — see that doc for why this guarantees producer and
// consumer agree.
func decode(t int, domains []fol2circuit.Domain, idx []int) {
	for i := len(domains) - 1; i >= 0; i-- {
		c := domains[i].Card
		idx[i] = t % c
		t /= c
	}
}

func groundedName(predName string, idx []int) string {
	s := predName + "("
	for i, v := range idx {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d", v)
	}
	return s + ")"
}

// collectHeads returns every predicate-chain head in src, in first-
// occurrence (post-order) order.
func collectHeads(src *fol.Tree, root fol2circuit.Address) ([]fol2circuit.Address, error) {
	var heads []fol2circuit.Address

	var walk func(a fol2circuit.Address) error
	walk = func(a fol2circuit.Address) error {
		if a.IsNone() {
			return nil
		}
		n := src.At(a)
		switch n.Value.Kind {
		case fol.Predicate:
			if fol.IsPredicateHead(src, a) {
				heads = append(heads, a)
			}
			return nil // don't descend into the argument chain as if it were a sub-formula
		case fol.Not, fol.Universal, fol.Existential:
			return walk(n.Child(0))
		default: // And, Or
			if err := walk(n.Child(0)); err != nil {
				return err
			}
			return walk(n.Child(1))
		}
	}

	if err := walk(root); err != nil {
		return nil, err
	}
	return heads, nil
}

// walkChain follows the predicate's argument chain from head, validating
// that every link is itself Predicate-tagged (an invalid chain — any other
// node shape in an argument slot — is a Grounder-level error, not a
// panic: it can arise from malformed input built outside this package's
// own Builder).
func walkChain(src *fol.Tree, head fol2circuit.Address) ([]fol2circuit.Address, error) {
	var args []fol2circuit.Address
	cur := src.At(head).Child(0)
	for cur.IsSome() {
		n := src.At(cur)
		if n.Value.Kind != fol.Predicate {
			return nil, fmt.Errorf("ground: %w: non-predicate node in argument position", ErrInvalidPredicate)
		}
		args = append(args, n.Value.ID)
		cur = n.Child(0)
	}
	return args, nil
}

func displayID(t *fol.Tree, id fol2circuit.Address) string {
	return t.Symbols().DisplayName(id)
}
