// SPDX-License-Identifier: MIT

// Package cnfio implements the CNF file loader: it parses DIMACS CNF text
// and builds a propositional tree through the ordinary
// [propositional.Builder] API, so every invariant enforced elsewhere
// (back-pointer consistency, swap-remove safety) holds for loader output
// too.
//
// Grounded on original_source's io/cnf.rs (load_string/add_clause/
// add_clauses): that reference parses with the regex crate; this port
// uses a hand-written line/token scanner instead, since no example repo in
// this module's lineage imports a regexp dependency for this kind of
// fixed little grammar, and the stdlib bufio.Scanner is the idiomatic Go
// tool for it.
package cnfio

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gaissmai/fol2circuit"
	"github.com/gaissmai/fol2circuit/propositional"
)

// Errors returned by [Load].
var (
	ErrMissingProblemLine  = errors.New("cannot find the problem line")
	ErrClauseCountMismatch = errors.New("inconsistent number of clauses")
)

// LoadFile reads path and parses its contents as DIMACS CNF, as [Load].
func LoadFile(path string) (*propositional.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cnfio: %w", err)
	}
	return Load(string(data))
}

// Load parses DIMACS-CNF text and returns a propositional tree with
// n_vars anonymous variables at addresses 0..n_vars-1: literal +k (k>=1)
// is the variable at address k-1, -k is its negation. Clauses
// are combined as one top-level conjunction of per-clause disjunctions,
// mirroring add_clauses/add_clause's right-associated recursion in the
// reference loader (the left-to-right literal order is preserved; only
// the associativity direction differs from [propositional.Builder]'s own
// left-associated Conjunction/Disjunction helpers, which this loader
// does not use for that reason).
func Load(cnf string) (*propositional.Tree, error) {
	nVars, clauses, err := parse(cnf)
	if err != nil {
		return nil, err
	}

	b := propositional.NewBuilder()
	for i := 0; i < nVars; i++ {
		b.Tree.Symbols().AddAnon()
	}

	if len(clauses) == 0 {
		return b.Tree, nil
	}

	root := addClauses(b, clauses)
	b.Tree.SetOutput(root)
	return b.Tree, nil
}

// parse extracts the declared variable/clause counts from the problem
// line ("p cnf <n_vars> <n_clauses>") and the clause literal lists,
// skipping comment lines that start with a letter.
func parse(cnf string) (nVars int, clauses [][]int, err error) {
	scanner := bufio.NewScanner(strings.NewReader(cnf))
	nVars, nClauses := -1, -1
	var cur []int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if isCommentLine(line) {
			if nVars < 0 {
				if v, c, ok := parseProblemLine(line); ok {
					nVars, nClauses = v, c
				}
			}
			continue
		}

		for _, tok := range strings.Fields(line) {
			lit, convErr := strconv.Atoi(tok)
			if convErr != nil {
				return 0, nil, fmt.Errorf("cnfio: malformed literal %q", tok)
			}
			if lit == 0 {
				if len(cur) > 0 {
					clauses = append(clauses, cur)
					cur = nil
				}
				continue
			}
			cur = append(cur, lit)
		}
	}
	if len(cur) > 0 {
		clauses = append(clauses, cur)
	}

	if nVars < 0 {
		return 0, nil, ErrMissingProblemLine
	}
	if len(clauses) != nClauses {
		return 0, nil, fmt.Errorf("cnfio: %w: want %d, got %d", ErrClauseCountMismatch, nClauses, len(clauses))
	}
	return nVars, clauses, nil
}

// isCommentLine reports whether line opens with a letter. The problem
// line itself starts with "p" and is scanned for the header even though
// it also satisfies this predicate.
func isCommentLine(line string) bool {
	r := rune(line[0])
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func parseProblemLine(line string) (nVars, nClauses int, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 4 || !strings.EqualFold(fields[0], "p") || !strings.EqualFold(fields[1], "cnf") {
		return 0, 0, false
	}
	v, err1 := strconv.Atoi(fields[2])
	c, err2 := strconv.Atoi(fields[3])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return v, c, true
}

func addClauses(b *propositional.Builder, clauses [][]int) fol2circuit.Address {
	if len(clauses) == 1 {
		return addClause(b, clauses[0])
	}
	return b.And(
		func(b *propositional.Builder) fol2circuit.Address { return addClause(b, clauses[0]) },
		func(b *propositional.Builder) fol2circuit.Address { return addClauses(b, clauses[1:]) },
	)
}

func addClause(b *propositional.Builder, lits []int) fol2circuit.Address {
	if len(lits) == 1 {
		return addLiteral(b, lits[0])
	}
	return b.Or(
		func(b *propositional.Builder) fol2circuit.Address { return addLiteral(b, lits[0]) },
		func(b *propositional.Builder) fol2circuit.Address { return addClause(b, lits[1:]) },
	)
}

func addLiteral(b *propositional.Builder, lit int) fol2circuit.Address {
	addr := fol2circuit.AddressOf(abs(lit) - 1)
	if lit > 0 {
		return b.Var(addr)
	}
	return b.Not(func(b *propositional.Builder) fol2circuit.Address { return b.Var(addr) })
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
