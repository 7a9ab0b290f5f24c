// SPDX-License-Identifier: MIT

// Package fol2circuit implements the arena-backed expression-tree substrate
// shared by three related symbol vocabularies — first-order logic (FOL),
// propositional logic, and probabilistic (arithmetic) circuits — and the
// grounding/compilation pipeline that lowers a closed FOL sentence over
// finite integer domains into a propositional encoding and, from there,
// into a sum/product circuit suitable for weighted model counting.
//
// The pipeline has three stages:
//
//	FOL tree  --(ground.Table + compile.FOLToProp)-->  Propositional tree
//	Propositional tree --(nnf.Propositional + compile.PropToCircuit)--> Circuit
//	Propositional tree --(dnf.Count)--> model count
//
// Every tree, regardless of fragment, is backed by a [Tree], a contiguous,
// index-addressed node store. Nodes never hold pointers to each other;
// they hold [Address] values that index into the owning Tree. This is what
// lets the [Recycler] rewrite a subtree in place — cut it, walk it,
// reuse its freed slots for the replacement — without touching the rest
// of the arena.
//
// Sub-packages fol, propositional and pcircuit each define one fragment's
// symbol alphabet (arity, display glyphs, evaluation rules) over this
// substrate; package ground, compile, nnf, dnf and enumerate implement the
// algorithms that move between them.
package fol2circuit
