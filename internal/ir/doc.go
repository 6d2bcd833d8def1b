// Package ir defines the hierarchical hardware IR that hwopt passes
// operate on.
//
// A Circuit is the root op. Ops own regions, regions own blocks, and
// blocks own ops, recursively. Walk visits this tree in deterministic
// pre-order, which is the order every pass in this repository relies on.
package ir
