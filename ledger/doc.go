// Package ledger keeps the per-person fairness bookkeeping consumed by the
// assignment engine.
//
// A Person records how often, where and on which weekdays it served, and
// derives a rank key for a candidate slot from an ordered rule list. Members
// of one group share a *GroupState that remembers the date any of them served
// last; cloning a Person keeps pointing at the same GroupState.
//
// Nothing in this package is safe for concurrent use.
package ledger
