// SPDX-License-Identifier: MIT

// Package view: functional configuration for view construction.
// Every flag impacts behavior and is covered by tests; defaults are
// documented constants. Options are idempotent and safe to repeat.
package view

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultOwned: views borrow their operand. The caller keeps the
	// underlying expression alive for as long as the view is used.
	DefaultOwned = false

	// DefaultEagerStrides: the stride cache is computed lazily on first
	// use. Eager computation trades construction cost for a guarantee
	// that no first-use fill ever races.
	DefaultEagerStrides = false
)

// Option mutates construction options.
type Option func(*options)

// options is the internal, gathered configuration state.
type options struct {
	owned        bool
	eagerStrides bool
}

// WithOwned makes the view deep-copy its operand at construction and
// operate on the private copy instead of borrowing the caller's value.
// The operand must implement core.Cloneable, otherwise construction
// fails with ErrNotCloneable.
func WithOwned() Option {
	return func(o *options) { o.owned = true }
}

// WithEagerStrides computes the stride cache during construction
// instead of on first use. Construction then fails with ErrNoBuffer
// when the underlying expression has no direct-buffer capability.
func WithEagerStrides() Option {
	return func(o *options) { o.eagerStrides = true }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts []Option) options {
	o := options{
		owned:        DefaultOwned,
		eagerStrides: DefaultEagerStrides,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
