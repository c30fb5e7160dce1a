// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequencereader

import (
	"github.com/cockroachdb/errors"
)

// ErrEnded defines that there are no items left in the sequence.
var ErrEnded = errors.New("the sequence is ended")

// SequenceReader is a forward only cursor over a slice which reports
// its position, so callers can point at the item that caused a failure.
type SequenceReader[T any] struct {
	items    []T
	position int
}

// New is a constructor for SequenceReader.
func New[T any](items []T) *SequenceReader[T] {
	return &SequenceReader[T]{items: items}
}

// HasNext returns true if there are items left.
func (sr *SequenceReader[T]) HasNext() bool {
	return sr.position < len(sr.items)
}

// Next returns the item at the current position and moves the cursor forward.
func (sr *SequenceReader[T]) Next() (item T, err error) {
	if !sr.HasNext() {
		return item, ErrEnded
	}

	item = sr.items[sr.position]
	sr.position++

	return item, nil
}

// Len returns how many items are left.
func (sr *SequenceReader[T]) Len() int {
	return len(sr.items) - sr.position
}

// Position returns index of the item which will be returned by the next Next call.
func (sr *SequenceReader[T]) Position() int {
	return sr.position
}

// Skip moves the cursor forward by n items, stopping at the end of the sequence.
func (sr *SequenceReader[T]) Skip(n int) {
	sr.position = min(sr.position+max(n, 0), len(sr.items))
}
