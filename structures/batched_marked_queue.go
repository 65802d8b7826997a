// SPDX-License-Identifier: MIT
// File: batched_marked_queue.go
// Role: BatchedMarkedQueue (C2) -- the insertion-ordered set "S" that
// ProvanShierSearch grows and shrinks as it descends the recursion.
package structures

import "fmt"

// BatchedMarkedQueue is an insertion-ordered set of vertices with O(1)
// membership test and batched undo: StartBatch marks a boundary, and
// PopBackBatch removes exactly the vertices pushed since the most recent
// unmatched StartBatch, in LIFO order across nested batches. Each vertex
// appears at most once.
type BatchedMarkedQueue struct {
	order   []int  // vertices in insertion order
	present []bool // membership bitmap, indexed by vertex
	marks   []int  // batch boundaries: lengths of order at each StartBatch
}

// NewBatchedMarkedQueue allocates a queue over the vertex universe [0,n).
func NewBatchedMarkedQueue(n int) *BatchedMarkedQueue {
	return &BatchedMarkedQueue{present: make([]bool, n)}
}

// StartBatch opens a new undo boundary.
func (q *BatchedMarkedQueue) StartBatch() {
	q.marks = append(q.marks, len(q.order))
}

// Push appends v. Panics if v is already present: a duplicate push
// indicates a caller invariant violation (spec §4.2), never a recoverable
// runtime condition in this single-threaded algorithm.
func (q *BatchedMarkedQueue) Push(v int) {
	if q.present[v] {
		panic(fmt.Sprintf("structures: BatchedMarkedQueue.Push(%d): already present", v))
	}
	q.present[v] = true
	q.order = append(q.order, v)
}

// IsElement reports whether v is currently in the queue.
func (q *BatchedMarkedQueue) IsElement(v int) bool { return q.present[v] }

// Size returns the current element count.
func (q *BatchedMarkedQueue) Size() int { return len(q.order) }

// AsVector returns the elements in insertion order. The returned slice
// aliases internal storage and must be treated as read-only by the
// caller; ProvanShierSearch copies it immediately when emitting a
// partition (see provanshier.Search).
func (q *BatchedMarkedQueue) AsVector() []int { return q.order }

// PopBackBatch undoes every Push issued since the matching StartBatch.
// Panics if called without an open batch.
func (q *BatchedMarkedQueue) PopBackBatch() {
	if len(q.marks) == 0 {
		panic("structures: BatchedMarkedQueue.PopBackBatch: no open batch")
	}
	mark := q.marks[len(q.marks)-1]
	q.marks = q.marks[:len(q.marks)-1]
	for _, v := range q.order[mark:] {
		q.present[v] = false
	}
	q.order = q.order[:mark]
}
