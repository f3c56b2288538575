// Package swipe implements the queue navigation and texture preload
// engine: the ordered item registry, the sliding resident window over
// the queue, the page-to-index presentation mapping, and the
// navigation state machine that drives them.
package swipe

import (
	"fmt"

	"github.com/google/uuid"
)

// Item is a single entry in the triage queue. The ID is unique for the
// lifetime of the queue and immutable once assigned; replacing the
// queue invalidates every previously issued ID.
type Item struct {
	ID         string
	SourcePath string
	Label      string
}

// NewItem creates a queue item for the image at path. The label
// defaults to the path when empty.
func NewItem(path, label string) Item {
	if label == "" {
		label = path
	}
	return Item{
		ID:         uuid.NewString(),
		SourcePath: path,
		Label:      label,
	}
}

// Registry holds the ordered queue of items. Insertion order is the
// display order. It is pure data: no I/O, no texture ownership.
type Registry struct {
	items []Item
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Append adds a single item to the end of the queue.
func (r *Registry) Append(item Item) {
	r.items = append(r.items, item)
}

// AppendAll adds items to the end of the queue in order.
func (r *Registry) AppendAll(items []Item) {
	r.items = append(r.items, items...)
}

// Replace swaps the entire queue for a new one. Every ID issued for
// the previous queue is invalid afterwards; callers must re-derive
// their cursor (typically Start again) and let the next resync drop
// stale cache entries.
func (r *Registry) Replace(items []Item) {
	r.items = append([]Item(nil), items...)
}

// Get returns the item at index. Out-of-range access is a caller bug
// and panics.
func (r *Registry) Get(index int) Item {
	if index < 0 || index >= len(r.items) {
		panic(fmt.Sprintf("swipe: registry index %d out of range [0,%d)", index, len(r.items)))
	}
	return r.items[index]
}

// Len returns the number of items in the queue.
func (r *Registry) Len() int {
	return len(r.items)
}

// Items returns the backing slice for read-only iteration (queue
// overlay listing). Callers must not mutate it.
func (r *Registry) Items() []Item {
	return r.items
}
