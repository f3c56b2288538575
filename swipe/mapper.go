package swipe

import "fmt"

// Slot pairs a displayed item with its absolute queue index so a
// per-slot action can target the right item even when several images
// share the page.
type Slot struct {
	Index int // absolute index into the queue
	Item  Item
}

// CurrentSlice returns the items on the current page, each paired with
// its absolute index. The slice is clipped to the queue bounds and
// empty at exhaustion, which signals the caller to take the completion
// path instead of rendering.
func CurrentSlice(cursor Cursor, reg *Registry) []Slot {
	length := reg.Len()
	if cursor.Exhausted(length) {
		return nil
	}
	end := cursor.Position + cursor.PageSize
	if end > length {
		end = length
	}
	slots := make([]Slot, 0, end-cursor.Position)
	for i := cursor.Position; i < end; i++ {
		slots = append(slots, Slot{Index: i, Item: reg.Get(i)})
	}
	return slots
}

// ResolveSlot maps a 0-indexed page slot back to its absolute queue
// index. A slot outside the page, or one that had no item this frame,
// is a caller bug and panics.
func ResolveSlot(slot int, cursor Cursor, reg *Registry) int {
	if slot < 0 || slot >= cursor.PageSize {
		panic(fmt.Sprintf("swipe: slot %d out of page bounds [0,%d)", slot, cursor.PageSize))
	}
	index := cursor.Position + slot
	if index >= reg.Len() {
		panic(fmt.Sprintf("swipe: slot %d resolves to index %d past queue length %d", slot, index, reg.Len()))
	}
	return index
}

// SplitShares divides total pixels into n equal shares by floor
// division. Remainder pixels go unused at the trailing edge: visually
// equal slots matter more than exact pixel accounting.
func SplitShares(total, n int) []int {
	if n <= 0 {
		panic(fmt.Sprintf("swipe: cannot split into %d shares", n))
	}
	share := total / n
	shares := make([]int, n)
	for i := range shares {
		shares[i] = share
	}
	return shares
}
