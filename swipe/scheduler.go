package swipe

// TextureCache is the resident-asset store the scheduler keeps in sync
// with the cursor window. Implemented by texture.Cache; tests use a
// recording fake.
type TextureCache interface {
	// EnsureLoaded decodes and retains the item's image. Must be a
	// no-op when the item is already resident.
	EnsureLoaded(item Item)
	// Evict releases the decoded image for id. Must be a no-op when id
	// is not resident.
	Evict(id string)
	// ResidentIDs returns the ids currently held by the cache.
	ResidentIDs() []string
}

// Scheduler diffs the cursor's resident window against the cache and
// issues the loads and evictions needed to close the gap. It owns no
// state of its own: the cache's resident set is the only bookkeeping.
type Scheduler struct {
	cache TextureCache
}

// NewScheduler creates a scheduler backed by the given cache.
func NewScheduler(cache TextureCache) *Scheduler {
	return &Scheduler{cache: cache}
}

// Resync brings the cache in line with the cursor's window: every item
// inside [position-radius, position+pageSize-1+radius] (clipped) is
// loaded, everything else is evicted. Loads run first so the display
// never observes a transient miss for an on-screen item; evictions are
// batched after. An id can never be both loaded and evicted in one
// pass since the two sets are complements. At exhaustion the window is
// empty and everything is evicted.
func (s *Scheduler) Resync(cursor Cursor, reg *Registry) {
	lo, hi := cursor.windowBounds(reg.Len())

	target := make(map[string]bool, hi-lo+1)
	for i := lo; i <= hi; i++ {
		item := reg.Get(i)
		target[item.ID] = true
		s.cache.EnsureLoaded(item)
	}

	var stale []string
	for _, id := range s.cache.ResidentIDs() {
		if !target[id] {
			stale = append(stale, id)
		}
	}
	for _, id := range stale {
		s.cache.Evict(id)
	}
}
