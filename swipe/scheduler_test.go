package swipe

import (
	"sort"
	"testing"
)

// fakeCache records loads and evictions so tests can assert on the
// exact traffic a resync produces.
type fakeCache struct {
	resident map[string]bool
	loads    []string
	evicts   []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{resident: make(map[string]bool)}
}

func (f *fakeCache) EnsureLoaded(item Item) {
	if f.resident[item.ID] {
		return
	}
	f.resident[item.ID] = true
	f.loads = append(f.loads, item.ID)
}

func (f *fakeCache) Evict(id string) {
	if !f.resident[id] {
		return
	}
	delete(f.resident, id)
	f.evicts = append(f.evicts, id)
}

func (f *fakeCache) ResidentIDs() []string {
	ids := make([]string, 0, len(f.resident))
	for id := range f.resident {
		ids = append(ids, id)
	}
	return ids
}

func (f *fakeCache) resetTraffic() {
	f.loads = nil
	f.evicts = nil
}

// residentIndices maps the cache's resident ids back to queue indices
// for readable assertions.
func residentIndices(t *testing.T, f *fakeCache, reg *Registry) []int {
	t.Helper()
	byID := make(map[string]int, reg.Len())
	for i := 0; i < reg.Len(); i++ {
		byID[reg.Get(i).ID] = i
	}
	var out []int
	for id := range f.resident {
		idx, ok := byID[id]
		if !ok {
			t.Fatalf("resident id %q not in registry", id)
		}
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestResyncWindowEquality(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		position int
		pageSize int
		radius   int
		want     []int
	}{
		{"radius zero keeps only the page", 10, 3, 1, 0, []int{3}},
		{"radius two mid queue", 10, 3, 1, 2, []int{1, 2, 3, 4, 5}},
		{"clipped at start", 10, 0, 1, 2, []int{0, 1, 2}},
		{"clipped at end", 10, 9, 1, 2, []int{7, 8, 9}},
		{"multi image page", 10, 2, 3, 1, []int{1, 2, 3, 4, 5}},
		{"page clipped at end", 10, 8, 3, 0, []int{8, 9}},
		{"radius covers whole queue", 4, 1, 1, 10, []int{0, 1, 2, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg := NewRegistry()
			reg.AppendAll(makeItems(tc.length))
			cache := newFakeCache()
			sched := NewScheduler(cache)

			cursor := NewCursor(tc.pageSize, 1, tc.radius)
			cursor.Position = tc.position
			sched.Resync(cursor, reg)

			if got := residentIndices(t, cache, reg); !equalInts(got, tc.want) {
				t.Errorf("resident = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResyncIdempotent(t *testing.T) {
	reg := NewRegistry()
	reg.AppendAll(makeItems(10))
	cache := newFakeCache()
	sched := NewScheduler(cache)

	cursor := NewCursor(1, 1, 2)
	cursor.Position = 4
	sched.Resync(cursor, reg)

	cache.resetTraffic()
	sched.Resync(cursor, reg)

	if len(cache.loads) != 0 || len(cache.evicts) != 0 {
		t.Errorf("second resync produced traffic: loads=%v evicts=%v", cache.loads, cache.evicts)
	}
}

func TestResyncExhaustedEvictsEverything(t *testing.T) {
	reg := NewRegistry()
	reg.AppendAll(makeItems(5))
	cache := newFakeCache()
	sched := NewScheduler(cache)

	cursor := NewCursor(1, 1, 2)
	sched.Resync(cursor, reg)
	if len(cache.resident) == 0 {
		t.Fatal("expected resident entries before exhaustion")
	}

	cursor.Position = reg.Len()
	sched.Resync(cursor, reg)

	if len(cache.resident) != 0 {
		t.Errorf("resident after exhaustion = %v, want empty", cache.ResidentIDs())
	}
}

func TestResyncNeverEvictsWindowMember(t *testing.T) {
	reg := NewRegistry()
	reg.AppendAll(makeItems(10))
	cache := newFakeCache()
	sched := NewScheduler(cache)

	cursor := NewCursor(1, 1, 2)
	sched.Resync(cursor, reg)

	// Step through the whole queue checking that no id is evicted and
	// reloaded within a single resync.
	for pos := 1; pos < 10; pos++ {
		cursor.Position = pos
		cache.resetTraffic()
		sched.Resync(cursor, reg)

		loaded := make(map[string]bool)
		for _, id := range cache.loads {
			loaded[id] = true
		}
		for _, id := range cache.evicts {
			if loaded[id] {
				t.Fatalf("position %d: id %q both loaded and evicted in one resync", pos, id)
			}
		}
	}
}

func TestSlidingWindowScenario(t *testing.T) {
	// Sequence of 10, pageSize 1, stepSize 1, radius 2:
	// start -> {0,1,2}; three advances -> position 3, {1..5}, 0 evicted.
	reg := NewRegistry()
	reg.AppendAll(makeItems(10))
	cache := newFakeCache()
	engine := NewEngine(reg, cache, NewCursor(1, 1, 2), nil)

	engine.Start()
	if got := residentIndices(t, cache, reg); !equalInts(got, []int{0, 1, 2}) {
		t.Fatalf("after start resident = %v, want [0 1 2]", got)
	}

	firstID := reg.Get(0).ID
	engine.Advance()
	engine.Advance()
	engine.Advance()

	if pos := engine.Cursor().Position; pos != 3 {
		t.Errorf("position = %d, want 3", pos)
	}
	if got := residentIndices(t, cache, reg); !equalInts(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("resident = %v, want [1 2 3 4 5]", got)
	}
	if cache.resident[firstID] {
		t.Error("expected index 0 to be evicted")
	}
}

func TestAdvanceRetreatRestoresResidentSet(t *testing.T) {
	reg := NewRegistry()
	reg.AppendAll(makeItems(10))
	cache := newFakeCache()
	engine := NewEngine(reg, cache, NewCursor(1, 2, 2), nil)

	engine.Start()
	engine.Advance()
	engine.Advance()

	before := residentIndices(t, cache, reg)
	posBefore := engine.Cursor().Position

	engine.Advance()
	engine.Retreat()

	if pos := engine.Cursor().Position; pos != posBefore {
		t.Errorf("position = %d, want %d", pos, posBefore)
	}
	if got := residentIndices(t, cache, reg); !equalInts(got, before) {
		t.Errorf("resident = %v, want %v", got, before)
	}
}

func TestReplaceInvalidatesOldEntries(t *testing.T) {
	reg := NewRegistry()
	reg.AppendAll(makeItems(6))
	cache := newFakeCache()
	engine := NewEngine(reg, cache, NewCursor(1, 1, 3), nil)

	engine.Start()
	oldIDs := cache.ResidentIDs()
	if len(oldIDs) == 0 {
		t.Fatal("expected resident entries from the first round")
	}

	engine.Replace(makeItems(4))
	engine.Start()

	for _, id := range oldIDs {
		if cache.resident[id] {
			t.Errorf("stale id %q still resident after replace+start", id)
		}
	}
	if got := residentIndices(t, cache, reg); !equalInts(got, []int{0, 1, 2, 3}) {
		t.Errorf("resident = %v, want [0 1 2 3]", got)
	}
}
