package swipe

import "testing"

func TestCurrentSlice(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		position int
		pageSize int
		want     []int // expected absolute indices
	}{
		{"single image page", 10, 4, 1, []int{4}},
		{"full multi page", 10, 2, 3, []int{2, 3, 4}},
		{"page clipped at queue end", 10, 8, 3, []int{8, 9}},
		{"exhausted yields empty", 10, 10, 2, nil},
		{"empty queue", 0, 0, 1, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg := NewRegistry()
			reg.AppendAll(makeItems(tc.length))
			cursor := NewCursor(tc.pageSize, 1, 0)
			cursor.Position = tc.position

			slots := CurrentSlice(cursor, reg)
			if len(slots) != len(tc.want) {
				t.Fatalf("len(slots) = %d, want %d", len(slots), len(tc.want))
			}
			for i, slot := range slots {
				if slot.Index != tc.want[i] {
					t.Errorf("slot %d index = %d, want %d", i, slot.Index, tc.want[i])
				}
				if slot.Item.ID != reg.Get(tc.want[i]).ID {
					t.Errorf("slot %d item mismatch at index %d", i, tc.want[i])
				}
			}
		})
	}
}

func TestResolveSlotRoundTrip(t *testing.T) {
	reg := NewRegistry()
	reg.AppendAll(makeItems(10))

	for _, position := range []int{0, 3, 6} {
		cursor := NewCursor(3, 3, 0)
		cursor.Position = position
		for k := 0; k < cursor.PageSize; k++ {
			if got := ResolveSlot(k, cursor, reg); got != position+k {
				t.Errorf("ResolveSlot(%d) at position %d = %d, want %d", k, position, got, position+k)
			}
		}
	}
}

func TestResolveSlotPanics(t *testing.T) {
	reg := NewRegistry()
	reg.AppendAll(makeItems(5))

	tests := []struct {
		name     string
		position int
		pageSize int
		slot     int
	}{
		{"slot beyond page size", 0, 2, 2},
		{"negative slot", 0, 2, -1},
		{"slot had no item this frame", 4, 3, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			cursor := NewCursor(tc.pageSize, 1, 0)
			cursor.Position = tc.position
			ResolveSlot(tc.slot, cursor, reg)
		})
	}
}

func TestSplitShares(t *testing.T) {
	tests := []struct {
		total int
		n     int
		want  []int
	}{
		{300, 3, []int{100, 100, 100}},
		{100, 3, []int{33, 33, 33}}, // remainder trails unused
		{640, 2, []int{320, 320}},
		{5, 10, []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
	}

	for _, tc := range tests {
		got := SplitShares(tc.total, tc.n)
		if !equalInts(got, tc.want) {
			t.Errorf("SplitShares(%d, %d) = %v, want %v", tc.total, tc.n, got, tc.want)
		}
	}
}
