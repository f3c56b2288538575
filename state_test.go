package pictriage

import "testing"

func TestAppStateString(t *testing.T) {
	tests := []struct {
		state AppState
		want  string
	}{
		{StateSorting, "Sorting"},
		{StateQueue, "Queue"},
		{StateComplete, "Complete"},
		{AppState(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("AppState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
