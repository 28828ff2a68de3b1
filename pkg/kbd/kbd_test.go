package kbd

import "testing"

func TestKnown(t *testing.T) {
	for _, key := range []string{Space, Enter, Tab, ShiftTab, Escape} {
		if !Known(key) {
			t.Fatalf("expected %q to be known", key)
		}
	}
	for _, key := range []string{"", "space", "Shift+Tab", "Esc"} {
		if Known(key) {
			t.Fatalf("expected %q to be unknown", key)
		}
	}
}

func TestAllSortedAndComplete(t *testing.T) {
	keys := All()
	if len(keys) != len(known) {
		t.Fatalf("expected %d keys, got %d", len(known), len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Fatalf("keys not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
}
