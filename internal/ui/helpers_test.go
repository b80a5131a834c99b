package ui

import "testing"

func TestWindow(t *testing.T) {
	tests := []struct {
		name                   string
		cursor, total, height  int
		wantStart, wantEnd     int
	}{
		{"fits entirely", 2, 5, 10, 0, 5},
		{"cursor at top", 0, 50, 10, 0, 10},
		{"cursor centered", 25, 50, 10, 20, 30},
		{"cursor at bottom", 49, 50, 10, 40, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := window(tt.cursor, tt.total, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Fatalf("window(%d, %d, %d) = %d, %d, want %d, %d",
					tt.cursor, tt.total, tt.height, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("a very long recipe title", 10); got != "a very lo…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("日本のカレーライス", 5); got != "日本のカ…" {
		t.Fatalf("truncate = %q", got)
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(7, 0, 5); got != 5 {
		t.Fatalf("clamp = %d", got)
	}
	if got := clamp(-1, 0, 5); got != 0 {
		t.Fatalf("clamp = %d", got)
	}
	if got := clamp(3, 0, 5); got != 3 {
		t.Fatalf("clamp = %d", got)
	}
}

func TestPlural(t *testing.T) {
	if got := plural(1, "item", "items"); got != "item" {
		t.Fatalf("plural(1) = %q", got)
	}
	if got := plural(0, "item", "items"); got != "items" {
		t.Fatalf("plural(0) = %q", got)
	}
}
