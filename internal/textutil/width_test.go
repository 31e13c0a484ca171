package textutil

import "testing"

func TestDisplayWidthGraphemeClusters(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"ascii", "hello", 5},
		{"latin with combining mark", "été", 3},
		{"cjk", "日本", 4},
		{"thumbs up with skin tone", "👍🏻", 2},
		{"flag regional indicators", "🇵🇱", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text); got != tt.want {
				t.Fatalf("DisplayWidth(%q)=%d want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestRuneWidth(t *testing.T) {
	if got := RuneWidth('a'); got != 1 {
		t.Fatalf("RuneWidth('a')=%d want 1", got)
	}
	if got := RuneWidth('語'); got != 2 {
		t.Fatalf("RuneWidth('語')=%d want 2", got)
	}
	if got := RuneWidth('\u0301'); got != 0 {
		t.Fatalf("RuneWidth(combining acute)=%d want 0", got)
	}
}

func TestExpandTabsAlignsToStops(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"\tx", "    x"},
		{"ab\tx", "ab  x"},
		{"日\tx", "日  x"},
		{"no tabs", "no tabs"},
	}
	for _, tt := range tests {
		if got := ExpandTabs(tt.in, 4); got != tt.want {
			t.Fatalf("ExpandTabs(%q)=%q want %q", tt.in, got, tt.want)
		}
	}
}
