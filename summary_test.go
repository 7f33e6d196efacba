package opengraph

import "testing"

func TestSummary(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		maxWords int
		want     string
	}{
		{"empty", "", 100, ""},
		{"only markup", "<p>  </p><br/>", 100, ""},
		{"strips tags", "<p>Hello <b>world</b></p>", 100, "Hello world"},
		{"separates blocks", "<p>First</p><p>Second</p>", 100, "First Second"},
		{"decodes entities", "<p>Fish &amp; chips</p>", 100, "Fish & chips"},
		{"collapses whitespace", "one\n\n  two\tthree", 100, "one two three"},
		{"truncates", "one two three four five", 3, "one two three…"},
		{"exact length", "one two three", 3, "one two three"},
		{"drops scripts", "<script>alert(1)</script><p>Safe</p>", 100, "Safe"},
		{"zero words", "text", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summary(tt.content, tt.maxWords); got != tt.want {
				t.Errorf("Summary(%q, %d) = %q, want %q", tt.content, tt.maxWords, got, tt.want)
			}
		})
	}
}
