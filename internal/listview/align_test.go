package listview

import "testing"

func TestMeasure(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"数据", 4},
		{"a数b", 4},
	}
	for _, tt := range tests {
		if got := Measure(tt.input); got != tt.want {
			t.Errorf("Measure(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "hel"},
		{"数据0", 3, "数"},
		{"数据0", 5, "数据0"},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.input, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ab", 4, "ab  "},
		{"abcdef", 4, "abcd"},
		{"数据", 3, "数 "},
	}
	for _, tt := range tests {
		if got := Fit(tt.input, tt.width); got != tt.want {
			t.Errorf("Fit(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestTextRenderMultiline(t *testing.T) {
	got := NewText("ab\ncdef").Render(3)
	if got != "ab \ncde" {
		t.Errorf("Render(3) = %q, want %q", got, "ab \ncde")
	}
}

func TestTextRenderWrap(t *testing.T) {
	text := NewText("alpha beta gamma")
	text.Wrap = true

	got := text.Render(10)
	want := "alpha beta\ngamma     "
	if got != want {
		t.Errorf("Render(10) = %q, want %q", got, want)
	}
}
