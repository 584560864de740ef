package source

import "testing"

func TestAdvanceTracksLinesAndColumns(t *testing.T) {
	pos := Position{Line: 1, Column: 1}
	pos.Advance("class A\n  {")

	if pos.Line != 2 {
		t.Errorf("Expected line 2, got %d", pos.Line)
	}
	if pos.Column != 4 {
		t.Errorf("Expected column 4, got %d", pos.Column)
	}
	if pos.Index != 11 {
		t.Errorf("Expected index 11, got %d", pos.Index)
	}
}

func TestNewLocationCopiesPositions(t *testing.T) {
	start := Position{Line: 1, Column: 1}
	end := Position{Line: 1, Column: 6}
	loc := NewLocation(&start, &end)

	start.Advance("xx")
	if loc.Start.Column != 1 {
		t.Errorf("Location should not alias the caller's position, got column %d", loc.Start.Column)
	}
}

func TestLocationContains(t *testing.T) {
	loc := NewLocation(&Position{Line: 2, Column: 3}, &Position{Line: 4, Column: 1})

	cases := []struct {
		pos  Position
		want bool
	}{
		{Position{Line: 2, Column: 3}, true},
		{Position{Line: 3, Column: 80}, true},
		{Position{Line: 2, Column: 2}, false},
		{Position{Line: 4, Column: 2}, false},
	}
	for _, c := range cases {
		if got := loc.Contains(&c.pos); got != c.want {
			t.Errorf("Contains(%d:%d) = %v, want %v", c.pos.Line, c.pos.Column, got, c.want)
		}
	}
}

func TestLocationString(t *testing.T) {
	loc := NewLocation(&Position{Line: 1, Column: 2}, &Position{Line: 1, Column: 5})
	if got := loc.String(); got != "location(1:2 - 1:5)" {
		t.Errorf("Unexpected string %q", got)
	}
	if got := (&Location{}).String(); got != "location(unknown)" {
		t.Errorf("Unexpected string %q", got)
	}
}
