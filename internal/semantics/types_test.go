package semantics

import "testing"

func TestParseTypeBuiltins(t *testing.T) {
	cases := map[string]Type{
		"int":      Int,
		"boolean":  Boolean,
		"int[]":    IntArray,
		"void":     Void,
		"String[]": StringArray,
	}
	for tag, want := range cases {
		got, err := ParseType(tag)
		if err != nil {
			t.Errorf("ParseType(%q) failed: %v", tag, err)
			continue
		}
		if got != want {
			t.Errorf("ParseType(%q) = %v, want %v", tag, got, want)
		}
		if got.String() != tag {
			t.Errorf("Expected %q to print as itself, got %q", tag, got.String())
		}
	}
}

func TestParseTypeClass(t *testing.T) {
	got, err := ParseType("Tree")
	if err != nil {
		t.Fatalf("ParseType failed: %v", err)
	}
	if !got.IsClass() || got.ClassName() != "Tree" || got.String() != "Tree" {
		t.Errorf("Expected class type Tree, got %v (kind %s)", got, got.Kind())
	}

	other, _ := ClassType("Tree")
	if got != other {
		t.Error("Expected class types with the same name to be equal")
	}
}

func TestParseTypeRejectsMalformedTags(t *testing.T) {
	for _, tag := range []string{"", "int[][]", "1abc", "a-b", "class", "boolean[]"} {
		if _, err := ParseType(tag); err == nil {
			t.Errorf("Expected ParseType(%q) to fail", tag)
		}
	}
}

func TestClassTypeRejectsReservedWords(t *testing.T) {
	if _, err := ClassType("while"); err == nil {
		t.Error("Expected reserved word to be rejected as class name")
	}
}
