package diagnostics

import (
	"strings"
	"sync"
	"testing"

	"minijava/colors"
	"minijava/internal/source"
)

func TestNewDiagnosticBag(t *testing.T) {
	bag := NewDiagnosticBag()

	if bag == nil {
		t.Fatal("NewDiagnosticBag returned nil")
	}

	if bag.ErrorCount() != 0 {
		t.Errorf("Expected 0 errors, got %d", bag.ErrorCount())
	}

	if bag.HasErrors() {
		t.Error("Expected HasErrors() to be false for empty bag")
	}
}

func TestDiagnosticBag_Complain(t *testing.T) {
	bag := NewDiagnosticBag()

	bag.Complain("class Foo already defined")
	bag.Complain("field x already defined in class Foo")

	if !bag.HasErrors() {
		t.Error("Expected HasErrors() to be true after Complain")
	}

	msgs := bag.Messages()
	want := []string{"class Foo already defined", "field x already defined in class Foo"}
	if len(msgs) != len(want) {
		t.Fatalf("Expected %d messages, got %d", len(want), len(msgs))
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Errorf("Message %d: expected %q, got %q", i, want[i], msgs[i])
		}
	}
}

func TestDiagnosticBag_AddWarning(t *testing.T) {
	bag := NewDiagnosticBag()

	bag.Add(NewWarning("test warning"))

	if bag.HasErrors() {
		t.Error("Expected HasErrors() to be false when only warnings present")
	}

	if bag.WarningCount() != 1 {
		t.Errorf("Expected 1 warning, got %d", bag.WarningCount())
	}

	if bag.Len() != 1 {
		t.Errorf("Expected 1 diagnostic, got %d", bag.Len())
	}
}

func TestDiagnosticBag_DiagnosticsCopy(t *testing.T) {
	bag := NewDiagnosticBag()

	bag.Add(NewError("error 1"))
	bag.Add(NewWarning("warning 1"))

	diags1 := bag.Diagnostics()

	bag.Add(NewError("error 2"))

	diags2 := bag.Diagnostics()

	if len(diags1) != 2 {
		t.Errorf("Expected first copy to have 2 diagnostics, got %d", len(diags1))
	}

	if len(diags2) != 3 {
		t.Errorf("Expected second copy to have 3 diagnostics, got %d", len(diags2))
	}
}

func TestDiagnosticBag_ThreadSafety(t *testing.T) {
	bag := NewDiagnosticBag()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bag.Complain("concurrent")
			_ = bag.HasErrors()
		}()
	}
	wg.Wait()

	if bag.ErrorCount() != 50 {
		t.Errorf("Expected 50 errors, got %d", bag.ErrorCount())
	}
}

func TestDiagnosticBag_EmitAllToString(t *testing.T) {
	colors.SetEnabled(false)
	defer colors.SetEnabled(true)

	bag := NewDiagnosticBag()
	bag.Add(DuplicateClass("main.java", "Foo"))

	out := bag.EmitAllToString()

	if !strings.Contains(out, "error[D0001]: class Foo already defined") {
		t.Errorf("Expected header in output, got:\n%s", out)
	}
	if !strings.Contains(out, "--> main.java") {
		t.Errorf("Expected file pointer in output, got:\n%s", out)
	}
	if !strings.Contains(out, "Compilation failed with 1 error(s)") {
		t.Errorf("Expected summary in output, got:\n%s", out)
	}
}

func TestDiagnosticBag_EmitWithSourceLine(t *testing.T) {
	colors.SetEnabled(false)
	defer colors.SetEnabled(true)

	bag := NewDiagnosticBag()
	bag.AddSourceLines("a.java", []string{"class A {", "  int # x;", "}"})

	loc := source.NewLocation(&source.Position{Line: 2, Column: 7}, &source.Position{Line: 2, Column: 8})
	bag.Add(UnexpectedCharacter("a.java", loc, '#'))

	out := bag.EmitAllToString()

	if !strings.Contains(out, "--> a.java:2:7") {
		t.Errorf("Expected location pointer, got:\n%s", out)
	}
	if !strings.Contains(out, "2 |   int # x;") {
		t.Errorf("Expected source line, got:\n%s", out)
	}
	if !strings.Contains(out, "      ^ unexpected character") {
		t.Errorf("Expected caret under the character, got:\n%s", out)
	}
}
