package context

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

const (
	mainJavaFile    = "Main.java"
	mainJavaContent = `class Main { public static void main(String[] a) { System.out.println(1); } }`
	noErrorExpected = "Expected no error, got: %v"
)

// Helper function to create a temporary test file
func createTestFile(dir, name, content string) (string, error) {
	filePath := filepath.Join(dir, name)
	err := os.WriteFile(filePath, []byte(content), 0644)
	return filePath, err
}

// withCollector swaps the collector hook for the duration of a test
func withCollector(t *testing.T, run func(*CompilerContext)) {
	t.Helper()
	previous := CollectorRun
	CollectorRun = run
	t.Cleanup(func() { CollectorRun = previous })
}

func TestNewAssignsRunID(t *testing.T) {
	first := New(nil)
	second := New(nil)

	if first.RunID == uuid.Nil {
		t.Error("Expected a non-nil run id")
	}
	if first.RunID == second.RunID {
		t.Error("Expected each context to get its own run id")
	}
	if first.Options == nil {
		t.Error("Expected default options")
	}
	if first.CurrentPhase != PhaseInitial {
		t.Errorf("Expected initial phase, got %s", first.CurrentPhase)
	}
}

func TestAddFileKeepsOrderAndFirstEntry(t *testing.T) {
	ctx := New(&CompilerOptions{})

	b := ctx.AddFile("/b.java", "class B {}")
	ctx.AddFile("/a.java", "class A {}")
	again := ctx.AddFile("/b.java", "other")

	if again != b || again.Content != "class B {}" {
		t.Error("Expected re-registering a path to return the first entry")
	}

	files := ctx.GetAllFiles()
	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}
	if files[0].Path != "/b.java" || files[1].Path != "/a.java" {
		t.Errorf("Expected registration order, got %s, %s", files[0].Path, files[1].Path)
	}
	if ctx.GetFile("/missing.java") != nil {
		t.Error("Expected nil for an unknown path")
	}
}

func TestDiscoverRegistersFilesInArgumentOrder(t *testing.T) {
	tmpDir := t.TempDir()
	second, _ := createTestFile(tmpDir, "B.java", "class B {}")
	first, err := createTestFile(tmpDir, mainJavaFile, mainJavaContent)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	ctx := New(&CompilerOptions{})
	if err := ctx.Discover(first, second); err != nil {
		t.Fatalf(noErrorExpected, err)
	}

	files := ctx.GetAllFiles()
	absFirst, _ := filepath.Abs(first)
	absSecond, _ := filepath.Abs(second)
	if len(files) != 2 || files[0].Path != absFirst || files[1].Path != absSecond {
		t.Errorf("Unexpected file order: %v", ctx.FileOrder)
	}
	if files[0].Content != mainJavaContent {
		t.Errorf("Expected file content to be loaded, got %q", files[0].Content)
	}
}

func TestDiscoverMissingFile(t *testing.T) {
	ctx := New(&CompilerOptions{})
	err := ctx.Discover(filepath.Join(t.TempDir(), "nope.java"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	if len(ctx.Files) != 0 {
		t.Errorf("Expected nothing registered, got %d files", len(ctx.Files))
	}
}

func TestPipelineCompileSuccess(t *testing.T) {
	withCollector(t, nil)

	mainFile, err := createTestFile(t.TempDir(), mainJavaFile, mainJavaContent)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	p := NewPipeline(&CompilerOptions{})
	if err := p.Compile(mainFile); err != nil {
		t.Fatalf(noErrorExpected, err)
	}

	file := p.Context.GetAllFiles()[0]
	if len(file.Tokens) == 0 || file.AST == nil {
		t.Fatal("Expected tokens and an AST")
	}
	if file.AST.Main.Name.Name != "Main" {
		t.Errorf("Expected main class Main, got %s", file.AST.Main.Name.Name)
	}
	if p.Context.CurrentPhase != PhaseComplete {
		t.Errorf("Expected phase complete, got %s", p.Context.CurrentPhase)
	}
}

func TestPipelineCallsCollectorHook(t *testing.T) {
	calls := 0
	withCollector(t, func(ctx *CompilerContext) {
		calls++
		if ctx.CurrentPhase != PhaseCollecting {
			t.Errorf("Expected collecting phase inside the hook, got %s", ctx.CurrentPhase)
		}
		for _, f := range ctx.GetAllFiles() {
			if f.AST == nil {
				t.Errorf("Expected %s to be parsed before collection", f.Path)
			}
		}
	})

	mainFile, _ := createTestFile(t.TempDir(), mainJavaFile, mainJavaContent)
	if err := NewPipeline(nil).Compile(mainFile); err != nil {
		t.Fatalf(noErrorExpected, err)
	}
	if calls != 1 {
		t.Errorf("Expected the hook to run once, ran %d times", calls)
	}
}

func TestPipelineCompileReportsSyntaxErrors(t *testing.T) {
	withCollector(t, nil)

	mainFile, _ := createTestFile(t.TempDir(), mainJavaFile, "class Main { public static void main(String[] a) { # } }")

	p := NewPipeline(&CompilerOptions{})
	if err := p.Compile(mainFile); err == nil {
		t.Fatal("Expected compilation to fail")
	}
	if !p.Context.HasErrors() {
		t.Error("Expected errors in the diagnostic bag")
	}
}
