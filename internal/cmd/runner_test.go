package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"minijava/colors"
	"minijava/internal/config"
	"minijava/internal/context"
)

const program = `
class Main { public static void main(String[] args) { System.out.println(new A().run()); } }
class A extends Base { int count; public int run() { int i; return i; } }
class Base { }
`

// Helper function to create a temporary test file
func createTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

func newTestRunner(t *testing.T, cfg *config.Config) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	colors.SetEnabled(false)
	t.Cleanup(func() { colors.SetEnabled(true) })

	var out, errOut bytes.Buffer
	container := NewContainer(cfg, &out, &errOut)
	t.Cleanup(func() { _ = container.Shutdown() })

	runner, err := container.Runner()
	if err != nil {
		t.Fatalf("Failed to resolve runner: %v", err)
	}
	return runner, &out, &errOut
}

func TestContainerAppliesConfig(t *testing.T) {
	runner, _, _ := newTestRunner(t, &config.Config{Dump: true, ResolveForwardBases: true})

	if !runner.Options.Dump || !runner.Options.ResolveForwardBases || runner.Options.Debug {
		t.Errorf("Expected options from config, got %+v", runner.Options)
	}
	if context.CollectorRun == nil {
		t.Error("Expected resolving the runner to register the collector")
	}
}

func TestCompileDumpsSymbolTables(t *testing.T) {
	runner, out, errOut := newTestRunner(t, &config.Config{Dump: true})
	path := createTestFile(t, "Main.java", program)

	ctx, err := runner.Compile(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v\n%s", err, errOut.String())
	}

	var dump struct {
		RunID string `json:"run_id"`
		Files []struct {
			Path    string `json:"path"`
			Symbols struct {
				Classes []struct {
					Name string  `json:"name"`
					Base *string `json:"base"`
				} `json:"classes"`
			} `json:"symbols"`
		} `json:"files"`
	}
	if err := json.Unmarshal(out.Bytes(), &dump); err != nil {
		t.Fatalf("Expected JSON dump, got error %v:\n%s", err, out.String())
	}

	if dump.RunID != ctx.RunID.String() {
		t.Errorf("Expected run id %s, got %s", ctx.RunID, dump.RunID)
	}
	if len(dump.Files) != 1 {
		t.Fatalf("Expected 1 file, got %d", len(dump.Files))
	}
	classes := dump.Files[0].Symbols.Classes
	if len(classes) != 3 || classes[0].Name != "Main" || classes[1].Name != "A" {
		t.Fatalf("Unexpected classes %+v", classes)
	}
	if classes[1].Base != nil {
		t.Errorf("Expected A's forward base to be absent by default, got %v", *classes[1].Base)
	}
}

func TestCompileResolvesForwardBasesWhenConfigured(t *testing.T) {
	runner, _, _ := newTestRunner(t, &config.Config{ResolveForwardBases: true})
	path := createTestFile(t, "Main.java", program)

	ctx, err := runner.Compile(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	a, ok := ctx.GetAllFiles()[0].Symbols.FindClass("A")
	if !ok || a.Base() == nil || a.Base().Name() != "Base" {
		t.Error("Expected A to extend Base")
	}
}

func TestCompileReportsDuplicates(t *testing.T) {
	runner, out, errOut := newTestRunner(t, config.Default())
	path := createTestFile(t, "Dup.java", `
class Main { public static void main(String[] args) { } }
class Foo { int x; }
class Foo { int y; }
`)

	ctx, err := runner.Compile(path)
	if err == nil {
		t.Fatal("Expected compilation to fail")
	}
	if ctx == nil || ctx.Diagnostics.ErrorCount() != 1 {
		t.Fatalf("Expected exactly one error")
	}

	report := errOut.String()
	if !strings.Contains(report, "error[D0001]: class Foo already defined") {
		t.Errorf("Expected the duplicate class in the report, got:\n%s", report)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no dump without the dump option, got %q", out.String())
	}
}

func TestCompileMissingFile(t *testing.T) {
	runner, out, _ := newTestRunner(t, &config.Config{Dump: true})

	_, err := runner.Compile(filepath.Join(t.TempDir(), "missing.java"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	if out.Len() != 0 {
		t.Error("Expected no dump when discovery fails")
	}
}

func TestCompileNoInput(t *testing.T) {
	runner, _, _ := newTestRunner(t, config.Default())
	if _, err := runner.Compile(); err == nil {
		t.Error("Expected an error without input files")
	}
}
