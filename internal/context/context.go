// Package context provides the shared compilation context for all compiler phases.
//
// Phases are stateless workers: they receive a CompilerContext and read or
// write the SourceFile entries registered in it. Problems found in the source
// are reported to ctx.Diagnostics; Go errors are reserved for I/O failures.
package context

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"minijava/colors"
	"minijava/internal/diagnostics"
	"minijava/internal/frontend/ast"
	"minijava/internal/frontend/lexer"
	"minijava/internal/semantics"
)

// CompilationPhase tracks how far the run has got. All files move through phases together.
type CompilationPhase int

const (
	PhaseInitial    CompilationPhase = iota // Not started
	PhaseDiscovery                          // Reading source files
	PhaseLexing                             // Tokenizing source files
	PhaseParsing                            // Building ASTs
	PhaseCollecting                         // Building symbol tables
	PhaseComplete                           // Compilation finished
)

func (p CompilationPhase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseDiscovery:
		return "discovery"
	case PhaseLexing:
		return "lexing"
	case PhaseParsing:
		return "parsing"
	case PhaseCollecting:
		return "collecting"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// CollectorRun builds the symbol tables. It is registered by main to avoid an
// import cycle between the context and the collector.
var CollectorRun func(*CompilerContext)

// CompilerContext is the central hub for all compilation state of one run.
type CompilerContext struct {
	// Diagnostics collects every error and warning; phases never keep their own
	Diagnostics *diagnostics.DiagnosticBag

	// Files maps absolute file path -> SourceFile
	Files map[string]*SourceFile

	// FileOrder keeps registration order for deterministic output
	FileOrder []string

	CurrentPhase CompilationPhase

	Options *CompilerOptions

	// RunID identifies this run in debug output and dumps
	RunID uuid.UUID

	mu sync.RWMutex
}

// SourceFile is one compilation unit through all phases
type SourceFile struct {
	Path    string // Absolute file path
	Content string // Raw source code

	Tokens  []lexer.Token
	AST     *ast.Program
	Symbols *semantics.SymbolTable // set by the collector
}

// CompilerOptions holds compiler configuration.
// Passed to the context at creation time and remains immutable.
type CompilerOptions struct {
	Debug               bool // Enable debug output during compilation
	Dump                bool // Print symbol tables as JSON after collection
	ResolveForwardBases bool // Link `extends` clauses naming classes declared later
}

// New starts a new compilation session
func New(options *CompilerOptions) *CompilerContext {
	if options == nil {
		options = &CompilerOptions{}
	}

	return &CompilerContext{
		Diagnostics:  diagnostics.NewDiagnosticBag(),
		Files:        make(map[string]*SourceFile),
		FileOrder:    make([]string, 0),
		CurrentPhase: PhaseInitial,
		Options:      options,
		RunID:        uuid.New(),
	}
}

// AddFile registers a source file. Registering the same path twice keeps the
// first entry and returns it.
func (ctx *CompilerContext) AddFile(path string, content string) *SourceFile {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if existing, ok := ctx.Files[path]; ok {
		return existing
	}

	file := &SourceFile{
		Path:    path,
		Content: content,
	}

	ctx.Files[path] = file
	ctx.FileOrder = append(ctx.FileOrder, path)
	ctx.Diagnostics.AddSourceLines(path, strings.Split(content, "\n"))

	return file
}

// GetFile retrieves a source file by path.
// Returns nil if the file hasn't been registered.
func (ctx *CompilerContext) GetFile(path string) *SourceFile {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return ctx.Files[path]
}

// GetAllFiles returns all registered files in the order they were added.
func (ctx *CompilerContext) GetAllFiles() []*SourceFile {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()

	files := make([]*SourceFile, 0, len(ctx.FileOrder))
	for _, path := range ctx.FileOrder {
		files = append(files, ctx.Files[path])
	}
	return files
}

// Discover reads every path and registers it. Files are read concurrently
// but registered in argument order.
func (ctx *CompilerContext) Discover(paths ...string) error {
	ctx.setPhase(PhaseDiscovery)
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Phase 0] File Discovery\n")
	}

	results := make([]sourceRead, len(paths))
	var wg sync.WaitGroup

	for i, p := range paths {
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			results[i] = readSource(p)
		}(i, p)
	}
	wg.Wait()

	for _, r := range results {
		if r.err != nil {
			return r.err
		}
	}

	for _, r := range results {
		ctx.AddFile(r.path, r.content)
		if ctx.Options.Debug {
			fmt.Fprintf(os.Stderr, "  Registered: %s (%d bytes)\n", filepath.Base(r.path), len(r.content))
		}
	}
	return nil
}

type sourceRead struct {
	path    string
	content string
	err     error
}

func readSource(path string) sourceRead {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return sourceRead{err: fmt.Errorf("failed to resolve path %s: %w", path, err)}
	}
	content, err := os.ReadFile(absPath)
	if err != nil {
		return sourceRead{err: fmt.Errorf("failed to read file %s: %w", path, err)}
	}
	return sourceRead{path: absPath, content: string(content)}
}

func (ctx *CompilerContext) setPhase(phase CompilationPhase) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	ctx.CurrentPhase = phase
}

// HasErrors returns true if any errors have been reported during compilation.
func (ctx *CompilerContext) HasErrors() bool {
	return ctx.Diagnostics.HasErrors()
}

// EmitDiagnostics writes all collected diagnostics to w
func (ctx *CompilerContext) EmitDiagnostics(w io.Writer) {
	ctx.Diagnostics.EmitAll(w)
}

// PrintBanner prints the debug header for a run
func (ctx *CompilerContext) PrintBanner() {
	if !ctx.Options.Debug {
		return
	}
	colors.BOLD_CYAN.Fprintln(os.Stderr, "╔════════════════════════════════════════╗")
	colors.BOLD_CYAN.Fprintln(os.Stderr, "║   MINIJAVA FRONT END - BUILD PIPELINE  ║")
	colors.BOLD_CYAN.Fprintln(os.Stderr, "╚════════════════════════════════════════╝")
	colors.GREY.Fprintf(os.Stderr, "  run %s\n", ctx.RunID)
}
