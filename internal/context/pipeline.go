// Package context - compilation pipeline
//
// Phase progression:
//
//	Entry -> [File Discovery] -> Lexer + Parser -> Collector -> Exit
//
// Each phase is a stateless worker that reads the previous phase's output from
// the SourceFile and reports problems to ctx.Diagnostics.
package context

import (
	"fmt"
	"os"
	"sync"

	"minijava/internal/frontend/lexer"
	"minijava/internal/frontend/parser"
)

// Pipeline runs the phases over one CompilerContext
type Pipeline struct {
	Context *CompilerContext
}

// NewPipeline creates a new compilation pipeline with the given options
func NewPipeline(options *CompilerOptions) *Pipeline {
	return &Pipeline{
		Context: New(options),
	}
}

// Compile runs every phase over the given files. The collector is reached
// through the CollectorRun hook and is skipped when no hook is registered.
//
// Returns: error if a file could not be read or any phase reported errors
func (p *Pipeline) Compile(paths ...string) error {
	ctx := p.Context
	ctx.PrintBanner()

	// Phase 0: File Discovery
	if err := ctx.Discover(paths...); err != nil {
		return fmt.Errorf("file discovery failed: %w", err)
	}

	// Phase 1 & 2: Lex + Parse
	p.runLexAndParsePhase()

	// Phase 3: Collector
	ctx.setPhase(PhaseCollecting)
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Phase 3] Declaration Collection\n")
	}
	if CollectorRun != nil {
		CollectorRun(ctx)
		if ctx.Options.Debug {
			fmt.Fprintf(os.Stderr, "  ✓ Collected symbols from %d file(s)\n", len(ctx.GetAllFiles()))
		}
	}

	ctx.setPhase(PhaseComplete)

	if ctx.HasErrors() {
		return fmt.Errorf("compilation failed with %d error(s)", ctx.Diagnostics.ErrorCount())
	}
	return nil
}

// runLexAndParsePhase tokenizes and parses all files in parallel
func (p *Pipeline) runLexAndParsePhase() {
	ctx := p.Context
	ctx.setPhase(PhaseLexing)
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Phase 1 & 2] Lex + Parse (Parallel)\n")
	}

	files := ctx.GetAllFiles()
	var wg sync.WaitGroup

	for _, file := range files {
		wg.Add(1)
		go func(f *SourceFile) {
			defer wg.Done()
			p.lexFile(f)
			p.parseFile(f)
		}(file)
	}
	wg.Wait()

	ctx.setPhase(PhaseParsing)
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "  ✓ Processed %d file(s)\n", len(files))
	}
}

// lexFile tokenizes a single source file
func (p *Pipeline) lexFile(file *SourceFile) {
	if p.Context.Options.Debug {
		fmt.Fprintf(os.Stderr, "  Tokenizing %s (%d bytes)\n", file.Path, len(file.Content))
	}

	tokenizer := lexer.New(file.Path, file.Content, p.Context.Diagnostics)
	file.Tokens = tokenizer.Tokenize(p.Context.Options.Debug)

	if p.Context.Options.Debug {
		fmt.Fprintf(os.Stderr, "    Generated %d tokens\n", len(file.Tokens))
	}
}

// parseFile parses a single tokenized file into an AST
func (p *Pipeline) parseFile(file *SourceFile) {
	if p.Context.Options.Debug {
		fmt.Fprintf(os.Stderr, "  Parsing %s (%d tokens)\n", file.Path, len(file.Tokens))
	}

	file.AST = parser.Parse(file.Tokens, file.Path, p.Context.Diagnostics)

	if p.Context.Options.Debug {
		fmt.Fprintf(os.Stderr, "    Parsed %d class(es) besides the main class\n", len(file.AST.Classes))
	}
}
