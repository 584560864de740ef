package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"minijava/colors"
	"minijava/internal/config"
	"minijava/internal/context"
	"minijava/internal/semantics"
	"minijava/internal/semantics/collector"
)

// RegisterPhases wires the semantic phase runners into the context package
func RegisterPhases() {
	context.CollectorRun = collector.Run
}

// Runner drives one compilation from the command line
type Runner struct {
	Options *context.CompilerOptions
	Out     io.Writer // symbol table dumps
	ErrOut  io.Writer // diagnostics
}

// NewRunner builds a runner writing to the given streams
func NewRunner(options *context.CompilerOptions, out, errOut io.Writer) *Runner {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Runner{Options: options, Out: out, ErrOut: errOut}
}

// OptionsFromConfig turns the loaded configuration into compiler options
func OptionsFromConfig(cfg *config.Config) *context.CompilerOptions {
	return &context.CompilerOptions{
		Debug:               cfg.Debug,
		Dump:                cfg.Dump,
		ResolveForwardBases: cfg.ResolveForwardBases,
	}
}

// Compile runs the pipeline over paths, dumps the symbol tables when asked
// and emits every diagnostic. The context is returned even on failure so the
// caller can inspect it.
func (r *Runner) Compile(paths ...string) (*context.CompilerContext, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files")
	}

	pipeline := context.NewPipeline(r.Options)
	ctx := pipeline.Context

	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Compilation Started] %d file(s)\n", len(paths))
	}

	err := pipeline.Compile(paths...)

	if ctx.Options.Dump && ctx.CurrentPhase == context.PhaseComplete {
		if dumpErr := DumpSymbols(r.Out, ctx); dumpErr != nil {
			return ctx, dumpErr
		}
	}

	ctx.EmitDiagnostics(r.ErrOut)

	if err != nil {
		return ctx, err
	}
	if ctx.Options.Debug {
		colors.GREEN.Fprintln(os.Stderr, "\n✓ Compilation successful!")
	}
	return ctx, nil
}

type fileDump struct {
	Path    string                 `json:"path"`
	Symbols *semantics.SymbolTable `json:"symbols"`
}

type runDump struct {
	RunID uuid.UUID  `json:"run_id"`
	Files []fileDump `json:"files"`
}

// DumpSymbols writes every file's symbol table as indented JSON
func DumpSymbols(w io.Writer, ctx *context.CompilerContext) error {
	dump := runDump{RunID: ctx.RunID, Files: []fileDump{}}
	for _, file := range ctx.GetAllFiles() {
		dump.Files = append(dump.Files, fileDump{Path: file.Path, Symbols: file.Symbols})
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode symbol tables: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write symbol tables: %w", err)
	}
	return nil
}
