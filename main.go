package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"minijava/colors"
	"minijava/internal/cmd"
	"minijava/internal/config"
)

func main() {
	// Register semantic phase runners
	cmd.RegisterPhases()

	// Parse command-line flags
	debugFlag := flag.Bool("debug", false, "Enable debug output")
	flag.BoolVar(debugFlag, "d", false, "Enable debug output (shorthand)")
	dumpFlag := flag.Bool("dump", false, "Print the symbol tables as JSON")
	forwardFlag := flag.Bool("resolve-forward-bases", false, "Link base classes declared later in the file")
	noColorFlag := flag.Bool("no-color", false, "Disable colored output")
	configPath := flag.String("config", config.FileName, "Path to the project configuration file")
	flag.Parse()

	// Validate arguments
	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [--debug] [--dump] [--resolve-forward-bases] [--config file] <file.java>...\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug", "d":
			cfg.Debug = *debugFlag
		case "dump":
			cfg.Dump = *dumpFlag
		case "resolve-forward-bases":
			cfg.ResolveForwardBases = *forwardFlag
		case "no-color":
			cfg.Color = !*noColorFlag
		}
	})
	colors.SetEnabled(cfg.Color)

	container := cmd.NewContainer(cfg, os.Stdout, os.Stderr)
	defer container.Shutdown()

	runner, err := container.Runner()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Run compilation pipeline
	if _, err := runner.Compile(flag.Args()...); err != nil {
		fmt.Fprintf(os.Stderr, "\nCompilation failed: %v\n", err)
		container.Shutdown()
		os.Exit(1)
	}
}
