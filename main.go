//go:build !js && !wasm

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"minilang/colors"
	"minilang/internal/compiler"
)

const version = "0.1.0"

func main() {
	os.Exit(run())
}

// run is the whole CLI; it returns the process exit status.
func run() int {
	return runArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runArgs(args []string, stdout, stderr io.Writer) int {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		colors.Enabled = false
	}

	fs := flag.NewFlagSet("minilang", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: minilang [options] <file>")
		fmt.Fprintln(stderr, "       minilang [options] -e <code>")
		fmt.Fprintln(stderr, "\nOptions:")
		fs.PrintDefaults()
	}

	// Define flags
	code := fs.String("e", "", "Compile `code` given on the command line")
	dumpTokens := fs.Bool("tokens", false, "Print the token stream")
	dumpAST := fs.Bool("ast", false, "Print the syntax tree")
	dumpSymbols := fs.Bool("symbols", false, "Collect and print declared symbols")
	dumpIR := fs.Bool("ir", false, "Print three-address code (default when no other dump is requested)")
	workers := fs.Int("j", 0, "Generate IR for up to `N` functions concurrently (0 = sequential)")
	debug := fs.Bool("d", false, "Enable debug output")
	showVersion := fs.Bool("v", false, "Show version")
	fs.BoolVar(debug, "debug", false, "Enable debug output")
	fs.BoolVar(showVersion, "version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	// Handle version
	if *showVersion {
		fmt.Fprintf(stdout, "minilang version %s\n", version)
		return 0
	}

	codeSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "e" {
			codeSet = true
		}
	})

	rest := fs.Args()
	switch {
	case codeSet && len(rest) > 0:
		return usageError(stderr, fs, "cannot use -e together with a file argument")
	case !codeSet && len(rest) != 1:
		fs.Usage()
		return 2
	case *workers < 0:
		return usageError(stderr, fs, "-j must not be negative")
	}

	opts := &compiler.Options{
		Code:        *code,
		Debug:       *debug,
		Trace:       stderr,
		LogFormat:   compiler.ANSI,
		DumpTokens:  *dumpTokens,
		DumpAST:     *dumpAST,
		DumpSymbols: *dumpSymbols,
		DumpIR:      *dumpIR,
		Workers:     *workers,
	}
	if !codeSet {
		opts.EntryFile = rest[0]
	}

	// Compile
	result := compiler.Compile(opts)

	// Exit code
	if !result.Success {
		fmt.Fprint(stderr, result.Output)
		return 1
	}
	fmt.Fprint(stderr, result.Warnings)
	fmt.Fprint(stdout, result.Output)
	return 0
}

func usageError(stderr io.Writer, fs *flag.FlagSet, msg string) int {
	colors.RED.Fprintf(stderr, "error: %s\n", msg)
	fs.Usage()
	return 2
}
