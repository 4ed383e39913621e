// Command lox runs a Lox script, or starts an interactive prompt when no
// script is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/treelox/lox"
)

const (
	exitUsage = 64
	exitIO    = 74
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("lox", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: lox [-ast] [-config file] [script]")
		fs.PrintDefaults()
	}
	printAST := fs.Bool("ast", false, "print the parsed program instead of running it")
	configPath := fs.String("config", "", "YAML config file (default ~/"+defaultConfigName+")")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	reporter := lox.NewConsoleReporter(os.Stderr, cfg.Color)

	if fs.NArg() == 1 {
		return runFile(fs.Arg(0), reporter, *printAST)
	}
	return runPrompt(cfg, reporter, *printAST)
}

// runFile runs a whole script and maps its outcome to an exit code.
func runFile(path string, reporter lox.Reporter, printAST bool) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIO
	}

	l := lox.New(lox.WithReporter(reporter))
	if printAST {
		return dumpAST(l, string(source))
	}
	return l.Run(string(source)).ExitCode()
}

func dumpAST(l *lox.Lox, source string) int {
	statements, err := l.Parse(source)
	if err != nil {
		return lox.StatusStaticError.ExitCode()
	}
	fmt.Print(lox.NewAstPrinter().Print(statements))
	return 0
}

// runPrompt reads and runs input until EOF or :quit. Errors are reported
// and the session goes on; globals persist between entries.
func runPrompt(cfg *config, reporter lox.Reporter, printAST bool) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.HistoryFile != "" {
		if f, err := os.Open(cfg.HistoryFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(cfg.HistoryFile); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	l := lox.New(lox.WithReporter(reporter), lox.WithInteractive(*cfg.InteractiveEcho))
	for {
		source, ok := readEntry(ln, cfg.Prompt, cfg.Continuation)
		if !ok {
			fmt.Println()
			return 0
		}

		trimmed := strings.TrimSpace(source)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))

		if strings.HasPrefix(trimmed, ":") {
			switch trimmed {
			case ":quit":
				return 0
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		if printAST {
			dumpAST(l, source)
			continue
		}
		l.Run(source)
	}
}

// readEntry reads one line, and keeps reading continuation lines while the
// input so far is incomplete. It returns false at end of input.
func readEntry(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return b.String(), b.Len() > 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !lox.Incomplete(b.String()) {
			return b.String(), true
		}
	}
}
