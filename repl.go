package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"cfront/pkg/compiler"
)

const (
	historyFile = ".cfront_history"
	promptMain  = "c> "
	promptCont  = ".. "
)

// runRepl reads lines, runs each through the pipeline and prints the tokens.
// A line ending in a backslash continues onto the next prompt, so splicing
// can be tried interactively.
func runRepl(p *compiler.Pipeline) error {
	fmt.Println("cfront token REPL. Type :quit to exit.")

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		src, ok, err := readUnit(ln)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println()
			return nil
		}

		switch strings.TrimSpace(src) {
		case "":
			continue
		case ":quit":
			return nil
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		tokens, warnings, err := p.Tokenize(src)
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		for _, tok := range tokens {
			fmt.Println(" ", tok)
		}
	}
}

// readUnit collects one input, following trailing backslashes onto further
// lines. ok is false on end of input or Ctrl-C.
func readUnit(ln *liner.State) (string, bool, error) {
	var b strings.Builder
	prompt := promptMain
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}

		b.WriteString(line)
		if !strings.HasSuffix(line, "\\") {
			return b.String(), true, nil
		}
		b.WriteByte('\n')
		prompt = promptCont
	}
}
