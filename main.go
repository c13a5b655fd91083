package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"cfront/pkg/batch"
	"cfront/pkg/compiler"
	"cfront/pkg/source"
)

func main() {
	inPath := flag.String("in", "", "translation unit to process")
	dirPath := flag.String("dir", "", "process every .c and .h file under this directory")
	stage := flag.String("stage", "tokens", "output to print: cleaned or tokens")
	jobs := flag.Int("j", 0, "translation units processed in parallel with -dir (default GOMAXPROCS)")
	keepNewlines := flag.Bool("keep-newlines", false, "keep the line breaks of stripped comments")
	trackLiterals := flag.Bool("track-literals", false, "do not treat comment markers inside string and character literals as comments")
	commentSpace := flag.Bool("comment-space", false, "replace each comment with a space instead of nothing")
	repl := flag.Bool("repl", false, "tokenize lines read interactively")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("cfront: ")

	if *stage != "tokens" && *stage != "cleaned" {
		fmt.Fprintf(os.Stderr, "unknown -stage %q: want cleaned or tokens\n", *stage)
		os.Exit(2)
	}

	pipeline := compiler.NewPipeline(compiler.Options{
		Comments: compiler.CommentOptions{
			KeepLineBreaks: *keepNewlines,
			TrackLiterals:  *trackLiterals,
			CommentAsSpace: *commentSpace,
		},
	})

	switch {
	case *repl:
		if err := runRepl(pipeline); err != nil {
			log.Fatalf("repl: %v", err)
		}
	case *inPath != "" && *dirPath != "":
		fmt.Fprintln(os.Stderr, "use either -in or -dir, not both")
		os.Exit(2)
	case *inPath != "":
		if !runFile(pipeline, *inPath, *stage) {
			os.Exit(1)
		}
	case *dirPath != "":
		if !runDir(pipeline, *dirPath, *stage, *jobs) {
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "nothing to do: provide -in <file>, -dir <dir>, or -repl")
		flag.Usage()
		os.Exit(2)
	}
}

func runFile(p *compiler.Pipeline, path, stage string) bool {
	text, err := source.LoadFile(path)
	if err != nil {
		log.Printf("failed to read input file %q: %v", path, err)
		return false
	}

	cleaned, warnings := p.Run(text.String())
	logWarnings(path, warnings)
	if stage == "cleaned" {
		fmt.Print(cleaned)
		return true
	}

	tokens, err := compiler.Lex(cleaned)
	if err != nil {
		log.Printf("%s: %v", path, err)
		return false
	}
	printTokens(tokens)
	return true
}

func runDir(p *compiler.Pipeline, dir, stage string, jobs int) bool {
	set := source.NewSet()
	if err := set.LoadDir(dir); err != nil {
		log.Printf("failed to load %q: %v", dir, err)
		return false
	}
	if set.Len() == 0 {
		log.Printf("no C sources under %q", dir)
		return true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := &batch.Runner{Pipeline: p, Jobs: jobs}
	results, err := r.Run(ctx, set)
	if err != nil {
		log.Printf("%v", err)
		return false
	}

	for _, res := range results {
		logWarnings(res.Name, res.Warnings)
		if res.Err != nil {
			log.Print(res.Err)
			continue
		}
		fmt.Printf("== %s\n", res.Name)
		if stage == "cleaned" {
			fmt.Println(res.Cleaned)
			continue
		}
		printTokens(res.Tokens)
	}

	failed := batch.Failed(results)
	if len(failed) > 0 {
		log.Printf("%d of %d translation units failed", len(failed), len(results))
		return false
	}
	return true
}

func logWarnings(name string, warnings []compiler.Warning) {
	for _, w := range warnings {
		log.Printf("%s: warning: %s", name, w)
	}
}

func printTokens(tokens []compiler.Token) {
	for _, tok := range tokens {
		fmt.Println(tok)
	}
}
