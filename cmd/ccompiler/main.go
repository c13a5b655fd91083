package main

import (
	"fmt"
	"os"

	"cfront/pkg/compiler"
	"cfront/pkg/source"
)

const testSource = `int main() ??<
    /* trigraphs, a splice and two comments */
    return 4\
2; // the answer
??>
`

func main() {
	src := testSource
	if len(os.Args) > 1 {
		text, err := source.LoadFile(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = text.String()
	}

	fmt.Printf("Source:\n%s\n", src)

	// Trigraphs
	src = compiler.ResolveTrigraphs(src)
	fmt.Printf("Trigraphs resolved:\n%s\n", src)

	// Line splicing
	src, warnings := compiler.SpliceLinesDiag(src)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	fmt.Printf("Lines spliced:\n%s\n", src)

	// Comments
	src, warnings = compiler.StripCommentsWith(src, compiler.CommentOptions{})
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	fmt.Printf("Comments stripped:\n%s\n", src)

	// Lex
	tokens, err := compiler.Lex(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lex error:", err)
		os.Exit(1)
	}

	fmt.Printf("Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Println(" ", tok)
	}
}
