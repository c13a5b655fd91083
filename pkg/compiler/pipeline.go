package compiler

// Options configures a Pipeline. The zero value reproduces Preprocess.
type Options struct {
	Comments CommentOptions
}

// Pipeline runs the preprocessing stages and the tokenizer over one
// translation unit at a time. A Pipeline holds no state between calls and is
// safe for concurrent use.
type Pipeline struct {
	Options Options
}

// NewPipeline returns a Pipeline configured by opts.
func NewPipeline(opts Options) *Pipeline {
	return &Pipeline{Options: opts}
}

// Run resolves trigraphs, splices lines and strips comments, in that order,
// and returns the cleaned text with any warnings the stages raised.
//
// Trigraphs go first so that "??/" followed by a newline splices. Splicing
// goes before comment stripping so a comment marker split across a spliced
// line is still recognised.
func (p *Pipeline) Run(src string) (string, []Warning) {
	text := ResolveTrigraphs(src)

	text, warnings := SpliceLinesDiag(text)

	text, more := StripCommentsWith(text, p.Options.Comments)
	warnings = append(warnings, more...)

	return text, warnings
}

// Tokenize runs the preprocessing stages and lexes the result.
func (p *Pipeline) Tokenize(src string) ([]Token, []Warning, error) {
	cleaned, warnings := p.Run(src)
	tokens, err := Lex(cleaned)
	if err != nil {
		return nil, warnings, err
	}
	return tokens, warnings, nil
}

// Preprocess produces the cleaned source text for src with default options.
func Preprocess(src string) string {
	return StripComments(SpliceLines(ResolveTrigraphs(src)))
}

// Tokenize preprocesses src with default options and lexes the result.
func Tokenize(src string) ([]Token, error) {
	return Lex(Preprocess(src))
}
