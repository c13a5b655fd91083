// Package compiler provides the front end of a small C toolchain: the
// text-rewriting passes that clean a translation unit and the tokenizer that
// turns the cleaned text into tokens for the grammar parser.
//
// Pipeline: C source → ResolveTrigraphs → SpliceLines → StripComments → Lex → []Token
package compiler
