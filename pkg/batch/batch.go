// Package batch runs the front end over many translation units in parallel.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"cfront/pkg/compiler"
	"cfront/pkg/source"
)

// Result is the outcome for one translation unit. Err is set when the unit
// failed to tokenize; the other fields are then only partially filled.
type Result struct {
	Name     string
	Cleaned  string
	Tokens   []compiler.Token
	Warnings []compiler.Warning
	Err      error
}

// Runner tokenizes translation units with a shared Pipeline.
type Runner struct {
	Pipeline *compiler.Pipeline
	// Jobs caps the number of units processed at once. Zero means GOMAXPROCS.
	Jobs int
}

// Run processes every unit in set and returns results in the order of
// set.List(). A unit that fails to tokenize records its error in its Result
// and does not stop the others. Cancelling ctx stops units that have not
// started yet; a unit already being scanned runs to completion.
func (r *Runner) Run(ctx context.Context, set *source.Set) ([]Result, error) {
	names := set.List()
	results := make([]Result, len(names))

	jobs := r.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	pipeline := r.Pipeline
	if pipeline == nil {
		pipeline = compiler.NewPipeline(compiler.Options{})
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := set.Read(name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = process(pipeline, text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func process(p *compiler.Pipeline, text source.Text) Result {
	res := Result{Name: text.Name()}
	res.Cleaned, res.Warnings = p.Run(text.String())

	tokens, err := compiler.Lex(res.Cleaned)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", text.Name(), err)
		return res
	}
	res.Tokens = tokens
	return res
}

// Failed returns the results whose unit did not tokenize.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
