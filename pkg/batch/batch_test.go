package batch

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"cfront/pkg/compiler"
	"cfront/pkg/source"
)

func newSet(t *testing.T, units map[string]string) *source.Set {
	t.Helper()
	set := source.NewSet()
	for name, src := range units {
		if err := set.Write(name, []byte(src)); err != nil {
			t.Fatalf("Write(%q) failed: %v", name, err)
		}
	}
	return set
}

func TestRunnerRun(t *testing.T) {
	set := newSet(t, map[string]string{
		"a.c":     "int main() ??< return 0; ??>",
		"b.c":     "return 4\\\n2; // answer",
		"bad.c":   "int $x;",
		"lib/c.h": "/* open",
	})

	r := &Runner{Jobs: 2}
	results, err := r.Run(context.Background(), set)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var names []string
	for _, res := range results {
		names = append(names, res.Name)
	}
	if want := []string{"a.c", "b.c", "bad.c", "lib/c.h"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("result order = %v, want %v", names, want)
	}

	if results[0].Err != nil || len(results[0].Tokens) != 9 {
		t.Errorf("a.c: tokens %v, err %v", results[0].Tokens, results[0].Err)
	}

	wantB := []compiler.Token{compiler.Punct(compiler.RETURN), compiler.Int(42), compiler.Punct(compiler.SEMICOLON)}
	if !reflect.DeepEqual(results[1].Tokens, wantB) {
		t.Errorf("b.c tokens = %v, want %v", results[1].Tokens, wantB)
	}

	if !errors.Is(results[2].Err, compiler.ErrUnexpectedCharacter) {
		t.Errorf("bad.c err = %v, want ErrUnexpectedCharacter", results[2].Err)
	}
	if results[2].Tokens != nil {
		t.Errorf("bad.c returned partial tokens %v", results[2].Tokens)
	}

	if !reflect.DeepEqual(results[3].Warnings, []compiler.Warning{compiler.WarnUnterminatedComment}) {
		t.Errorf("lib/c.h warnings = %v", results[3].Warnings)
	}
	if len(results[3].Tokens) != 0 || results[3].Err != nil {
		t.Errorf("lib/c.h: tokens %v, err %v", results[3].Tokens, results[3].Err)
	}

	failed := Failed(results)
	if len(failed) != 1 || failed[0].Name != "bad.c" {
		t.Errorf("Failed() = %v, want only bad.c", failed)
	}
}

func TestRunnerUsesPipelineOptions(t *testing.T) {
	set := newSet(t, map[string]string{"a.c": "re/**/turn"})

	r := &Runner{Pipeline: compiler.NewPipeline(compiler.Options{
		Comments: compiler.CommentOptions{CommentAsSpace: true},
	})}
	results, err := r.Run(context.Background(), set)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := []compiler.Token{compiler.Ident("re"), compiler.Ident("turn")}
	if !reflect.DeepEqual(results[0].Tokens, want) {
		t.Errorf("tokens = %v, want %v", results[0].Tokens, want)
	}
}

func TestRunnerManyUnits(t *testing.T) {
	units := make(map[string]string)
	for i := 0; i < 50; i++ {
		units[fmt.Sprintf("u%02d.c", i)] = fmt.Sprintf("return %d;", i)
	}
	set := newSet(t, units)

	results, err := (&Runner{Jobs: 4}).Run(context.Background(), set)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for i, res := range results {
		if res.Err != nil {
			t.Fatalf("%s: %v", res.Name, res.Err)
		}
		if len(res.Tokens) != 3 || res.Tokens[1].Value != int64(i) {
			t.Errorf("%s: tokens = %v", res.Name, res.Tokens)
		}
	}
}

func TestRunnerCancelled(t *testing.T) {
	set := newSet(t, map[string]string{"a.c": "return 0;", "b.c": "return 1;"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Runner{}).Run(ctx, set)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
}

func TestRunnerEmptySet(t *testing.T) {
	results, err := (&Runner{}).Run(context.Background(), source.NewSet())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %v, want none", results)
	}
}
