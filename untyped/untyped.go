package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joker314/lambda-visualiser/lambda"
	"github.com/samber/lo"
)

func usage(stderr io.Writer) {
	fmt.Fprint(stderr, "usage: untyped ( -outermost | -innermost ) [-steps n] [-names numbered|primed|ask] [-v] [file]\n\n")
	fmt.Fprint(stderr, "untyped reduces untyped lambda calculus expressions, one per line, with capture-avoiding substitution.\n")
	fmt.Fprint(stderr, "Without a file, expressions are read from standard input. -names ask requires a file.\n")
}

type options struct {
	strategy lambda.Strategy
	steps    int
	names    lambda.NameSource
	verbose  bool
}

// run is main without the process: it returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("untyped", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	var (
		outermost = fs.Bool("outermost", false, "reduce the leftmost-outermost redex first (normal order)")
		innermost = fs.Bool("innermost", false, "reduce the leftmost-innermost redex first (applicative order)")
		steps     = fs.Int("steps", 1000, "give up after this many reductions per expression (0 for no limit)")
		names     = fs.String("names", "numbered", "how renamed binders are chosen: numbered, primed or ask")
		verbose   = fs.Bool("v", false, "trace every reduction step on standard error")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *outermost == *innermost || fs.NArg() > 1 {
		usage(stderr)
		return 2
	}

	opts := options{strategy: lambda.Outermost, steps: *steps, verbose: *verbose}
	if *innermost {
		opts.strategy = lambda.Innermost
	}

	input := stdin
	if fs.NArg() == 1 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		defer f.Close()
		input = f
	}

	switch *names {
	case "numbered":
		opts.names = lambda.Numbered
	case "primed":
		opts.names = lambda.Primed
	case "ask":
		if fs.NArg() == 0 {
			usage(stderr)
			return 2
		}
		opts.names = prompter(bufio.NewScanner(stdin), stderr)
	default:
		usage(stderr)
		return 2
	}

	status := 0
	sc := bufio.NewScanner(input)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out, err := reduce(line, opts, stderr)
		if err != nil {
			fmt.Fprintf(stdout, "error: %v\n", err)
			var perr *lambda.ParseError
			if errors.As(err, &perr) {
				fmt.Fprintf(stderr, "%s\n%s\n", line, caret(line, perr))
			}
			status = 1
			continue
		}
		fmt.Fprintln(stdout, out)
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return status
}

func reduce(line string, opts options, stderr io.Writer) (string, error) {
	term, err := lambda.ParseString(line)
	if err != nil {
		return "", err
	}
	t := lambda.NewTree(term)
	var trace lambda.Observer
	if opts.verbose {
		fmt.Fprintf(stderr, "%s (%v)\n", t, opts.strategy)
		trace = func(ev lambda.StepEvent) {
			renames := lo.Map(ev.Renames, func(r lambda.Rename, _ int) string { return r.String() })
			if len(renames) > 0 {
				fmt.Fprintf(stderr, "  α %s\n", strings.Join(renames, ", "))
			}
			fmt.Fprintf(stderr, "  β %s ⇒ %s\n  = %s\n", ev.Redex, ev.Result, t)
		}
	}
	n, err := t.Normalize(opts.strategy, opts.names, opts.steps, trace)
	if err != nil {
		return "", fmt.Errorf("%w after %d steps: %s", err, n, t)
	}
	if opts.verbose {
		if num, ok := lambda.DecodeNumeral(t.Term(t.Root())); ok {
			fmt.Fprintf(stderr, "normal form after %d steps, Church numeral %d\n", n, num)
		} else {
			fmt.Fprintf(stderr, "normal form after %d steps\n", n)
		}
	}
	return t.String(), nil
}

// caret points at the offending token of a parse error.
func caret(line string, perr *lambda.ParseError) string {
	tokens := lambda.Tokenize(line)
	col := len([]rune(line))
	if perr.Pos < len(tokens) {
		col = tokens[perr.Pos].Offset
	}
	return strings.Repeat(" ", col) + "^"
}

// prompter asks for every new binder name on stderr and reads it from in,
// asking again while the name is forbidden.
func prompter(in *bufio.Scanner, stderr io.Writer) lambda.NameSource {
	return lambda.NameSourceFunc(func(plan lambda.RenamePlan) string {
		for {
			fmt.Fprintf(stderr, "rename λ%s (not one of %s): ", plan.Name, strings.Join(plan.Forbidden, " "))
			if !in.Scan() {
				return ""
			}
			name := strings.TrimSpace(in.Text())
			if name != "" && !lo.Contains(plan.Forbidden, name) {
				return name
			}
			fmt.Fprintf(stderr, "%q is not allowed\n", name)
		}
	})
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
