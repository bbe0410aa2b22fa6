// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/seqscan/concat"
	"github.com/katalvlaran/seqscan/kgram"
	"github.com/katalvlaran/seqscan/minwindow"
	"github.com/katalvlaran/seqscan/unique"
)

// stdinArg is the TEXT placeholder that reads the text from Stdin.
const stdinArg = "-"

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.Stderr)

	return fs
}

// parse runs fs.Parse and tags parse failures as usage errors.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}

		return fmt.Errorf("%w: %v", errUsage, err)
	}

	return nil
}

// text resolves a TEXT argument, reading Stdin for "-".
// A single trailing line break is dropped from stdin input.
func (a *App) text(arg string) (string, error) {
	if arg != stdinArg {
		return arg, nil
	}
	if a.Stdin == nil {
		return "", fmt.Errorf("%w: no stdin available", errUsage)
	}
	b, err := io.ReadAll(a.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(b), "\n")

	return strings.TrimSuffix(s, "\r"), nil
}

func runUnique(a *App, args []string) (report, error) {
	fs := a.flagSet("unique")
	runes := fs.Bool("runes", false, "count characters instead of bytes")
	showWindow := fs.Bool("window", false, "print the window [left,right) instead of its length")
	if err := parse(fs, args); err != nil {
		return report{}, err
	}
	if fs.NArg() != 1 {
		return report{}, fmt.Errorf("%w: expected exactly one TEXT, got %d args", errUsage, fs.NArg())
	}
	s, err := a.text(fs.Arg(0))
	if err != nil {
		return report{}, err
	}

	var opts []unique.Option
	if *runes {
		opts = append(opts, unique.WithAlphabet(unique.Runes))
	}
	w, err := unique.LongestUniqueWindow(s, opts...)
	if err != nil {
		return report{}, err
	}
	if *showWindow {
		fmt.Fprintln(a.Stdout, w)
	} else {
		fmt.Fprintln(a.Stdout, w.Len())
	}

	return report{inputLen: len(s), results: 1}, nil
}

func runConcat(a *App, args []string) (report, error) {
	fs := a.flagSet("concat")
	roll := fs.Bool("rolling", false, "use the rolling strategy")
	if err := parse(fs, args); err != nil {
		return report{}, err
	}
	if fs.NArg() < 1 {
		return report{}, fmt.Errorf("%w: expected TEXT and words", errUsage)
	}
	s, err := a.text(fs.Arg(0))
	if err != nil {
		return report{}, err
	}

	strategy := concat.Rebuild
	if *roll {
		strategy = concat.Rolling
	}
	offs, err := concat.FindConcatenations(s, fs.Args()[1:], concat.WithStrategy(strategy))
	if err != nil {
		return report{}, err
	}
	for _, off := range offs {
		fmt.Fprintln(a.Stdout, off)
	}

	return report{inputLen: len(s), results: len(offs)}, nil
}

func runMinWindow(a *App, args []string) (report, error) {
	fs := a.flagSet("minwindow")
	showWindow := fs.Bool("window", false, "print the window [left,right) instead of its length")
	if err := parse(fs, args); err != nil {
		return report{}, err
	}
	if fs.NArg() < 1 {
		return report{}, fmt.Errorf("%w: expected TARGET and numbers", errUsage)
	}
	values := make([]int64, fs.NArg())
	for i, arg := range fs.Args() {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return report{}, fmt.Errorf("%w: argument %d: %v", errUsage, i+1, err)
		}
		values[i] = v
	}

	w, ok, err := minwindow.MinWindow(values[0], values[1:])
	if err != nil {
		return report{}, err
	}
	switch {
	case *showWindow && ok:
		fmt.Fprintln(a.Stdout, w)
	case *showWindow:
		fmt.Fprintln(a.Stdout, "none")
	default:
		fmt.Fprintln(a.Stdout, w.Len())
	}
	results := 0
	if ok {
		results = 1
	}

	return report{inputLen: len(values) - 1, results: results}, nil
}

func runKGram(a *App, args []string) (report, error) {
	fs := a.flagSet("kgram")
	k := fs.Int("k", kgram.DefaultK, "k-gram length")
	minCount := fs.Int("min", kgram.DefaultMinCount, "minimum number of occurrences")
	sorted := fs.Bool("sorted", false, "print in lexicographic order")
	dna := fs.Bool("dna", false, "use the packed nucleotide scanner (ACGT only, k <= 32)")
	if err := parse(fs, args); err != nil {
		return report{}, err
	}
	if fs.NArg() != 1 {
		return report{}, fmt.Errorf("%w: expected exactly one TEXT, got %d args", errUsage, fs.NArg())
	}
	s, err := a.text(fs.Arg(0))
	if err != nil {
		return report{}, err
	}

	opts := []kgram.Option{kgram.WithK(*k), kgram.WithMinCount(*minCount)}
	if *sorted {
		opts = append(opts, kgram.WithSorted())
	}
	scan := kgram.Repeated
	if *dna {
		scan = kgram.RepeatedDNA
	}
	grams, err := scan(s, opts...)
	if err != nil {
		return report{}, err
	}
	for _, g := range grams {
		fmt.Fprintln(a.Stdout, g)
	}

	return report{inputLen: len(s), results: len(grams)}, nil
}
