// SPDX-License-Identifier: MIT

package concat

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"

	"github.com/katalvlaran/seqscan/window"
)

// FindConcatenations returns the ascending start offsets of every
// concatenation of all words (in any order) inside text.
func FindConcatenations(text string, words []string, opts ...Option) ([]int, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, nil
	}
	w, err := wordLength(words)
	if err != nil {
		return nil, err
	}
	if len(text) < len(words)*w {
		return nil, nil
	}

	ref := window.FrequencyMapOf(words)
	if o.Strategy == Rolling {
		return rolling(text, len(words), w, ref), nil
	}

	return rebuild(text, len(words), w, ref), nil
}

// wordLength returns the shared word length or every violation found.
func wordLength(words []string) (int, error) {
	w := len(words[0])
	var errs error
	for i, word := range words {
		if len(word) != w {
			errs = multierr.Append(errs, fmt.Errorf("%w: words[%d] %q has length %d, want %d",
				ErrUnequalWordLength, i, word, len(word), w))
		}
	}
	if errs != nil {
		return 0, errs
	}
	if w == 0 {
		return 0, ErrEmptyWord
	}

	return w, nil
}

// rebuild counts the n chunks of every candidate offset from scratch.
func rebuild(text string, n, w int, ref *window.FrequencyMap) []int {
	var (
		span  = n * w
		found []int
		cand  = window.NewFrequencyMap(n)
	)
	for i := 0; i+span <= len(text); i++ {
		cand.Reset()
		for j := 0; j < n; j++ {
			start := i + j*w
			cand.Add(text[start : start+w])
		}
		if cand.Equal(ref) {
			found = append(found, i)
		}
	}

	return found
}

// rolling slides one window of n chunks per phase r ∈ [0, w), adding the
// chunk that enters and dropping the one that leaves.
func rolling(text string, n, w int, ref *window.FrequencyMap) []int {
	var (
		found []int
		cand  = window.NewFrequencyMap(n)
	)
	for r := 0; r < w; r++ {
		cand.Reset()
		left := r
		for right := r; right+w <= len(text); right += w {
			cand.Add(text[right : right+w])
			if cand.Total() > n {
				cand.Remove(text[left : left+w])
				left += w
			}
			if cand.Total() == n && cand.Equal(ref) {
				found = append(found, left)
			}
		}
	}
	sort.Ints(found)

	return found
}
