// SPDX-License-Identifier: MIT

package kgram

import (
	"sort"
	"strings"

	"github.com/katalvlaran/seqscan/window"
)

// Repeated returns every k-gram of s that occurs at least MinCount times.
func Repeated(s string, opts ...Option) ([]string, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(s) <= o.K {
		return nil, nil
	}

	var (
		last   = len(s) - o.K
		counts = window.NewFrequencyMap(last + 1)
		found  []string
	)
	for i := 0; i <= last; i++ {
		gram := s[i : i+o.K]
		if counts.Add(gram) == o.MinCount {
			// Clone so the result does not pin the whole input.
			found = append(found, strings.Clone(gram))
		}
	}

	return finish(found, o), nil
}

func finish(found []string, o Options) []string {
	if o.Sorted {
		sort.Strings(found)
	}

	return found
}
