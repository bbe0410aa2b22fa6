// SPDX-License-Identifier: MIT

// Command seqscan runs the sequence scanners from the command line.
//
//	seqscan unique abcabcbb
//	seqscan concat barfoofoobarthefoobarman bar foo the
//	seqscan minwindow 7 2 3 1 2 4 3
//	seqscan -log-format console kgram -sorted - < genome.txt
package main

import (
	"os"

	"github.com/katalvlaran/seqscan/internal/cli"
)

func main() {
	app := &cli.App{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
	os.Exit(app.Run(os.Args[1:]))
}
