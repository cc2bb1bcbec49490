// Package main implements the carddown command line tool: it scans markdown
// files for flashcards, schedules recurring reviews with pluggable
// spaced-repetition algorithms, and tracks per-card and cross-card
// statistics in local JSON files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
