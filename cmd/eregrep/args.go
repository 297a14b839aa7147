package main

import (
	"fmt"
	"strings"
)

const usage = "usage: eregrep [-r] [-o] -E <pattern> [paths...]"

// parseArgs handles [-r] [-o] -E <pattern> [paths...], extending the
// teacher's original flag set with -o (print capturing groups via
// Result.Destructure instead of the whole line).
func parseArgs(args []string) (recursive, showGroups bool, pattern string, paths []string, err error) {
	i := 1
	for i < len(args) {
		switch args[i] {
		case "-r":
			recursive = true
			i++
		case "-o":
			showGroups = true
			i++
		default:
			goto doneFlags
		}
	}
doneFlags:
	if i >= len(args) || args[i] != "-E" {
		return false, false, "", nil, fmt.Errorf(usage)
	}
	i++
	if i >= len(args) {
		return false, false, "", nil, fmt.Errorf(usage)
	}
	pattern = unescapePattern(args[i])
	i++
	paths = args[i:]
	return
}

func unescapePattern(p string) string {
	return strings.ReplaceAll(p, `\\`, `\`)
}
