// Command eregrep is a grep-like line matcher built on package eregex,
// carried forward from the teacher's app/main.go CLI shape: [-r] -E
// <pattern> [paths...], reading stdin when no paths are given. It adds
// -o to print each capturing group instead of the whole line, exercising
// Result.Destructure end to end.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disjtqz/e-regex"
)

func main() {
	logger := newLogger()

	recursive, showGroups, pattern, paths, err := parseArgs(os.Args)
	if err != nil {
		logger.Error("argument parsing failed", "err", err)
		os.Exit(2)
	}

	re, err := eregex.Compile(pattern)
	if err != nil {
		logger.Error("pattern compilation failed", "pattern", pattern, "err", err)
		os.Exit(2)
	}

	g := &grepper{re: re, showGroups: showGroups, logger: logger}

	foundAny := false
	multi := recursive || len(paths) > 1

	switch {
	case len(paths) == 0:
		if g.scanAndPrint("stdin", os.Stdin, false) {
			foundAny = true
		}

	case recursive:
		for _, root := range paths {
			err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
				if err != nil || info.IsDir() {
					return nil
				}
				f, err := os.Open(path)
				if err != nil {
					return nil
				}
				defer f.Close()
				if g.scanAndPrint(path, f, true) {
					foundAny = true
				}
				return nil
			})
			if err != nil {
				logger.Error("walk failed", "root", root, "err", err)
				os.Exit(2)
			}
		}

	default:
		for _, filename := range paths {
			f, err := os.Open(filename)
			if err != nil {
				logger.Error("open failed", "file", filename, "err", err)
				os.Exit(2)
			}
			defer f.Close()
			if g.scanAndPrint(filename, f, multi) {
				foundAny = true
			}
		}
	}

	if foundAny {
		os.Exit(0)
	}
	os.Exit(1)
}

// grepper bundles the compiled pattern and output mode so scanAndPrint
// doesn't need to thread five parameters through every call.
type grepper struct {
	re         *eregex.Regexp
	showGroups bool
	logger     *slog.Logger
}

// scanAndPrint reads reader line by line and prints matching lines (with
// optional filename prefix), or with -o the matched groups instead of the
// whole line. Reports whether any line matched.
func (g *grepper) scanAndPrint(prefix string, reader io.Reader, addPrefix bool) bool {
	scanner := bufio.NewScanner(reader)
	found := false
	for scanner.Scan() {
		line := scanner.Text()
		g.logger.Debug("scanning line", "source", prefix, "line", line)

		r := g.re.Find(line)
		if !r.IsAccepted() {
			continue
		}
		found = true

		if g.showGroups {
			for _, group := range r.Destructure() {
				if addPrefix {
					fmt.Printf("%s:%s\n", prefix, group)
				} else {
					fmt.Println(group)
				}
			}
			continue
		}
		if addPrefix {
			fmt.Printf("%s:%s\n", prefix, line)
		} else {
			fmt.Println(line)
		}
	}
	if err := scanner.Err(); err != nil {
		g.logger.Error("scan failed", "source", prefix, "err", err)
		os.Exit(2)
	}
	return found
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("EREGREP_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
