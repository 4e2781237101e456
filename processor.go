package main

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
	log "github.com/sirupsen/logrus"
)

// resolveInputs turns the raw operands into one ScanRequest per input.
// "-" selects standard input, as does an empty operand list. With
// recursion enabled, directory operands expand to the regular files
// beneath them; without it a directory operand becomes a per-file error
// when the counter tries to read it.
func resolveInputs(operands []string, m Metrics) ([]ScanRequest, error) {
	var requests []ScanRequest
	appendReq := func(name, path string, stdin bool) {
		requests = append(requests, ScanRequest{
			Index:   len(requests),
			Name:    name,
			Path:    path,
			Stdin:   stdin,
			Metrics: m,
		})
	}

	if len(operands) == 0 {
		appendReq("", "", true)
		return requests, nil
	}

	for _, op := range operands {
		if op == "-" {
			appendReq("-", "", true)
			continue
		}
		if recursive {
			if info, err := os.Stat(op); err == nil && info.IsDir() {
				paths, err := walkDirectory(op)
				if err != nil {
					return nil, err
				}
				for _, p := range paths {
					appendReq(p, p, false)
				}
				continue
			}
		}
		appendReq(op, op, false)
	}
	return requests, nil
}

// walkDirectory lists the regular files under root, honoring the
// root-level .gitignore unless disabled and skipping hidden entries
// unless requested.
func walkDirectory(root string) ([]string, error) {
	var matcher gitignore.IgnoreMatcher
	if !noIgnore {
		gitIgnorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			m, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				log.Warnf("could not parse %s: %v", gitIgnorePath, err)
			} else {
				matcher = m
			}
		}
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warnf("walking %s: %v", path, err)
			return nil
		}
		if path == root {
			return nil
		}

		if !showHidden && isHidden(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, _ := filepath.Rel(root, path)
		if matcher != nil && matcher.Match(rel, d.IsDir()) {
			log.Debugf("ignoring %s", path)
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}
	return paths, nil
}

// isHidden reports whether a path's base name starts with '.', with "."
// and ".." exempt.
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	base := filepath.Base(name)
	return len(base) > 0 && base[0] == '.'
}

// readFileList reads NUL-terminated input names from path, "-" meaning
// standard input.
func readFileList(path string) ([]string, error) {
	var src io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}
	return parseFileList(src)
}

func parseFileList(src io.Reader) ([]string, error) {
	var names []string
	r := bufio.NewReader(src)
	for pos := 0; ; pos++ {
		entry, err := r.ReadString(0)
		name := strings.TrimSuffix(entry, "\x00")
		switch {
		case name != "":
			names = append(names, name)
		case err == nil:
			return nil, fmt.Errorf("invalid zero-length file name at position %d", pos)
		}
		if err == io.EOF {
			return names, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading file list: %w", err)
		}
	}
}
