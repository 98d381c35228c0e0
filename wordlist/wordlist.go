// Package wordlist loads newline-delimited lists of known-weak passwords.
// A missing backing file is not an error: dictionary checks simply degrade
// to "no match" against an empty set.
package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"code.cloudfoundry.org/lager"
)

// Set is a read-only collection of lowercased passwords. The zero value is
// an empty, usable set. Iteration order is the order of first appearance in
// the source, so fuzzy comparisons are deterministic.
type Set struct {
	words []string
	index map[string]struct{}
}

func New(words []string) Set {
	set := Set{index: make(map[string]struct{}, len(words))}
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		if _, ok := set.index[word]; ok {
			continue
		}
		set.index[word] = struct{}{}
		set.words = append(set.words, word)
	}
	return set
}

func (s Set) Contains(word string) bool {
	_, ok := s.index[word]
	return ok
}

func (s Set) Len() int {
	return len(s.words)
}

// Words returns the set in load order. Callers must not modify the slice.
func (s Set) Words() []string {
	return s.words
}

// Load reads a wordlist from path. A missing file yields an empty set and
// an advisory log line rather than an error; the same applies to any other
// read failure.
func Load(logger lager.Logger, path string) Set {
	logger = logger.Session("wordlist", lager.Data{"path": path})

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("not-found", lager.Data{"note": "dictionary checks disabled"})
		} else {
			logger.Error("open-failed", err)
		}
		return Set{}
	}
	defer file.Close()

	set, err := FromReader(file)
	if err != nil {
		logger.Error("read-failed", err)
		return Set{}
	}

	logger.Debug("loaded", lager.Data{"count": set.Len()})
	return set
}

// FromReader builds a Set from newline-delimited input.
func FromReader(r io.Reader) (Set, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Set{}, err
	}

	return New(words), nil
}
