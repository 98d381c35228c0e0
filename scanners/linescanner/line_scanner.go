// Package linescanner reads newline-delimited password candidates from a
// batch source, one Candidate per non-empty line.
package linescanner

import (
	"bufio"
	"io"

	"code.cloudfoundry.org/lager"

	"github.com/pwdtools/passguard/scanners"
)

type lineScanner struct {
	source       string
	bufioScanner *bufio.Scanner
	lineNumber   int
	err          error
}

func New(r io.Reader, source string) *lineScanner {
	return &lineScanner{
		source:       source,
		bufioScanner: bufio.NewScanner(r),
	}
}

func (s *lineScanner) Scan(logger lager.Logger) bool {
	logger = logger.Session("line-scanner")

	success := s.bufioScanner.Scan()

	if err := s.bufioScanner.Err(); err != nil {
		logger.Error("bufio-error", err)
		s.err = err
		return false
	}

	if success {
		s.lineNumber++
	}
	return success
}

func (s *lineScanner) Candidate() *scanners.Candidate {
	return &scanners.Candidate{
		Value:      s.bufioScanner.Text(),
		LineNumber: s.lineNumber,
		Source:     s.source,
	}
}

func (s *lineScanner) Err() error {
	return s.err
}
