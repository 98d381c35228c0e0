package scanners

// Candidate is one password read from a batch source.
type Candidate struct {
	Value      string
	LineNumber int
	Source     string
}
