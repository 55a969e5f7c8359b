package scaffold

// Outcome is what an ensure operation did to its artifact.
type Outcome int

const (
	// AlreadyPresent means an entry existed at the path and was left alone.
	AlreadyPresent Outcome = iota
	// Declined means the user answered anything but yes.
	Declined
	// Created means the artifact was written.
	Created
	// Failed means creation was attempted and did not succeed. Result.Err
	// holds the cause.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case AlreadyPresent:
		return "already-present"
	case Declined:
		return "declined"
	case Created:
		return "created"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a single ensure operation.
type Result struct {
	Artifact Artifact
	Path     string
	Outcome  Outcome
	Err      error
}

// Count returns how many results have the given outcome.
func Count(results []Result, o Outcome) int {
	n := 0
	for _, r := range results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}
