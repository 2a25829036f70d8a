package bootstrap

// Outcome tags the result of a single pipeline step.
type Outcome int

const (
	Done Outcome = iota
	Skipped
	// Degraded steps failed but left safe defaults behind.
	Degraded
	Fatal
)

func (o Outcome) String() string {
	switch o {
	case Done:
		return "done"
	case Skipped:
		return "skipped"
	case Degraded:
		return "degraded"
	case Fatal:
		return "fatal"
	}
	return "unknown"
}

type Result struct {
	Step    string
	Outcome Outcome
	Err     error
}
