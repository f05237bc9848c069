package metrics

import "time"

// EntryKind labels how the traversal handled one source entry.
type EntryKind string

const (
	EntryDirectory EntryKind = "directory"
	EntryDocument  EntryKind = "document"
	EntryCopied    EntryKind = "copied"
	EntryReserved  EntryKind = "reserved"
)

// Outcome labels the final state of a run.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// Recorder defines observability hooks for build metrics.
type Recorder interface {
	IncEntry(kind EntryKind)
	IncPost()
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome Outcome)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncEntry(EntryKind)                         {}
func (NoopRecorder) IncPost()                                   {}
func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncBuildOutcome(Outcome)                    {}
