package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
)

// Stage names, used for logging, metrics and the report.
const (
	StageTemplates = "templates"
	StageTraverse  = "traverse"
	StageIndex     = "index"
)

// Report captures what a generation run did.
type Report struct {
	BuildID        string
	Source         string
	Dest           string
	Directories    int
	Documents      int
	Posts          int
	Copied         int
	Skipped        int
	IndexPath      string
	Start          time.Time
	End            time.Time
	StageDurations map[string]time.Duration
	Outcome        metrics.Outcome
	Err            error
}

func newReport(buildID, source, dest string) *Report {
	return &Report{
		BuildID:        buildID,
		Source:         source,
		Dest:           dest,
		Start:          time.Now(),
		StageDurations: make(map[string]time.Duration),
	}
}

func (r *Report) finish(err error) {
	r.End = time.Now()
	r.Err = err
	if err != nil {
		r.Outcome = metrics.OutcomeFailed
		return
	}
	r.Outcome = metrics.OutcomeSuccess
}

// Duration returns the wall time of the run.
func (r *Report) Duration() time.Duration {
	if r.End.IsZero() {
		return 0
	}
	return r.End.Sub(r.Start)
}

// Summary returns a one-line human readable summary.
func (r *Report) Summary() string {
	return fmt.Sprintf("outcome=%s directories=%d documents=%d posts=%d copied=%d skipped=%d duration=%s",
		r.Outcome, r.Directories, r.Documents, r.Posts, r.Copied, r.Skipped, r.Duration().Round(time.Millisecond))
}

type reportJSON struct {
	BuildID          string           `json:"build_id"`
	Source           string           `json:"source"`
	Dest             string           `json:"dest"`
	Directories      int              `json:"directories"`
	Documents        int              `json:"documents"`
	Posts            int              `json:"posts"`
	Copied           int              `json:"copied"`
	Skipped          int              `json:"skipped"`
	IndexPath        string           `json:"index_path,omitempty"`
	Start            time.Time        `json:"start"`
	End              time.Time        `json:"end"`
	StageDurationsMS map[string]int64 `json:"stage_durations_ms"`
	Outcome          metrics.Outcome  `json:"outcome"`
	Error            string           `json:"error,omitempty"`
}

// Persist writes the report as JSON to path, replacing it atomically.
func (r *Report) Persist(path string) error {
	out := reportJSON{
		BuildID:          r.BuildID,
		Source:           r.Source,
		Dest:             r.Dest,
		Directories:      r.Directories,
		Documents:        r.Documents,
		Posts:            r.Posts,
		Copied:           r.Copied,
		Skipped:          r.Skipped,
		IndexPath:        r.IndexPath,
		Start:            r.Start,
		End:              r.End,
		StageDurationsMS: make(map[string]int64, len(r.StageDurations)),
		Outcome:          r.Outcome,
	}
	for stage, d := range r.StageDurations {
		out.StageDurationsMS[stage] = d.Milliseconds()
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report json: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("ensure report directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, filePerm); err != nil {
		return fmt.Errorf("write temp report: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("atomic rename report: %w", err)
	}
	return nil
}
