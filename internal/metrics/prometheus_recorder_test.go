package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncEntry(EntryDocument)
	pr.IncEntry(EntryDocument)
	pr.IncEntry(EntryCopied)
	pr.IncPost()
	pr.ObserveStageDuration("traverse", 150*time.Millisecond)
	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncBuildOutcome(OutcomeSuccess)

	require.InDelta(t, 2, testutil.ToFloat64(pr.entries.WithLabelValues("document")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.entries.WithLabelValues("copied")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.posts), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.buildOutcome.WithLabelValues("success")), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, mfs, 5)
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	require.NotPanics(t, func() {
		pr.IncEntry(EntryDirectory)
		pr.IncPost()
		pr.ObserveStageDuration("index", time.Second)
		pr.ObserveBuildDuration(time.Second)
		pr.IncBuildOutcome(OutcomeFailed)
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncPost()

	path := filepath.Join(t.TempDir(), "blogbuilder.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "blogbuilder_posts_total 1")
}

var _ Recorder = NoopRecorder{}
var _ Recorder = (*PrometheusRecorder)(nil)
