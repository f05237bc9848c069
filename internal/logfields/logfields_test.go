package logfields

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Source", KeySource, "site", Source("site")},
		{"Dest", KeyDest, "public", Dest("public")},
		{"Path", KeyPath, "blogs/a.md", Path("blogs/a.md")},
		{"Kind", KeyKind, "document", Kind("document")},
		{"Template", KeyTemplate, "page", Template("page")},
		{"Stage", KeyStage, "traverse", Stage("traverse")},
		{"Outcome", KeyOutcome, "success", Outcome("success")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.attrKey, tc.attr.Key)
			require.Equal(t, tc.attrVal, tc.attr.Value.String())
		})
	}
}

func TestTypedHelpers(t *testing.T) {
	require.Equal(t, int64(3), Count(3).Value.Int64())
	require.True(t, Posts(true).Value.Bool())
	require.InDelta(t, 1.5, Duration(1500*time.Microsecond).Value.Float64(), 1e-9)
	require.Equal(t, "boom", Error(errors.New("boom")).Value.String())
	require.Empty(t, Error(nil).Value.String())
}
