package cmdutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewLoggerLevels(t *testing.T) {
	cases := []struct {
		name           string
		verbose, quiet bool
		debug, warn    bool
	}{
		{"default", false, false, false, true},
		{"verbose", true, false, true, true},
		{"quiet", false, true, false, false},
		{"quiet wins", true, true, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewLogger(&buf, tc.verbose, tc.quiet)
			log.Debug("dbg-line")
			log.Warn("warn-line", zap.String("path", "q.res"))
			log.Error("err-line")
			_ = log.Sync()

			out := buf.String()
			assert.Equal(t, tc.debug, bytes.Contains(buf.Bytes(), []byte("dbg-line")), out)
			assert.Equal(t, tc.warn, bytes.Contains(buf.Bytes(), []byte("warn-line")), out)
			assert.Contains(t, out, "ERROR\terr-line")
		})
	}
}
