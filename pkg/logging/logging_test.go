package logging_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/warden/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger_VerbosityLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		expected  zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		logging.SetupLogger(tt.verbosity)
		assert.Equal(t, tt.expected, zerolog.GlobalLevel())
	}
}

func TestGetLogger_ReturnsNamedLogger(t *testing.T) {
	logger := logging.GetLogger("snapshot")
	// A component logger must be usable without further setup.
	logger.Debug().Msg("probe")
}

func TestLogFilePath(t *testing.T) {
	assert.Equal(t, "warden.log", filepath.Base(logging.LogFilePath()))
}

func TestLogOperationStart_ReturnsCompletionFunc(t *testing.T) {
	logger := logging.GetLogger("test")
	done := logging.LogOperationStart(logger, "op")
	assert.NotNil(t, done)
	done()
}
