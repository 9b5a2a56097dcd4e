package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warning"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("error"))
	assert.Equal(t, logrus.InfoLevel, GetLevel(""))
	assert.Equal(t, logrus.InfoLevel, GetLevel("nonsense"))
}

func TestConfigure_FileOutput(t *testing.T) {
	dir := t.TempDir()
	l := logrus.New()
	Configure(l, LoggerSetupParams{
		LogFileName:   filepath.Join(dir, "server"),
		LogLevel:      "debug",
		LogFormatJSON: true,
	})
	l.WithField("request_id", "abc").Debug("hello")

	data, err := os.ReadFile(filepath.Join(dir, "server.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"request_id":"abc"`)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
}

func TestNewFileLogger(t *testing.T) {
	dir := t.TempDir()
	l := NewFileLogger(filepath.Join(dir, "activity.log"), false)
	l.Info("workout created")

	data, err := os.ReadFile(filepath.Join(dir, "activity.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "workout created")
}
