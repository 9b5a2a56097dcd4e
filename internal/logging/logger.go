// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	LogFileName   string
	LogToStdout   bool
	LogLevel      string
	LogFormatJSON bool
}

// Setup applies params to the standard logrus logger.
func Setup(params LoggerSetupParams) {
	Configure(logrus.StandardLogger(), params)
}

// Configure applies params to logger. Without a file name logs go to
// stdout only; otherwise they go to a rotated file, teed to stdout when
// LogToStdout is set.
func Configure(logger *logrus.Logger, params LoggerSetupParams) {
	if params.LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logger.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logger.SetOutput(os.Stdout)
		return
	}

	logger.SetOutput(output(params))
}

// NewFileLogger builds a standalone logger writing JSON lines to a rotated
// file. It backs the activity log of the event consumer.
func NewFileLogger(fileName string, toStdout bool) *logrus.Logger {
	l := logrus.New()
	Configure(l, LoggerSetupParams{LogFileName: fileName, LogToStdout: toStdout, LogLevel: "info", LogFormatJSON: true})
	return l
}

func output(params LoggerSetupParams) io.Writer {
	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}
	rotated := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    50, // megabytes
		MaxBackups: 10,
		LocalTime:  false,
		Compress:   true,
	}
	if params.LogToStdout {
		return io.MultiWriter(os.Stdout, rotated)
	}
	return rotated
}

// GetLevel parses a level name; unknown names fall back to info.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}
