package logging

import (
	"io"
	"os"
	"strings"

	"github.com/2beens/smarttrack/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFileMaxSizeMB  = 50
	defaultLogFileMaxBackups = 10
)

type LoggerSetupParams struct {
	LogFileName       string
	LogFileMaxSizeMB  int
	LogFileMaxBackups int
	LogToStdout       bool
	LogLevel          string
	LogFormatJSON     bool
	Environment       string
	SentryEnabled     bool
	SentryDSN         string
	SentryServerName  string
}

// Setup configures the global logrus logger: level, format, output and,
// when enabled, the sentry hook for error and worse entries.
func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if params.SentryEnabled {
		setupSentry(params)
	}

	logrus.SetLevel(GetLevel(params.LogLevel))
	logrus.SetOutput(logOutput(params))

	switch {
	case params.LogFileName == "":
		logrus.Println("writing logs only to STDOUT")
	case params.LogToStdout:
		logrus.Printf("writing logs to file [%s] and STDOUT", params.LogFileName)
	default:
		logrus.Printf("writing logs to file [%s]", params.LogFileName)
	}
}

func setupSentry(params LoggerSetupParams) {
	err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	})
	if err != nil {
		logrus.Errorf("sentry.Init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("Sentry set up successfully")
}

func logOutput(params LoggerSetupParams) io.Writer {
	if params.LogFileName == "" {
		return os.Stdout
	}

	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	maxSize := params.LogFileMaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultLogFileMaxSizeMB
	}
	maxBackups := params.LogFileMaxBackups
	if maxBackups <= 0 {
		maxBackups = defaultLogFileMaxBackups
	}

	fileLogger := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    maxSize, // megabytes
		MaxBackups: maxBackups,
		LocalTime:  false, // UTC
		Compress:   true,
	}

	if params.LogToStdout {
		return pkg.NewCombinedWriter(os.Stdout, fileLogger)
	}
	return fileLogger
}

// GetLevel maps a config level name to a logrus level, trace when unknown.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}
