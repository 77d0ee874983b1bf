package logging

import (
	"io"
	"os"
	"strings"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the global logrus logger from config. With no file name
// set, logs go to stdout only; otherwise to both stdout and a rotated file.
func Setup(cfg config.LogConfig) {
	if cfg.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetLevel(GetLevel(cfg.Level))

	if cfg.File == "" {
		logrus.SetOutput(os.Stdout)
		return
	}

	fileName := cfg.File
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	rotated := &lumberjack.Logger{
		Filename:  fileName,
		MaxSize:   50, // megabytes
		LocalTime: false,
		Compress:  true,
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, rotated))
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "trace":
		return logrus.TraceLevel
	case "warn":
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}
