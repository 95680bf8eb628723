package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide structured logger. Init must run before use;
// until then it writes text output at info level.
var Log = logrus.New()

// Init configures Log with JSON output at the default info level.
func Init() {
	InitWithLevel("info")
}

// InitWithLevel configures Log with JSON output at the given level, falling
// back to info for unknown level names.
func InitWithLevel(level string) {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		Log.WithField("level", level).Warn("Unknown log level, using info")
	}
	Log.SetLevel(lvl)
}
