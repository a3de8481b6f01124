// file: logger/logger.go

package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application-wide logger. It is usable before Init is called.
var Log = logrus.New()

// Init configures the global logger with a JSON formatter on stdout.
// level accepts the logrus level names; anything unknown falls back to info.
func Init(level ...string) {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	lvl := logrus.InfoLevel
	if len(level) > 0 {
		if parsed, err := logrus.ParseLevel(strings.TrimSpace(level[0])); err == nil {
			lvl = parsed
		}
	}
	Log.SetLevel(lvl)
}
