package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Options struct
type Options struct {
	Debug bool
	Env   string
	Out   io.Writer
}

// Setup configures the package-level logrus logger. Outside the local
// environment entries are written as JSON.
func Setup(opts Options) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logrus.SetOutput(out)

	if opts.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if opts.Env == "" || opts.Env == "local" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
}
