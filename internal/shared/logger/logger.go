package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a structured logger tagged with a consistent service field.
// Services receive it by dependency injection.
func New(service string) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if os.Getenv("LOG_DEBUG") != "" {
		l.SetLevel(logrus.DebugLevel)
	}
	return l.WithField("service", service)
}
