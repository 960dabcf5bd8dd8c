package turtle

import "github.com/sirupsen/logrus"

// logger receives guard reports and debug warnings. Defaults to the logrus
// standard logger.
var logger = logrus.StandardLogger()

// SetLogger replaces the logger used for guard reports and debug warnings.
// Passing nil restores the logrus standard logger.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}

// Logger returns the logger currently in use.
func Logger() *logrus.Logger {
	return logger
}
