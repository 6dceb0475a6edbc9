package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type LogFormatter struct {
	logrus.TextFormatter
}

func (s *LogFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := time.Now().Local().Format("2006-01-02 15:04:05")
	msg := fmt.Sprintf("%s [%s] %s\n", timestamp, strings.ToUpper(entry.Level.String()), entry.Message)
	return []byte(msg), nil
}

// SetLogLevel applies the --log-level flag value to the package-level logrus
// logger used across the library.
func SetLogLevel(level string) {
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		ErrExit("invalid log level %q (use TRACE, DEBUG, INFO or WARN)", level)
	}
	logrus.SetLevel(parsed)
	logrus.SetFormatter(new(LogFormatter))
}
