package logger

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Init configures the standard logrus logger at info level
func Init() error {
	return InitWithLevel("info")
}

func InitWithLevel(logLevel string) error {
	return InitWithConfig(logLevel, "expiry.log")
}

// InitWithConfig sets the level and sends output to stderr and, when
// logFilePath is not empty, to that file as well
func InitWithConfig(logLevel, logFilePath string) error {
	log.SetLevel(ParseLevel(logLevel))
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if logFilePath == "" {
		log.SetOutput(os.Stderr)
		return nil
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	return nil
}

// ParseLevel maps a config level name to a logrus level. "verbose" is
// accepted as trace; unknown names default to info.
func ParseLevel(logLevel string) log.Level {
	name := strings.ToLower(strings.TrimSpace(logLevel))
	if name == "verbose" {
		return log.TraceLevel
	}

	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
