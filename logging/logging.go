package logging

import (
	"io"
	"os"
	"path"

	"github.com/fernandosanchezjr/splitmix64/utils"
	"github.com/sirupsen/logrus"
)

const LogPath = "logs"

var logFile *os.File

func getLogFile() *os.File {
	logFolder := utils.GetSubFolder(LogPath)
	f, err := os.OpenFile(path.Join(logFolder, "log.out"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logrus.Fatal("Error opening log file:", err)
		return nil
	}
	return f
}

func exitHandler() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

// SetupLogger logs to stderr, which keeps stdout free for generator output. With toFile set
// the log is also appended to <home>/logs/log.out.
func SetupLogger(level string, toFile bool) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	logrus.SetLevel(parsed)
	if !toFile {
		logrus.SetOutput(os.Stderr)
		return nil
	}
	logFile = getLogFile()
	logrus.RegisterExitHandler(exitHandler)
	logrus.SetOutput(io.MultiWriter(logFile, os.Stderr))
	return nil
}

// Close flushes and closes the log file, if any.
func Close() {
	exitHandler()
	logFile = nil
}
