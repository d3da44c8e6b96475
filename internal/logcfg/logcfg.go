// Package logcfg configures the process-wide logrus logger.
package logcfg

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

// RunLoggerConfig sets the logrus level, format and output. Logs go to
// stdout and to a size-rotated file; the rotation limits come from the
// environment config.
func RunLoggerConfig(envLogsLevel, logFileName string, maxSizeMB, maxBackups, maxAgeDays int) {
	logLevel, err := logrus.ParseLevel(envLogsLevel)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.SetLevel(logLevel)
	logrus.SetReportCaller(true)

	logrus.SetFormatter(&logrus.TextFormatter{
		CallerPrettyfier: func(f *runtime.Frame) (function string, file string) {
			_, filename := path.Split(f.File)
			filename = fmt.Sprintf("%s.%d.%s", filename, f.Line, f.Function)
			return "", filename
		},
	})

	mw := io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   logFileName,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	})
	logrus.SetOutput(mw)
}
