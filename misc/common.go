package misc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var (
	ErrLogger  = newLogger(os.Stderr, "FAIL")
	WarnLogger = newLogger(os.Stderr, "WARN")
	InfoLogger = newLogger(os.Stdout, "INFO")
)

func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    true,
		Prefix:          prefix,
	})
}

// SetLogLevel parses level ("debug", "info", "warn", "error")
// and applies it to every logger here.
func SetLogLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("bad log level %q: %w", level, err)
	}

	ErrLogger.SetLevel(lvl)
	WarnLogger.SetLevel(lvl)
	InfoLogger.SetLevel(lvl)

	return nil
}

func CheckFileExists(path string) (bool, error) {
	// check if file exists
	info, err := os.Stat(path)

	if err == nil { // file exists
		mode := info.Mode()
		if !mode.IsRegular() {
			return false, fmt.Errorf("%s is not a regular file", path)
		}

		return true, nil
	} else if errors.Is(err, os.ErrNotExist) { // file does not exists
		return false, nil
	} else { // unable to check if file exists or not
		return false, err
	}
}
