package internal

import (
	"os"

	"github.com/op/go-logging"
)

const (
	logModule = "linefix"
)

var (
	Log    = logging.MustGetLogger(logModule)
	format = logging.MustStringFormatter(
		`%{color}%{time:15:04:05.000} %{level:.4s}%{color:reset} %{message}`,
	)
)

// InitLogging sets up stderr logging; level follows go-logging, 0 is critical and 5 is debug.
func InitLogging(level int) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	logging.SetBackend(leveled)
}
