package logger

import (
	"io"
	"log"
	"os"
)

var (
	Info  *log.Logger
	Error *log.Logger
	Debug *log.Logger
	Warn  *log.Logger
)

const logFlags = log.Ldate | log.Ltime | log.LUTC | log.Lshortfile

func init() {
	Info = log.New(os.Stdout, "INFO: ", logFlags)
	Error = log.New(os.Stderr, "ERROR: ", logFlags)
	Warn = log.New(os.Stdout, "WARN: ", logFlags)
	Debug = log.New(io.Discard, "DEBUG: ", logFlags)
}

// SetDebug toggles the Debug logger. It is discarded by default.
func SetDebug(enabled bool) {
	if enabled {
		Debug.SetOutput(os.Stdout)
		return
	}
	Debug.SetOutput(io.Discard)
}
