package lz5

import (
	"io"

	charmlog "github.com/charmbracelet/log"
)

// Logger traces per-block encoder choices and per-command decoder
// dispatch. It is purely diagnostic: attaching one never changes the
// encoded bytes. The zero value is not meant to be used directly; a nil
// *Logger (the default when no WithLogger option is given) silently
// discards everything.
type Logger struct {
	inner *charmlog.Logger
}

// NewLogger returns a Logger that writes leveled, structured trace output
// to w. Use DebugLevel to see every block/command; Level mirrors
// charmbracelet/log's levels so callers don't need a direct import of that
// package just to pick a level.
func NewLogger(w io.Writer, level Level) *Logger {
	return &Logger{inner: charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(level),
		ReportTimestamp: false,
	})}
}

// Level mirrors github.com/charmbracelet/log's Level so callers can
// configure a Logger without importing that package directly.
type Level int32

const (
	DebugLevel Level = Level(charmlog.DebugLevel)
	InfoLevel  Level = Level(charmlog.InfoLevel)
	WarnLevel  Level = Level(charmlog.WarnLevel)
)

func (l *Logger) traceBlock(via string, b Block) {
	if l == nil || l.inner == nil {
		return
	}
	l.inner.Debug("block emitted",
		"cmd", b.Name,
		"via", via,
		"index", b.Index,
		"consumed", b.NumBytesConsumed,
		"encoded", len(b.Data),
	)
}

func (l *Logger) traceCommand(cmdBits byte, extended bool, headerSize, produced int) {
	if l == nil || l.inner == nil {
		return
	}
	l.inner.Debug("command decoded",
		"cmd", cmdBits,
		"extended", extended,
		"header", headerSize,
		"produced", produced,
	)
}
