package main

import (
	"io"
	"log/slog"
	"os"
)

type Tracer interface {
	Enter(string)
	Leave(string)
	Error(string, error)
}

type discardTracer struct{}

func Discard() Tracer {
	return discardTracer{}
}

func (_ discardTracer) Enter(_ string)          {}
func (_ discardTracer) Leave(_ string)          {}
func (_ discardTracer) Error(_ string, _ error) {}

type stdioTracer struct {
	logger *slog.Logger
	depth  int
}

func TraceStderr() Tracer {
	tracer := stdioTracer{
		logger: stdioLogger(os.Stderr),
	}
	return &tracer
}

func stdioLogger(w io.Writer) *slog.Logger {
	opts := slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	return slog.New(slog.NewTextHandler(w, &opts))
}

func (t *stdioTracer) Enter(name string) {
	t.depth++
	t.logger.Debug("start call", "function", name, "depth", t.depth)
}

func (t *stdioTracer) Leave(name string) {
	t.logger.Debug("done call", "function", name, "depth", t.depth)
	t.depth--
}

func (t *stdioTracer) Error(name string, err error) {
	t.logger.Error("call failed", "function", name, "error", err)
}
