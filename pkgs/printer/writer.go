package printer

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync"
)

type ctxkey string

const writerKey = ctxkey("writerKey")

// ConsolePrinter is used when a command has no writer in its context.
var ConsolePrinter = New(os.Stdout)

// Ctx returns the console printer bound to the writer stored in ctx.
func Ctx(ctx context.Context) *Printer {
	return ConsolePrinter.Ctx(ctx)
}

// WithWriter stores the writer printers created from ctx should use.
func WithWriter(ctx context.Context, writer io.Writer) context.Context {
	return context.WithValue(ctx, writerKey, writer)
}

// GetWriter returns the writer stored in ctx.
func GetWriter(ctx context.Context) (io.Writer, bool) {
	w, ok := ctx.Value(writerKey).(io.Writer)
	return w, ok
}

// DeferredWriter holds command output until Flush so it is not interleaved
// with log lines written to stderr while the command runs.
type DeferredWriter struct {
	mu     sync.Mutex
	buff   bytes.Buffer
	writer io.Writer
}

func NewDeferredWriter(w io.Writer) *DeferredWriter {
	return &DeferredWriter{writer: w}
}

func (dw *DeferredWriter) Write(p []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	return dw.buff.Write(p)
}

// Flush writes everything buffered so far to the underlying writer.
func (dw *DeferredWriter) Flush() error {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	_, err := dw.buff.WriteTo(dw.writer)
	return err
}
