// Package logging wires log/slog to a console handler and, optionally, a
// log-file handler fanned out with samber/slog-multi, following the
// teacher's io.Writer-based reporting style in
// pkg/hw/cpu/mc/programfiledump.go (one structured event per expensive
// analyzer decision, not a prose narration).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Options configures New.
type Options struct {
	// Level is the minimum level emitted to the console handler.
	Level slog.Level
	// LogFilePath, if non-empty, additionally fans records out to that
	// file as JSON.
	LogFilePath string
}

// New builds the process-wide logger. The returned closer should be
// deferred by the caller to flush/close the log file handler, when one
// was configured.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	console := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.Level})

	if opts.LogFilePath == "" {
		return slog.New(console), nopCloser{}, nil
	}

	f, err := os.OpenFile(opts.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %q: %w", opts.LogFilePath, err)
	}

	fileHandler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})

	fanout := slogmulti.Fanout(console, fileHandler)
	return slog.New(fanout), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SymbolCreated logs a new autogenerated symbol, the kind of event worth
// recording at Debug level since re-deriving it means re-running the
// analyzer.
func SymbolCreated(logger *slog.Logger, vram uint32, name string, section string) {
	logger.Debug("symbol created", "vram", fmt.Sprintf("0x%08X", vram), "name", name, "section", section)
}

// JumpTableBoundary logs entry or exit from a jump-table run while
// partitioning rodata.
func JumpTableBoundary(logger *slog.Logger, vram uint32, entering bool) {
	logger.Debug("jump table boundary", "vram", fmt.Sprintf("0x%08X", vram), "entering", entering)
}

// FileBoundaryFound logs a detected file split point during rodata
// partitioning.
func FileBoundaryFound(logger *slog.Logger, offset int) {
	logger.Debug("file boundary found", "offset", offset)
}
