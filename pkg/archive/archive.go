// Package archive stores finalized wire messages.
//
// A Sink receives Records; implementations log them, write them to a
// directory, push them to S3, or fan out to several other sinks.
package archive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jdn-utils/jdnutils/pkg/normstr"
)

// Record names become path segments and object keys.
const (
	maxNameLength   = 128
	restrictedNames = "/\\ \x00"
)

// Record is one finalized message and the name it is archived under.
type Record struct {
	Timestamp time.Time
	Name      normstr.String
	Payload   []byte
}

// NewRecord validates name and builds a Record stamped with the current time.
func NewRecord(name string, payload []byte) (*Record, error) {
	n, err := normstr.Verify(name, "record name", maxNameLength, restrictedNames)
	if err != nil {
		return nil, err
	}
	return &Record{Timestamp: time.Now().UTC(), Name: n, Payload: payload}, nil
}

// Sink archives records.
type Sink interface {
	Archive(ctx context.Context, rec *Record) error
}

// SlogSink logs a structured line per record. It does not keep the payload.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink that emits structured logs.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger}
}

// Archive emits one log event describing rec.
func (s *SlogSink) Archive(ctx context.Context, rec *Record) error {
	s.logger.InfoContext(ctx, "record archived",
		slog.String("name", rec.Name.String()),
		slog.Int("bytes", len(rec.Payload)),
		slog.Time("timestamp", rec.Timestamp),
	)
	return nil
}

// FileSink writes each record below a root directory using the same
// date-partitioned layout as S3Sink.
type FileSink struct {
	root string
}

// NewFileSink creates a sink rooted at dir.
func NewFileSink(dir string) *FileSink {
	return &FileSink{root: dir}
}

// Archive writes rec.Payload to its partitioned path, creating directories
// as needed.
func (f *FileSink) Archive(ctx context.Context, rec *Record) error {
	path := filepath.Join(f.root, filepath.FromSlash(objectKey("", rec)))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}
	if err := os.WriteFile(path, rec.Payload, 0o644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// MultiSink calls multiple sinks in sequence.
// Best-effort: calls all sinks and collects errors, but doesn't stop on first error.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a sink that calls each of sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Archive calls all sinks and returns a combined error if any fail.
func (m *MultiSink) Archive(ctx context.Context, rec *Record) error {
	var errs []error
	for _, sink := range m.sinks {
		if err := sink.Archive(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("archive errors: %w", errors.Join(errs...))
	}
	return nil
}

// NoopSink discards records.
type NoopSink struct{}

// Archive does nothing and always returns nil.
func (NoopSink) Archive(ctx context.Context, rec *Record) error {
	return nil
}

// objectKey builds a date-partitioned key for rec.
// Format: [prefix/]year=YYYY/month=MM/day=DD/<name>.bin
func objectKey(prefix string, rec *Record) string {
	year, month, day := rec.Timestamp.Date()

	key := fmt.Sprintf("year=%04d/month=%02d/day=%02d/%s.bin",
		year, int(month), day, rec.Name)

	if prefix != "" {
		key = prefix + "/" + key
	}
	return key
}
