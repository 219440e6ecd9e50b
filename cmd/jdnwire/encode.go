package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jdn-utils/jdnutils/pkg/archive"
	"github.com/jdn-utils/jdnutils/pkg/config"
	"github.com/jdn-utils/jdnutils/pkg/wire"
)

// EncodeCLI validates values and writes them as one encoded sequence.
type EncodeCLI struct {
	Field      string   `help:"Profile key the values belong to" short:"f" default:"value"`
	Finalize   bool     `help:"Prefix the output with its total length"`
	Out        string   `help:"Output file (default stdout)" short:"o" type:"path"`
	Name       string   `help:"Record name used when archiving" default:"record"`
	ArchiveDir string   `help:"Also archive the finalized message under this directory" type:"path" env:"JDNWIRE_ARCHIVE_DIR"`
	S3Bucket   string   `help:"Also archive the finalized message to this S3 bucket; a failed upload fails the command" name:"s3-bucket" env:"JDNWIRE_S3_BUCKET"`
	S3Prefix   string   `help:"Key prefix for S3 archives" name:"s3-prefix" env:"JDNWIRE_S3_PREFIX" default:"records"`
	Values     []string `arg:"" help:"Values to encode"`

	// newS3 overrides the S3 client in tests.
	newS3 func(ctx context.Context) (archive.PutObjectAPI, error) `kong:"-"`
}

func (e *EncodeCLI) Run(logger *slog.Logger, profiles *config.Profiles, out io.Writer) error {
	values := make([]string, 0, len(e.Values))
	for _, raw := range e.Values {
		s, err := profiles.Verify(e.Field, raw)
		if err != nil {
			return err
		}
		values = append(values, s.String())
	}

	var buf []byte
	wire.SerializeSequence(values, &buf)
	if e.Finalize {
		wire.Finalize(&buf)
	}
	logger.Debug("encoded sequence", "field", e.Field, "count", len(values), "bytes", len(buf))

	if err := e.write(out, buf); err != nil {
		return err
	}
	return e.archive(context.Background(), logger, buf)
}

func (e *EncodeCLI) write(out io.Writer, buf []byte) error {
	if e.Out == "" {
		_, err := out.Write(buf)
		return err
	}
	if err := os.WriteFile(e.Out, buf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", e.Out, err)
	}
	return nil
}

func (e *EncodeCLI) archive(ctx context.Context, logger *slog.Logger, buf []byte) error {
	if e.ArchiveDir == "" && e.S3Bucket == "" {
		return nil
	}

	// Archives always hold a complete message. Finalize builds a new
	// slice, so buf is left as written.
	payload := buf
	if !e.Finalize {
		wire.Finalize(&payload)
	}
	rec, err := archive.NewRecord(e.Name, payload)
	if err != nil {
		return err
	}

	sinks := []archive.Sink{archive.NewSlogSink(logger)}
	if e.ArchiveDir != "" {
		sinks = append(sinks, archive.NewFileSink(e.ArchiveDir))
	}

	var s3Sink *archive.S3Sink
	if e.S3Bucket != "" {
		client, err := e.s3Client(ctx)
		if err != nil {
			return err
		}
		s3Sink = archive.NewS3Sink(archive.S3SinkConfig{
			Client:    client,
			Bucket:    e.S3Bucket,
			KeyPrefix: e.S3Prefix,
			Logger:    logger,
		})
		sinks = append(sinks, s3Sink)
	}

	err = archive.NewMultiSink(sinks...).Archive(ctx, rec)
	if s3Sink != nil {
		if serr := s3Sink.Shutdown(30 * time.Second); serr != nil && err == nil {
			err = serr
		}
	}
	return err
}

func (e *EncodeCLI) s3Client(ctx context.Context) (archive.PutObjectAPI, error) {
	if e.newS3 != nil {
		return e.newS3(ctx)
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}
