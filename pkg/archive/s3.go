package archive

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the subset of *s3.Client used by S3Sink.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink archives records to S3 with date partitioning.
// Uses async buffered writes. Archive never waits on S3; write failures are
// logged and counted, and Shutdown reports them.
type S3Sink struct {
	client    PutObjectAPI
	bucket    string
	keyPrefix string
	logger    *slog.Logger

	records chan *Record
	wg      sync.WaitGroup
	failed  atomic.Int64
	ctx     context.Context
	cancel  context.CancelFunc
}

// S3SinkConfig configures an S3Sink.
type S3SinkConfig struct {
	Client     PutObjectAPI
	Bucket     string
	KeyPrefix  string       // Optional prefix for S3 keys (e.g., "records")
	Logger     *slog.Logger // For logging write errors
	BufferSize int          // Channel buffer size (default: 100)
}

// NewS3Sink creates an S3 sink and starts its background writer.
func NewS3Sink(config S3SinkConfig) *S3Sink {
	if config.BufferSize == 0 {
		config.BufferSize = 100
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	sink := &S3Sink{
		client:    config.Client,
		bucket:    config.Bucket,
		keyPrefix: config.KeyPrefix,
		logger:    config.Logger,
		records:   make(chan *Record, config.BufferSize),
		ctx:       ctx,
		cancel:    cancel,
	}

	sink.wg.Add(1)
	go sink.writer()

	return sink
}

// Archive enqueues rec for upload.
// Non-blocking: returns an error and drops rec if the buffer is full.
func (s *S3Sink) Archive(ctx context.Context, rec *Record) error {
	select {
	case s.records <- rec:
		return nil
	default:
		s.logger.Warn("s3 sink buffer full, dropping record",
			slog.String("name", rec.Name.String()))
		return fmt.Errorf("s3 sink buffer full")
	}
}

// Shutdown stops the writer after flushing queued records.
// Blocks until the queue is drained or timeout is reached. Returns an error
// if any record failed to upload.
func (s *S3Sink) Shutdown(timeout time.Duration) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if n := s.failed.Load(); n > 0 {
			return fmt.Errorf("%d records failed to upload to S3", n)
		}
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout after %v", timeout)
	}
}

func (s *S3Sink) writer() {
	defer s.wg.Done()

	for {
		select {
		case rec := <-s.records:
			s.upload(rec)
		case <-s.ctx.Done():
			s.drain()
			return
		}
	}
}

func (s *S3Sink) drain() {
	for {
		select {
		case rec := <-s.records:
			s.upload(rec)
		default:
			return
		}
	}
}

func (s *S3Sink) upload(rec *Record) {
	if err := s.put(rec); err != nil {
		s.failed.Add(1)
		s.logger.Error("failed to archive record to S3",
			slog.String("name", rec.Name.String()),
			slog.String("error", err.Error()))
	}
}

func (s *S3Sink) put(rec *Record) error {
	key := objectKey(s.keyPrefix, rec)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(rec.Payload),
		ContentType: aws.String("application/octet-stream"),
	})
	if err != nil {
		return fmt.Errorf("failed to write to S3: %w", err)
	}

	s.logger.Debug("archived record to S3",
		slog.String("bucket", s.bucket),
		slog.String("key", key),
		slog.Int("bytes", len(rec.Payload)))

	return nil
}
