// Package source opens transcripts from local files, standard input or S3.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Stdin is the reference that selects standard input.
const Stdin = "-"

const s3Scheme = "s3://"

// maxLineLength bounds a single transcript line.
const maxLineLength = 1 << 20

var ErrInvalidS3URL = errors.New("invalid s3 url, expected s3://bucket/key")

// ObjectGetter is the part of the S3 client used to fetch transcripts.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Config holds settings for opening transcripts.
type Config struct {
	Stdin      io.Reader    // used for "-"; os.Stdin when nil
	S3Endpoint string       // custom endpoint for S3-compatible stores such as MinIO
	S3Region   string       // overrides the region from the AWS environment
	S3Client   ObjectGetter // overrides the client built from the settings above
}

// Open returns a reader for ref, which is "-" for standard input, an
// s3://bucket/key URL, or a local path.
func Open(ctx context.Context, ref string, cfg Config) (io.ReadCloser, error) {
	switch {
	case ref == Stdin:
		if cfg.Stdin != nil {
			return io.NopCloser(cfg.Stdin), nil
		}
		return io.NopCloser(os.Stdin), nil

	case strings.HasPrefix(ref, s3Scheme):
		bucket, key, err := ParseS3URL(ref)
		if err != nil {
			return nil, err
		}
		client := cfg.S3Client
		if client == nil {
			client, err = newS3Client(ctx, cfg)
			if err != nil {
				return nil, err
			}
		}
		out, err := client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, fmt.Errorf("get object %s: %w", ref, err)
		}
		return out.Body, nil
	}

	f, err := os.Open(ref)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Load opens ref and reads it as transcript lines.
func Load(ctx context.Context, ref string, cfg Config) ([]string, error) {
	rc, err := Open(ctx, ref, cfg)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	lines, err := ReadLines(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ref, err)
	}
	return lines, nil
}

// ReadLines splits r into lines with line endings removed. A final empty
// line caused by a trailing newline is not included.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ParseS3URL splits s3://bucket/key into its bucket and key.
func ParseS3URL(ref string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(ref, s3Scheme)
	if !ok {
		return "", "", ErrInvalidS3URL
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidS3URL, ref)
	}
	return bucket, key, nil
}

func newS3Client(ctx context.Context, cfg Config) (*s3.Client, error) {
	var opts []func(*config.LoadOptions) error
	if cfg.S3Region != "" {
		opts = append(opts, config.WithRegion(cfg.S3Region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true // Required for MinIO
		}
	}), nil
}
