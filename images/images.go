// Package images stores plant photos in an S3-compatible bucket and
// validates uploads before they leave the process. Keys map to object
// keys directly under a single bucket.
package images

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultMaxBytes caps upload size. One constant on purpose: the source
// app disagreed with itself between 2MB and 5MB call sites.
const DefaultMaxBytes = 5 << 20

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ValidateImage checks the sniffed content type and size against the
// upload policy. maxBytes <= 0 selects DefaultMaxBytes.
func ValidateImage(contentType string, size, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if !allowedContentTypes[contentType] {
		return fmt.Errorf("invalid file type %q: upload a JPEG, PNG, GIF, or WebP image", contentType)
	}
	if size > maxBytes {
		return fmt.Errorf("file too large: maximum size is %dMB", maxBytes>>20)
	}
	return nil
}

// Config holds explicit construction parameters. Credentials come from
// the default AWS chain.
type Config struct {
	Region    string
	Bucket    string
	Endpoint  string // optional; custom endpoint (e.g. MinIO)
	PathStyle bool
	MaxBytes  int64
}

// Store implements photo upload/delete against S3 or a compatible
// backend.
type Store struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
	maxBytes int64
}

// New creates an S3-backed image store.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Store{
		client:   client,
		bucket:   cfg.Bucket,
		region:   region,
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		maxBytes: maxBytes,
	}, nil
}

// MaxBytes returns the configured upload size limit.
func (s *Store) MaxBytes() int64 { return s.maxBytes }

// Upload validates and stores one plant photo, returning its public URL.
// Keys follow "plants/<plantID>_<unix>_<filename>".
func (s *Store) Upload(ctx context.Context, plantID, filename, contentType string, r io.Reader, size int64) (string, error) {
	if err := ValidateImage(contentType, size, s.maxBytes); err != nil {
		return "", err
	}
	key := fmt.Sprintf("plants/%s_%d_%s", plantID, time.Now().Unix(), sanitizeFilename(filename))
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        r,
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return s.objectURL(key), nil
}

// Delete removes the photo behind the given URL. Deleting an object that
// is already gone is not an error.
func (s *Store) Delete(ctx context.Context, imageURL string) error {
	key, err := s.keyFromURL(imageURL)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.bucket, Key: &key})
	if err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}

func (s *Store) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func (s *Store) keyFromURL(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("bad image url: %w", err)
	}
	p := strings.TrimPrefix(u.Path, "/")
	// Path-style URLs carry the bucket as the first segment.
	p = strings.TrimPrefix(p, s.bucket+"/")
	if p == "" {
		return "", fmt.Errorf("bad image url: no object key in %q", imageURL)
	}
	return p, nil
}

func sanitizeFilename(name string) string {
	name = path.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	if name == "" || name == "." {
		name = "image"
	}
	return name
}
