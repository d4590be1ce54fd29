package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the slice of the S3 client used here, extracted so tests can
// stub object retrieval.
type S3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Resolver fetches s3://bucket/key URIs.
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	mux.Register("s3", &fetch.S3Resolver{Client: s3.NewFromConfig(cfg)})
type S3Resolver struct {
	Client S3API
	// MaxSize caps the object size; zero means DefaultMaxSize.
	MaxSize int64
}

func (s *S3Resolver) Fetch(ctx context.Context, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("fetch: s3 URI: %w", err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return nil, fmt.Errorf("fetch: malformed s3 URI: %q", uri)
	}
	key := strings.TrimPrefix(u.Path, "/")
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.Host),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch: s3 get %s: %w", uri, err)
	}
	defer out.Body.Close()
	return readAll(out.Body, s.MaxSize)
}
