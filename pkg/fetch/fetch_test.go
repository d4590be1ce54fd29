package fetch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func TestURIScheme(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"http://example.com/a.png", "http"},
		{"HTTPS://example.com", "https"},
		{"data:image/png;base64,AAA", "data"},
		{"s3://bucket/key", "s3"},
		{"file:///tmp/a.png", "file"},
		{"images/logo.png", ""},
		{"/abs/path.png", ""},
		{"a.png?x:y", ""},
	}
	for _, tt := range tests {
		if got := uriScheme(tt.uri); got != tt.want {
			t.Errorf("uriScheme(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}

func TestDataResolver(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    string
		wantErr bool
	}{
		{"base64", "data:image/png;base64,aGVsbG8=", "hello", false},
		{"plain", "data:text/plain,hello%20world", "hello world", false},
		{"no media type", "data:,abc", "abc", false},
		{"no payload", "data:image/png", "", true},
		{"bad base64", "data:;base64,!!!", "", true},
		{"not data", "http://example.com", "", true},
	}
	var r DataResolver
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Fetch(context.Background(), tt.uri)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Fetch(%q) error = %v, wantErr %v", tt.uri, err, tt.wantErr)
			}
			if err == nil && string(got) != tt.want {
				t.Errorf("Fetch(%q) = %q, want %q", tt.uri, got, tt.want)
			}
		})
	}
}

func TestFileResolver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.bin")
	if err := os.WriteFile(path, []byte("pixels"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := &FileResolver{Root: dir}
	got, err := r.Fetch(context.Background(), "img.bin")
	if err != nil {
		t.Fatalf("relative fetch: %v", err)
	}
	if string(got) != "pixels" {
		t.Errorf("relative fetch = %q, want %q", got, "pixels")
	}

	got, err = r.Fetch(context.Background(), "file://"+path)
	if err != nil {
		t.Fatalf("file URI fetch: %v", err)
	}
	if string(got) != "pixels" {
		t.Errorf("file URI fetch = %q, want %q", got, "pixels")
	}

	if _, err := r.Fetch(context.Background(), "missing.bin"); err == nil {
		t.Error("fetch of missing file succeeded")
	}
}

func TestFileResolverMaxSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.bin")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), 100), 0o644); err != nil {
		t.Fatal(err)
	}
	r := &FileResolver{MaxSize: 10}
	if _, err := r.Fetch(context.Background(), path); !errors.Is(err, ErrTooLarge) {
		t.Errorf("error = %v, want ErrTooLarge", err)
	}
}

func TestHTTPResolver(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			io.WriteString(w, "payload")
		case "/big":
			io.WriteString(w, strings.Repeat("x", 1000))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	r := &HTTPResolver{Client: srv.Client()}
	got, err := r.Fetch(context.Background(), srv.URL+"/ok")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("fetch = %q, want %q", got, "payload")
	}

	if _, err := r.Fetch(context.Background(), srv.URL+"/missing"); err == nil {
		t.Error("fetch of 404 succeeded")
	}

	capped := &HTTPResolver{Client: srv.Client(), MaxSize: 100}
	if _, err := capped.Fetch(context.Background(), srv.URL+"/big"); !errors.Is(err, ErrTooLarge) {
		t.Errorf("error = %v, want ErrTooLarge", err)
	}
}

type staticResolver struct {
	b []byte
}

func (s staticResolver) Fetch(context.Context, string) ([]byte, error) { return s.b, nil }

func TestSchemeMux(t *testing.T) {
	m := NewSchemeMux()
	m.Register("mem", staticResolver{b: []byte("hit")})
	m.Register("file", staticResolver{b: []byte("local")})

	got, err := m.Fetch(context.Background(), "mem://anything")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(got) != "hit" {
		t.Errorf("fetch = %q, want %q", got, "hit")
	}

	// No scheme falls back to the file resolver.
	got, err = m.Fetch(context.Background(), "relative/path.png")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(got) != "local" {
		t.Errorf("fetch = %q, want %q", got, "local")
	}

	if _, err := m.Fetch(context.Background(), "gopher://hole"); !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("error = %v, want ErrUnsupportedScheme", err)
	}
}

type stubS3 struct {
	bucket, key string
	body        string
}

func (s *stubS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	s.bucket, s.key = *in.Bucket, *in.Key
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(s.body))}, nil
}

func TestS3Resolver(t *testing.T) {
	stub := &stubS3{body: "object bytes"}
	r := &S3Resolver{Client: stub}

	got, err := r.Fetch(context.Background(), "s3://assets/icons/logo.png")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(got) != "object bytes" {
		t.Errorf("fetch = %q, want %q", got, "object bytes")
	}
	if stub.bucket != "assets" || stub.key != "icons/logo.png" {
		t.Errorf("requested %s/%s, want assets/icons/logo.png", stub.bucket, stub.key)
	}

	if _, err := r.Fetch(context.Background(), "s3:///nokey"); err == nil {
		t.Error("fetch of bucketless URI succeeded")
	}
}
