package preview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Prober checks whether an image path can be loaded
type Prober interface {
	Probe(ctx context.Context, src string) (bool, error)
}

// ProberFunc adapts a function to Prober
type ProberFunc func(ctx context.Context, src string) (bool, error)

// Probe calls f
func (f ProberFunc) Probe(ctx context.Context, src string) (bool, error) {
	return f(ctx, src)
}

// FSProber looks image paths up in a file system rooted at the static dir.
// An image path "/images/x/y.jpg" maps to "images/x/y.jpg" in FS.
type FSProber struct {
	FS fs.FS
}

// Probe reports whether src is a regular file in FS
func (p FSProber) Probe(_ context.Context, src string) (bool, error) {
	name := strings.TrimPrefix(src, "/")
	if !fs.ValidPath(name) {
		return false, fmt.Errorf("invalid image path %q", src)
	}

	info, err := fs.Stat(p.FS, name)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// HTTPProber issues HEAD requests for image paths against BaseURL
type HTTPProber struct {
	Client  *http.Client
	BaseURL string
}

// NewHTTPProber creates an HTTPProber with a bounded client timeout
func NewHTTPProber(baseURL string) *HTTPProber {
	return &HTTPProber{
		Client:  &http.Client{Timeout: 5 * time.Second},
		BaseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Probe reports whether the server answers src with a 2xx status
func (p *HTTPProber) Probe(ctx context.Context, src string) (bool, error) {
	escaped := (&url.URL{Path: src}).EscapedPath()
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.BaseURL+escaped, nil)
	if err != nil {
		return false, err
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode <= 299, nil
}
