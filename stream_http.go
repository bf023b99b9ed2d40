package mdhtml

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrInputTooLarge reports a remote document larger than the allowed size.
var ErrInputTooLarge = errors.New("input too large")

// HTTPConvertRequest configures HTTPConvert.
type HTTPConvertRequest struct {
	URL    string
	Client *http.Client
	Writer io.Writer
	// MaxBytes caps the size of the fetched document. Zero means no limit.
	MaxBytes int64
	Options  []Option
}

// HTTPConvert fetches a Markdown document with GET and writes its HTML to
// Writer. Non-2xx responses and documents over MaxBytes fail without
// writing anything.
func HTTPConvert(ctx context.Context, req HTTPConvertRequest) error {
	if req.URL == "" {
		return fmt.Errorf("convert http: URL is required")
	}
	if req.Writer == nil {
		return fmt.Errorf("convert http: Writer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return fmt.Errorf("convert http %s: %w", req.URL, err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return fmt.Errorf("convert http %s: unsupported scheme %q", req.URL, httpReq.URL.Scheme)
	}
	httpReq.Header.Set("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.1")
	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("convert http %s: %w", req.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("convert http %s: status %s", req.URL, resp.Status)
	}
	var body io.Reader = resp.Body
	if req.MaxBytes > 0 {
		if resp.ContentLength > req.MaxBytes {
			return fmt.Errorf("convert http %s: %w: %d bytes", req.URL, ErrInputTooLarge, resp.ContentLength)
		}
		body = &limitReader{r: resp.Body, remaining: req.MaxBytes}
	}
	if err := ConvertStream(ConvertRequest{Reader: body, Writer: req.Writer, Options: req.Options}); err != nil {
		return fmt.Errorf("convert http %s: %w", req.URL, err)
	}
	return nil
}

// limitReader fails with ErrInputTooLarge once more than remaining bytes
// have been read.
type limitReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitReader) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		return 0, ErrInputTooLarge
	}
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return n, ErrInputTooLarge
	}
	return n, err
}
