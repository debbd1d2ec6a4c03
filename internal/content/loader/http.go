package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxRemoteDocument bounds remote payloads; hero documents are a few KB.
const maxRemoteDocument = 4 << 20

// ErrDocumentTooLarge reports a remote payload over maxRemoteDocument.
var ErrDocumentTooLarge = errors.New("content loader: remote document too large")

func loadHTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, error) {
	if client == nil {
		return nil, errors.New("content loader: http client is not configured")
	}
	if url == "" {
		return nil, errors.New("content loader: url is required")
	}

	reqCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.1")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("content loader: unexpected status %s", resp.Status)
	}

	return readLimited(resp.Body, maxRemoteDocument)
}

// readLimited reads at most limit bytes, failing rather than truncating when
// the body holds more.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrDocumentTooLarge, limit)
	}
	return data, nil
}
