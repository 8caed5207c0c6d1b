package importer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// maxRemoteCSV caps the size of a fetched sheet.
const maxRemoteCSV = 5 << 20

// Fetcher downloads published spreadsheets (for example a Google Sheets
// "publish to web" CSV link) for preview. Requests are rate limited. A
// failed download is returned to the caller as is and never retried;
// nothing is written.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

func NewFetcher(requestsPerMinute int) *Fetcher {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 30
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
	}
}

// FetchCSV downloads url and parses it as an import table.
func (f *Fetcher) FetchCSV(ctx context.Context, url string) (*Table, error) {
	if !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "http://") {
		return nil, fmt.Errorf("%w: url must be http or https", ErrParse)
	}

	if err := f.wait(ctx, url); err != nil {
		return nil, err
	}
	body, err := f.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch csv: %w", err)
	}
	return ParseCSV(bytes.NewReader(body))
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv,text/plain;q=0.9,*/*;q=0.5")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	slog.Debug("sheet fetched", "url", url, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteCSV))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func (f *Fetcher) wait(ctx context.Context, url string) error {
	r := f.limiter.Reserve()
	if d := r.Delay(); d > 0 {
		slog.Debug("rate limiting", "wait", d, "url", url)
		select {
		case <-time.After(d):
		case <-ctx.Done():
			r.Cancel()
			return ctx.Err()
		}
	}
	return nil
}
