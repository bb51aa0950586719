// Package fetch acquires one match-report document by reference: a local
// file path or an http(s) URL. Retry policy lives entirely here; the
// scoring core only ever sees document text.
package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Rotated across attempts; some mirrors answer differently depending on
// the identifying headers.
var userAgents = []string{
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119 Safari/537.36 (+stats-research)",
	"Mozilla/5.0 (compatible; HFWScoreBot/1.0; +https://example.com/bot)",
}

type Fetcher struct {
	HTTP *http.Client
	Log  *zap.Logger
}

func New(log *zap.Logger) *Fetcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{
		HTTP: &http.Client{Timeout: 30 * time.Second},
		Log:  log,
	}
}

// Fetch resolves a reference to document text or fails.
func (f *Fetcher) Fetch(ctx context.Context, ref string) (string, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return f.get(ctx, ref)
	}
	b, err := os.ReadFile(ref)
	if err != nil {
		return "", errors.Wrap(err, "read report file")
	}
	return string(b), nil
}

// -------------------- retry tunables --------------------

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key))); err == nil {
		return v
	}
	return def
}

func retryConfig() (maxAttempts int, base, maxBackoff, cooldown time.Duration) {
	maxAttempts = envInt("HTTP_MAX_ATTEMPTS", 6)
	base = time.Duration(envInt("HTTP_RETRY_BASE_MS", 400)) * time.Millisecond
	maxBackoff = time.Duration(envInt("HTTP_RETRY_MAX_MS", 6000)) * time.Millisecond
	cooldown = time.Duration(envInt("HTTP_COOLDOWN_MS", 7000)) * time.Millisecond
	return
}

func parseRetryAfter(h string) time.Duration {
	h = strings.TrimSpace(h)
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(h); err == nil {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

func backoff(attempt int, base, max time.Duration) time.Duration {
	d := base * time.Duration(1<<attempt)
	if d > max {
		return max
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// get fetches a URL with identifying headers and retries on 429/5xx,
// honoring Retry-After when present.
func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	maxAttempts, base, maxBackoff, cooldown := retryConfig()

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", errors.Wrap(err, "build request")
		}
		req.Header.Set("User-Agent", userAgents[attempt%len(userAgents)])
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := f.HTTP.Do(req)
		if err != nil {
			lastErr = err
			if attempt == maxAttempts-1 {
				break
			}
			if err := sleep(ctx, backoff(attempt, base, maxBackoff)); err != nil {
				return "", err
			}
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			if readErr != nil {
				lastErr = readErr
				if err := sleep(ctx, backoff(attempt, base, maxBackoff)); err != nil {
					return "", err
				}
				continue
			}
			return string(body), nil

		case resp.StatusCode == http.StatusTooManyRequests:
			wait := parseRetryAfter(resp.Header.Get("Retry-After"))
			if wait == 0 {
				wait = cooldown
			}
			f.Log.Warn("rate limited, cooling down",
				zap.String("url", url), zap.Duration("wait", wait))
			lastErr = errors.Newf("status 429 for %s", url)
			if err := sleep(ctx, wait); err != nil {
				return "", err
			}

		case resp.StatusCode >= 500:
			lastErr = errors.Newf("status %d for %s", resp.StatusCode, url)
			if err := sleep(ctx, backoff(attempt, base, maxBackoff)); err != nil {
				return "", err
			}

		default:
			return "", errors.Newf("status %d for %s (body len=%d)", resp.StatusCode, url, len(body))
		}
	}
	return "", errors.Wrapf(lastErr, "exhausted retries for %s", url)
}
