package fetchers

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const userAgent = "spotcast/1.0 (+https://github.com/spotcast)"

// Endpoint is one upstream URL with its own pacing and breaker state.
// The limiter keeps the service polite toward free cluster feeds; the
// breaker makes a dead upstream fail fast instead of burning its full
// deadline on every aggregation.
type Endpoint struct {
	Name    string
	URL     string
	Headers map[string]string

	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

// NewEndpoint creates an endpoint descriptor with fresh limiter and breaker
func NewEndpoint(name, url string, headers map[string]string) *Endpoint {
	return &Endpoint{
		Name:    name,
		URL:     url,
		Headers: headers,
		limiter: rate.NewLimiter(rate.Every(750*time.Millisecond), 1),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 5,
			Interval:    time.Minute,
			Timeout:     2 * time.Minute,
		}),
	}
}

// Fetcher performs bounded single-attempt GETs against endpoints
type Fetcher struct {
	client  *resty.Client
	timeout time.Duration
}

// NewFetcher creates a fetcher whose attempts are bounded by timeout.
// One attempt per call: recovering from a failed source is the fallback
// chain's job, so the client never retries on its own.
func NewFetcher(timeout time.Duration) *Fetcher {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRetryCount(0)
	client.SetHeader("User-Agent", userAgent)

	return &Fetcher{
		client:  client,
		timeout: timeout,
	}
}

// Timeout returns the per-attempt deadline
func (f *Fetcher) Timeout() time.Duration {
	return f.timeout
}

// Fetch issues one GET against the endpoint and returns the raw body.
// Failures come back as *FetchError classified by the taxonomy; an attempt
// abandoned at the deadline is a timeout, a rejected response is an
// http_status failure, everything else transport-level is network.
func (f *Fetcher) Fetch(ctx context.Context, ep *Endpoint) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	if err := ep.limiter.Wait(attemptCtx); err != nil {
		return "", &FetchError{Source: ep.Name, Kind: KindTimeout, Err: err}
	}

	body, err := ep.breaker.Execute(func() (interface{}, error) {
		req := f.client.R().SetContext(attemptCtx)
		if len(ep.Headers) > 0 {
			req.SetHeaders(ep.Headers)
		}

		resp, err := req.Get(ep.URL)
		if err != nil {
			return nil, classifyTransport(ep.Name, err)
		}
		if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
			return nil, &FetchError{Source: ep.Name, Kind: KindHTTPStatus, Status: resp.StatusCode()}
		}
		return resp.String(), nil
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return "", &FetchError{Source: ep.Name, Kind: KindNetwork, Err: err}
		}
		return "", err
	}

	return body.(string), nil
}
