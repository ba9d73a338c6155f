// Package limiter throttles outbound github calls.
package limiter

import (
	"fmt"
	"net/http"

	"github.com/m-zajac/ghinsights/internal/app"
	"golang.org/x/time/rate"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Limiter is a shared token bucket for all github requests, regardless of client used.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates Limiter instance.
// maxRate - maximum number of requests per second, burst - max requests at once.
func New(maxRate float64, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(maxRate), burst),
	}
}

// Doer wraps HTTPDoer with the limiter.
func (l *Limiter) Doer(doer HTTPDoer) HTTPDoer {
	return &limitedHTTPDoer{
		doer:    doer,
		limiter: l,
	}
}

// Transport wraps http.RoundTripper with the limiter. Nil means http.DefaultTransport.
func (l *Limiter) Transport(rt http.RoundTripper) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return &limitedTransport{
		rt:      rt,
		limiter: l,
	}
}

func (l *Limiter) wait(r *http.Request) error {
	if err := l.limiter.Wait(r.Context()); err != nil {
		return app.TooManyRequestsError(fmt.Sprintf("waiting for github limiter: %v", err))
	}
	return nil
}

// limitedHTTPDoer wraps HTTPDoer and allows Dos with maximum rate limit.
type limitedHTTPDoer struct {
	doer    HTTPDoer
	limiter *Limiter
}

// Do executes http request. If limit is exceeded, blocks until call rate is within limit.
func (d *limitedHTTPDoer) Do(r *http.Request) (*http.Response, error) {
	if err := d.limiter.wait(r); err != nil {
		return nil, err
	}

	return d.doer.Do(r)
}

type limitedTransport struct {
	rt      http.RoundTripper
	limiter *Limiter
}

func (t *limitedTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if err := t.limiter.wait(r); err != nil {
		return nil, err
	}

	return t.rt.RoundTrip(r)
}
