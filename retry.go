package client

import (
	"io"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/offdeal/bdr-client-go/internal/apierrors"
)

// retryTransport replays a request with exponential backoff while the
// outcome is recoverable (network error, 5xx, 408, 429). It is installed
// only when WithRetry is given; the default client never retries.
type retryTransport struct {
	base        http.RoundTripper
	maxAttempts int
}

func (rt *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 100 * time.Millisecond
	exp.Multiplier = 2
	exp.MaxInterval = 5 * time.Second
	exp.Reset()

	for attempt := 1; ; attempt++ {
		resp, err := rt.base.RoundTrip(req)
		if !retryable(resp, err) || attempt >= rt.maxAttempts || !canReplay(req) {
			return resp, err
		}

		// Release the failed response before replaying.
		if resp != nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}

		select {
		case <-time.After(exp.NextBackOff()):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}

		if req.GetBody != nil {
			body, gerr := req.GetBody()
			if gerr != nil {
				return nil, gerr
			}
			req.Body = body
		}
	}
}

// canReplay reports whether the request body, if any, can be restored for
// another attempt. Bodyless requests always can; everything the SDK sends
// goes out as a bytes.Reader, for which net/http supplies GetBody.
func canReplay(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
}

// retryable decides whether an attempt's outcome warrants another try.
// Transport errors are treated as transient; response statuses follow
// the shared classification.
func retryable(resp *http.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp.StatusCode < 400 {
		return false
	}
	return apierrors.Classify(resp.StatusCode) == apierrors.Recoverable
}
