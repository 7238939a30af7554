package client

import (
	"errors"

	"github.com/offdeal/bdr-client-go/internal/apierrors"
)

// APIError is the single failure kind every operation returns when the
// backend answers with a non-2xx status. Error() yields the response body
// text verbatim, or "HTTP <code>" when the body was empty.
type APIError = apierrors.APIError

// AsAPIError extracts the *APIError from err, if any.
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	ok := errors.As(err, &ae)
	return ae, ok
}

// IsNotFound reports whether err is the backend saying 404.
func IsNotFound(err error) bool { return apierrors.IsNotFound(err) }
