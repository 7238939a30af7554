package apierrors

// Classify maps an HTTP status code to a retry category:
// - 4xx client errors (except 408 and 429) are irrecoverable
// - 5xx server errors are recoverable
// - anything unexpected is treated as recoverable
func Classify(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408: // Request Timeout
			return Recoverable
		case 429: // Too Many Requests
			return Recoverable
		default:
			return Irrecoverable
		}
	default:
		return Recoverable
	}
}

// IsRecoverable reports whether err may be retried. Network errors
// (anything that is not an APIError) are considered transient.
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}
	if ae, ok := err.(*APIError); ok {
		return Classify(ae.StatusCode) == Recoverable
	}
	return true
}
