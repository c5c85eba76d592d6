package errx

import "net/http"

// WrapInference marks a chat model failure as InferenceUnavailable.
func WrapInference(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusServiceUnavailable, InferenceErrorMessage)
}
