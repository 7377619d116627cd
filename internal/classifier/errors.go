package classifier

import "errors"

var (
	// ErrClassifierUnavailable indicates the classifier service is unreachable
	ErrClassifierUnavailable = errors.New("classifier service unavailable")

	// ErrInvalidPrediction indicates the prediction response is invalid
	ErrInvalidPrediction = errors.New("invalid prediction response")

	// ErrConnectionFailed indicates the HTTP request could not be delivered
	ErrConnectionFailed = errors.New("classifier connection failed")

	// ErrTimeout indicates request timed out
	ErrTimeout = errors.New("classifier request timeout")
)
