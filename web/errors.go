package web

import (
	"errors"
	"fmt"
)

// The Thordata APIs fail in four distinguishable ways. Each gets its
// own error type so callers can branch with errors.As even when the
// error has been wrapped along the way. Anything that matches none of
// them is treated as unknown.

// RateLimitError indicates the upstream service throttled the request
// or the account is out of quota.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	return e.Message
}

// AuthError indicates the upstream service rejected the credentials.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// APIError indicates the upstream service reported a request-level
// failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return e.Message
}

// ConfigError indicates unusable local configuration, detected before
// any network call is made.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// ErrorKind classifies a failure from the Thordata APIs. The values
// double as the tags serialized into tool payloads.
type ErrorKind string

const (
	KindRateLimit ErrorKind = "thordata_rate_limit"
	KindAuth      ErrorKind = "thordata_auth"
	KindAPI       ErrorKind = "thordata_api"
	KindConfig    ErrorKind = "thordata_config"
	KindUnknown   ErrorKind = "unknown"
)

func (k ErrorKind) String() string {
	return string(k)
}

// Classify maps an error to its kind. Wrapped errors classify the same
// as bare ones. The checks run rate limit, auth, api, config; the
// first match wins and anything else is KindUnknown.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	var rateLimitErr *RateLimitError
	if errors.As(err, &rateLimitErr) {
		return KindRateLimit
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return KindAuth
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return KindAPI
	}
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return KindConfig
	}
	return KindUnknown
}
