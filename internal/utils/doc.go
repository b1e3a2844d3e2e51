// Package utils provides general-purpose helpers used across the
// application: JSON and callback-script response writers, the resty-based
// HTTP client, and admin session token generation and validation.
package utils
