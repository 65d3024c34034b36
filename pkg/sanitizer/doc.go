// Package sanitizer normalizes guest-supplied text before validation and
// storage. All functions are idempotent and handle empty input gracefully.
package sanitizer
