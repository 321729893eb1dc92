//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const idempotencyHeader = "Idempotency-Key"

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// IdempotencyHeaders builds request headers carrying key as Idempotency-Key.
func IdempotencyHeaders(key string) map[string]string {
	return map[string]string{idempotencyHeader: key}
}

// AssertIdempotencyKeyEchoed checks the response carries key back and returns it.
func AssertIdempotencyKeyEchoed(t *testing.T, w *httptest.ResponseRecorder, key string) string {
	t.Helper()
	got := w.Header().Get(idempotencyHeader)
	if key != "" {
		assert.Equal(t, key, got, "idempotency key not echoed")
	} else {
		assert.NotEmpty(t, got, "no idempotency key in response")
	}
	return got
}
