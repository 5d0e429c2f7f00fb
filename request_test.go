package fetchbridge

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestAbsoluteURL(t *testing.T) {
	r := httptest.NewRequest("GET", "https://example.com/foo?x=1", nil)

	req, err := NewRequest(r)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/foo?x=1", req.URL.String())
	assert.Equal(t, "GET", req.Method)
	assert.Nil(t, req.Body)
}

func TestNewRequestPlainScheme(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.com/bar", nil)

	req, err := NewRequest(r)
	require.NoError(t, err)

	assert.Equal(t, "http", req.URL.Scheme)
	assert.Equal(t, "example.com", req.URL.Host)
}

func TestNewRequestBodylessVerbs(t *testing.T) {
	for _, method := range []string{"GET", "HEAD"} {
		r := httptest.NewRequest(method, "http://example.com/", strings.NewReader("ignored payload"))

		req, err := NewRequest(r)
		require.NoError(t, err)

		assert.Nil(t, req.Body, "method %s must not carry a body", method)
	}
}

func TestNewRequestStreamsBody(t *testing.T) {
	const payload = "hello from the other side"
	r := httptest.NewRequest("POST", "http://example.com/submit", strings.NewReader(payload))

	req, err := NewRequest(r)
	require.NoError(t, err)
	require.NotNil(t, req.Body)

	got, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, string(got))
}

func TestNewRequestTranslatesHeaders(t *testing.T) {
	r := httptest.NewRequest("POST", "http://example.com/", strings.NewReader("{}"))
	r.Header.Add("X-Foo", "a")
	r.Header.Add("X-Foo", "b")

	req, err := NewRequest(r)
	require.NoError(t, err)

	assert.Equal(t, "a,b", req.Headers.Get("x-foo"))
}

func TestNewRequestNil(t *testing.T) {
	_, err := NewRequest(nil)
	assert.Error(t, err)
}
