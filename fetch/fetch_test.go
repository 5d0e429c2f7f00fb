package fetch

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadersCaseInsensitive(t *testing.T) {
	h := NewHeaders()
	h.Set("Content-Type", "text/html")

	assert.Equal(t, "text/html", h.Get("content-type"))
	assert.Equal(t, "text/html", h.Get("CONTENT-TYPE"))
	assert.True(t, h.Has("Content-type"))
}

func TestHeadersAppendKeepsDuplicates(t *testing.T) {
	h := NewHeaders()
	h.Append("set-cookie", "a=1")
	h.Append("set-cookie", "b=2")

	assert.Equal(t, []string{"a=1", "b=2"}, h.Values("set-cookie"))
	assert.Equal(t, "a=1", h.Get("set-cookie"))
	assert.Equal(t, 2, h.Len())
}

func TestHeadersSetCollapsesDuplicates(t *testing.T) {
	h := NewHeaders()
	h.Append("x-a", "1")
	h.Append("x-b", "mid")
	h.Append("x-a", "2")
	h.Set("x-a", "final")

	assert.Equal(t, []string{"final"}, h.Values("x-a"))
	// replacement keeps the first entry's position
	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "x-a", entries[0].Name)
	assert.Equal(t, "x-b", entries[1].Name)
}

func TestHeadersDel(t *testing.T) {
	h := NewHeaders()
	h.Append("x-a", "1")
	h.Append("x-a", "2")
	h.Del("X-A")

	assert.False(t, h.Has("x-a"))
	assert.Equal(t, 0, h.Len())
}

func TestHeadersEntriesInsertionOrder(t *testing.T) {
	h := NewHeaders()
	h.Append("first", "1")
	h.Append("second", "2")
	h.Append("third", "3")

	var names []string
	for _, e := range h.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"first", "second", "third"}, names)
}

func TestResponseVariantsAreExclusive(t *testing.T) {
	buffered := NewResponse(200, nil, []byte("data"))
	_, ok := buffered.Buffered()
	assert.True(t, ok)
	_, ok = buffered.Stream()
	assert.False(t, ok)

	streamed := NewStreamResponse(200, nil, strings.NewReader("data"))
	_, ok = streamed.Stream()
	assert.True(t, ok)
	_, ok = streamed.Buffered()
	assert.False(t, ok)
}

func TestNewStreamResponseNilBodyIsBuffered(t *testing.T) {
	res := NewStreamResponse(204, nil, nil)

	b, ok := res.Buffered()
	assert.True(t, ok)
	assert.Empty(t, b)
}

func TestStreamResponseYieldsBody(t *testing.T) {
	res := NewStreamResponse(200, nil, strings.NewReader("streamed bytes"))

	stream, ok := res.Stream()
	require.True(t, ok)
	b, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "streamed bytes", string(b))
}

func TestHasBody(t *testing.T) {
	assert.False(t, HasBody(http.MethodGet))
	assert.False(t, HasBody(http.MethodHead))
	assert.True(t, HasBody(http.MethodPost))
	assert.True(t, HasBody(http.MethodPut))
	assert.True(t, HasBody(http.MethodDelete))
}

func TestJSONHelper(t *testing.T) {
	res, err := JSON(201, map[string]string{"name": "demo"})
	require.NoError(t, err)

	assert.Equal(t, 201, res.StatusCode)
	assert.Equal(t, "application/json", res.Headers.Get("content-type"))
	b, _ := res.Buffered()
	assert.JSONEq(t, `{"name":"demo"}`, string(b))
}

func TestTextHelper(t *testing.T) {
	res := Text(404, "not here")

	assert.Equal(t, 404, res.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", res.Headers.Get("content-type"))
	b, _ := res.Buffered()
	assert.Equal(t, "not here", string(b))
}
