package fetchbridge

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-kyugo/fetchbridge/fetch"
)

// EmitResponse copies a standardized response onto the native writer: every
// header entry in order (later duplicates overwrite earlier ones, matching
// Header().Set semantics), then the status, then the body. A buffered body
// is written in one piece. A streamed body is piped chunk by chunk with a
// flush after each write so native flow control paces the producer; the
// stream is closed on completion when it implements io.Closer. Stream errors
// are returned to the caller unmodified.
func EmitResponse(w http.ResponseWriter, res *fetch.Response) error {
	if res == nil {
		return errors.New("nil response")
	}

	for _, e := range res.Headers.Entries() {
		w.Header().Set(e.Name, e.Value)
	}
	w.WriteHeader(res.StatusCode)

	if b, ok := res.Buffered(); ok {
		if len(b) == 0 {
			return nil
		}
		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("writing response body: %w", err)
		}
		return nil
	}

	stream, _ := res.Stream()
	if c, ok := stream.(io.Closer); ok {
		defer c.Close()
	}

	rc := http.NewResponseController(w)
	buf := make([]byte, requestBufferSize)
	for {
		n, rerr := stream.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return fmt.Errorf("writing response body: %w", werr)
			}
			// flush errors are not fatal; some writers cannot flush
			_ = rc.Flush()
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("reading response stream: %w", rerr)
		}
	}
}
