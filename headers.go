package fetchbridge

import (
	"net/http"
	"strings"

	"github.com/go-kyugo/fetchbridge/fetch"
)

// TranslateHeaders converts a native header collection into the standardized
// container. Multi-value fields are folded into a single comma-joined string,
// preserving value order. Fields with no recorded value are dropped. The
// transform is pure and never fails.
func TranslateHeaders(src http.Header) *fetch.Headers {
	hdrs := fetch.NewHeaders()
	for name, values := range src {
		switch len(values) {
		case 0:
			// nothing recorded for this field, drop it
		case 1:
			hdrs.Append(name, values[0])
		default:
			hdrs.Append(name, strings.Join(values, ","))
		}
	}
	return hdrs
}
