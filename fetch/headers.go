package fetch

import "strings"

// Entry is a single header field. Names are always stored lowercase.
type Entry struct {
	Name  string
	Value string
}

// Headers is an ordered header container. Unlike http.Header it keeps one
// string value per entry and preserves insertion order; duplicate names are
// allowed via Append, which is how a response carries repeated fields such
// as Set-Cookie.
type Headers struct {
	entries []Entry
}

// NewHeaders returns an empty header container.
func NewHeaders() *Headers {
	return &Headers{}
}

// Append adds an entry, keeping any existing entries with the same name.
func (h *Headers) Append(name, value string) {
	if h == nil {
		return
	}
	h.entries = append(h.entries, Entry{Name: strings.ToLower(name), Value: value})
}

// Set replaces all entries named name with a single entry holding value. The
// replacement keeps the position of the first existing entry; a new name is
// appended at the end.
func (h *Headers) Set(name, value string) {
	if h == nil {
		return
	}
	name = strings.ToLower(name)
	out := h.entries[:0]
	replaced := false
	for _, e := range h.entries {
		if e.Name != name {
			out = append(out, e)
			continue
		}
		if !replaced {
			out = append(out, Entry{Name: name, Value: value})
			replaced = true
		}
	}
	if !replaced {
		out = append(out, Entry{Name: name, Value: value})
	}
	h.entries = out
}

// Get returns the first value recorded for name, or "" when absent.
func (h *Headers) Get(name string) string {
	if h == nil {
		return ""
	}
	name = strings.ToLower(name)
	for _, e := range h.entries {
		if e.Name == name {
			return e.Value
		}
	}
	return ""
}

// Has reports whether at least one entry named name exists.
func (h *Headers) Has(name string) bool {
	if h == nil {
		return false
	}
	name = strings.ToLower(name)
	for _, e := range h.entries {
		if e.Name == name {
			return true
		}
	}
	return false
}

// Values returns every value recorded for name, in insertion order.
func (h *Headers) Values(name string) []string {
	if h == nil {
		return nil
	}
	name = strings.ToLower(name)
	var out []string
	for _, e := range h.entries {
		if e.Name == name {
			out = append(out, e.Value)
		}
	}
	return out
}

// Del removes every entry named name.
func (h *Headers) Del(name string) {
	if h == nil {
		return
	}
	name = strings.ToLower(name)
	out := h.entries[:0]
	for _, e := range h.entries {
		if e.Name != name {
			out = append(out, e)
		}
	}
	h.entries = out
}

// Entries returns a copy of all entries in insertion order.
func (h *Headers) Entries() []Entry {
	if h == nil || len(h.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h *Headers) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}
