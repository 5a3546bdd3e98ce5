package client

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cast"
)

type ErrorObject struct {
	Status int          `json:"status,omitempty"`
	Title  string       `json:"title,omitempty"`
	Detail string       `json:"detail,omitempty"`
	Source *ErrorSource `json:"source,omitempty"`
	Meta   interface{}  `json:"meta,omitempty"`
}

type ErrorSource struct {
	Pointer   string `json:"pointer,omitempty"`
	Parameter string `json:"parameter,omitempty"`
}

// UnmarshalJSON is lenient: status may be a number or a numeric string, and
// members of the wrong type are left empty instead of failing the envelope.
func (e *ErrorObject) UnmarshalJSON(b []byte) error {
	var raw struct {
		Status json.RawMessage `json:"status"`
		Title  json.RawMessage `json:"title"`
		Detail json.RawMessage `json:"detail"`
		Source json.RawMessage `json:"source"`
		Meta   interface{}     `json:"meta"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*e = ErrorObject{
		Status: cast.ToInt(scalar(raw.Status)),
		Title:  cast.ToString(scalar(raw.Title)),
		Detail: cast.ToString(scalar(raw.Detail)),
		Meta:   raw.Meta,
	}

	var source map[string]interface{}
	if err := json.Unmarshal(raw.Source, &source); err == nil && source != nil {
		e.Source = &ErrorSource{
			Pointer:   cast.ToString(source["pointer"]),
			Parameter: cast.ToString(source["parameter"]),
		}
	}

	return nil
}

// scalar decodes a JSON string, number or bool. Anything else is nil.
func scalar(raw json.RawMessage) interface{} {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	switch v.(type) {
	case string, float64, bool:
		return v
	}
	return nil
}

type Errors []*ErrorObject

// Response is the decoded envelope of an upstream call. Business failures
// (validation errors) are carried in Errors and never returned as Go errors.
type Response struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors Errors          `json:"errors,omitempty"`
}

func (r *Response) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

func (r *Response) HasData() bool {
	if r == nil {
		return false
	}
	trimmed := bytes.TrimSpace(r.Data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// Pointers lists the source pointers of all errors in the order they were
// reported. Exact duplicates are collapsed and errors without a pointer are
// skipped.
func (r *Response) Pointers() []string {
	if !r.HasErrors() {
		return nil
	}

	seen := make(map[string]struct{}, len(r.Errors))
	pointers := make([]string, 0, len(r.Errors))

	for _, e := range r.Errors {
		if e == nil || e.Source == nil || e.Source.Pointer == "" {
			continue
		}
		if _, ok := seen[e.Source.Pointer]; ok {
			continue
		}
		seen[e.Source.Pointer] = struct{}{}
		pointers = append(pointers, e.Source.Pointer)
	}

	return pointers
}

func (r *Response) ErrorDetailsWhereSourcePointerIs(pointer string) []string {
	details := []string{}
	if !r.HasErrors() {
		return details
	}

	for _, e := range r.Errors {
		if e == nil || e.Source == nil || e.Source.Pointer != pointer {
			continue
		}
		details = append(details, e.Detail)
	}

	return details
}

// DataOrDefault decodes the response payload into T. def is returned when
// there is no payload or it does not decode into T.
func DataOrDefault[T any](r *Response, def T) T {
	if !r.HasData() {
		return def
	}

	var out T
	if err := json.Unmarshal(r.Data, &out); err != nil {
		return def
	}

	return out
}
