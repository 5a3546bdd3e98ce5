// Package formerror turns upstream validation errors into messages keyed by
// form field name.
package formerror

import (
	"encoding/json"
	"sort"
	"strings"
)

// Source is the part of an upstream response the normalizer reads.
// *client.Response satisfies it.
type Source interface {
	HasErrors() bool
	Pointers() []string
	ErrorDetailsWhereSourcePointerIs(pointer string) []string
}

// FieldState is the client-side state of a bound form control.
type FieldState struct {
	Touched bool `json:"touched"`
	Invalid bool `json:"invalid"`
}

type FormError struct {
	errors map[string][]string
}

// Empty is the form error shown before anything was submitted.
func Empty() *FormError {
	return &FormError{errors: map[string][]string{}}
}

// Parse keys every pointer's details by the pointer's last segment, so
// "/region/name" lands under "name". Pointers sharing a last segment
// overwrite each other in the order they were reported.
func Parse(src Source) *FormError {
	f := Empty()
	if src == nil || !src.HasErrors() {
		return f
	}

	for _, pointer := range src.Pointers() {
		f.errors[fieldName(pointer)] = src.ErrorDetailsWhereSourcePointerIs(pointer)
	}

	return f
}

func fieldName(pointer string) string {
	return pointer[strings.LastIndex(pointer, "/")+1:]
}

func (f *FormError) HasErrors(field string) bool {
	if f == nil {
		return false
	}
	_, ok := f.errors[field]
	return ok
}

func (f *FormError) Errors(field string) []string {
	if !f.HasErrors(field) {
		return []string{}
	}
	return f.errors[field]
}

// ShowErrors reports whether a field's messages should be visible: either
// the user left the control in an invalid state or the server rejected it.
func (f *FormError) ShowErrors(state FieldState, field string) bool {
	return (state.Touched && state.Invalid) || f.HasErrors(field)
}

func (f *FormError) Fields() []string {
	if f == nil {
		return nil
	}
	fields := make([]string, 0, len(f.errors))
	for field := range f.errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func (f *FormError) IsEmpty() bool {
	return f == nil || len(f.errors) == 0
}

func (f *FormError) MarshalJSON() ([]byte, error) {
	errors := map[string][]string{}
	if f != nil {
		errors = f.errors
	}
	return json.Marshal(struct {
		Errors map[string][]string `json:"errors"`
	}{Errors: errors})
}
