package formerror_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/to-dy/pgapex-builder/api/client"
	"github.com/to-dy/pgapex-builder/api/services/formerror"
)

func response(errs ...*client.ErrorObject) *client.Response {
	return &client.Response{Errors: errs}
}

func errorAt(pointer, detail string) *client.ErrorObject {
	return &client.ErrorObject{Detail: detail, Source: &client.ErrorSource{Pointer: pointer}}
}

func TestParseWithoutErrors(t *testing.T) {
	var nilResponse *client.Response

	for name, src := range map[string]formerror.Source{
		"nil source":   nil,
		"nil response": nilResponse,
		"no errors":    response(),
	} {
		t.Run(name, func(t *testing.T) {
			f := formerror.Parse(src)
			assert.True(t, f.IsEmpty())
			assert.Empty(t, f.Fields())
			for _, field := range []string{"name", "sequence", ""} {
				assert.False(t, f.HasErrors(field))
			}
		})
	}
}

func TestParseKeysByLastSegment(t *testing.T) {
	f := formerror.Parse(response(
		errorAt("/a/x", "x is required"),
		errorAt("/a/y", "y too short"),
		errorAt("/a/x", "x must be unique"),
	))

	if diff := cmp.Diff([]string{"x is required", "x must be unique"}, f.Errors("x")); diff != "" {
		t.Fatalf("x errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"y too short"}, f.Errors("y")); diff != "" {
		t.Fatalf("y errors mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"x", "y"}, f.Fields())
}

func TestParseSameLastSegmentLastWriteWins(t *testing.T) {
	f := formerror.Parse(response(
		errorAt("/region/name", "required"),
		errorAt("/otherThing/name", "taken"),
	))

	assert.Equal(t, []string{"taken"}, f.Errors("name"))
	assert.Equal(t, []string{"name"}, f.Fields())
}

func TestErrorsForUnknownFieldIsEmpty(t *testing.T) {
	f := formerror.Parse(response(errorAt("/region/name", "required")))

	got := f.Errors("sequence")
	require.NotNil(t, got)
	assert.Empty(t, got)

	var nilForm *formerror.FormError
	assert.Empty(t, nilForm.Errors("name"))
	assert.NotNil(t, formerror.Empty().Errors("name"))
}

func TestShowErrors(t *testing.T) {
	f := formerror.Parse(response(errorAt("/region/name", "required")))

	tests := []struct {
		name  string
		state formerror.FieldState
		field string
		want  bool
	}{
		{"untouched valid without server errors", formerror.FieldState{}, "sequence", false},
		{"touched valid", formerror.FieldState{Touched: true}, "sequence", false},
		{"invalid untouched", formerror.FieldState{Invalid: true}, "sequence", false},
		{"touched invalid", formerror.FieldState{Touched: true, Invalid: true}, "sequence", true},
		{"server error only", formerror.FieldState{}, "name", true},
		{"server error and touched invalid", formerror.FieldState{Touched: true, Invalid: true}, "name", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.ShowErrors(tt.state, tt.field))
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	raw, err := json.Marshal(formerror.Empty())
	require.NoError(t, err)
	assert.JSONEq(t, `{"errors":{}}`, string(raw))

	raw, err = json.Marshal(formerror.Parse(response(errorAt("/region/name", "required"))))
	require.NoError(t, err)
	assert.JSONEq(t, `{"errors":{"name":["required"]}}`, string(raw))
}
