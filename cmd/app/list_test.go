package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, handler http.HandlerFunc, args ...string) (string, error) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("PGAPEX_API_URL", srv.URL)
	t.Setenv("PGAPEX_API_TOKEN", "")
	t.Setenv("PGAPEX_API_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestListSchemas(t *testing.T) {
	var path string

	out, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = io.WriteString(w, `{"data":[{"name":"public"}]}`)
	}, "schemas")
	require.NoError(t, err)

	assert.Equal(t, "/api/database/schemas.json", path)
	assert.Equal(t, "[\n  {\n    \"name\": \"public\"\n  }\n]\n", out)
}

func TestListTemplatesOfTheme(t *testing.T) {
	var themeID string

	_, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		themeID = r.URL.Query().Get("themeId")
		_, _ = io.WriteString(w, `{"data":[]}`)
	}, "templates", "--theme-id", "4")
	require.NoError(t, err)
	assert.Equal(t, "4", themeID)
}

func TestListPrintsUpstreamErrors(t *testing.T) {
	out, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"errors":[{"source":{"pointer":"/regionId"},"detail":"region not found"},{"detail":"try again"}]}`)
	}, "region", "--region-id", "42")

	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, "/regionId: region not found\n-: try again\n", out)
}

func TestListWithoutData(t *testing.T) {
	out, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, "themes", "--application-id", "7")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)
}

func TestRegionRequiresID(t *testing.T) {
	_, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called")
	}, "region")
	assert.Error(t, err)
}
