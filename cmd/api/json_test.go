package main

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name": "Second Beach"}`))
		w := httptest.NewRecorder()

		var p payload
		require.NoError(t, readJSON(w, req, &p))
		assert.Equal(t, "Second Beach", p.Name)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name": "x", "admin": true}`))
		w := httptest.NewRecorder()

		var p payload
		err := readJSON(w, req, &p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown field")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name": `))
		w := httptest.NewRecorder()

		var p payload
		assert.Error(t, readJSON(w, req, &p))
	})
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, writeJSONError(w, 400, "lat and lon must be updated together"))

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"success": false, "message": "lat and lon must be updated together", "status": 400}`,
		w.Body.String(),
	)
}

func TestJSONResponse(t *testing.T) {
	app := &application{}

	w := httptest.NewRecorder()
	require.NoError(t, app.jsonResponse(w, 200, map[string]string{"status": "ok"}))

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"data": {"status": "ok"}}`, w.Body.String())
}
