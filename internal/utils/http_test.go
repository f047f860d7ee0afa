package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "struct", data: struct {
			Success bool `json:"success"`
		}{true}, status: http.StatusOK, wantBody: `{"success":true}`},
		{name: "custom status", data: map[string]string{"error": "x"}, status: http.StatusBadRequest, wantBody: `{"error":"x"}`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: `null`},
		{name: "slice", data: []int{1, 2}, status: http.StatusOK, wantBody: `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, len(rec.Body.Bytes()), n)
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, make(chan int), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestReadJSON(t *testing.T) {
	type payload struct {
		Alias string `json:"alias"`
	}

	var p payload
	require.NoError(t, ReadJSON(strings.NewReader(`{"alias":"a@b.c"}`), &p))
	assert.Equal(t, "a@b.c", p.Alias)

	var empty payload
	require.NoError(t, ReadJSON(strings.NewReader(""), &empty))
	assert.Empty(t, empty.Alias)

	require.NoError(t, ReadJSON(nil, &empty))

	err := ReadJSON(strings.NewReader(`{"alias":`), &p)
	require.ErrorIs(t, err, ErrInvalidJSON)

	err = ReadJSON(strings.NewReader(`[1,2]`), &p)
	require.ErrorIs(t, err, ErrInvalidJSON)

	var raw json.RawMessage
	require.NoError(t, ReadJSON(strings.NewReader(`{"meta":{}}`), &raw))
}
