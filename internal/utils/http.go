package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxJSONBodySize bounds request bodies accepted by [ReadJSON].
const MaxJSONBodySize = 1 << 20

// ErrInvalidJSON is returned by [ReadJSON] when the body cannot be decoded.
var ErrInvalidJSON = errors.New("invalid JSON body")

// WriteJSON serializes data and writes it with the given status code and an
// application/json content type. If marshaling fails it answers 500 and
// returns the wrapped error.
//
//	WriteJSON(w, models.Result{Success: true}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ReadJSON decodes one JSON document from body into v. An empty body decodes
// as an empty object so operations without parameters can be posted bare.
func ReadJSON(body io.Reader, v any) error {
	if body == nil {
		return nil
	}

	dec := json.NewDecoder(io.LimitReader(body, MaxJSONBodySize))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}
