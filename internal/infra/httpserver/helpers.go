package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/trace"
)

const _maxBodyBytes = 1 << 20

var (
	ErrMalformedBody     = errors.New("malformed json body")
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)

type ErrorResponse struct {
	Message string `json:"message,omitempty"`
}

func ReplyWithError(w http.ResponseWriter, statusCode int, errMsg string) {
	errResponse := &ErrorResponse{
		Message: errMsg,
	}
	ReplyJSONResponse(w, statusCode, errResponse)
}

func ReplyJSONResponse(w http.ResponseWriter, statusCode int, output any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(output)
}

// DecodeRecord reads a JSON object body into a loose field map. Numbers
// arrive as float64, nested values as maps or slices.
func DecodeRecord(r *http.Request) (map[string]any, error) {
	reqBody, err := io.ReadAll(io.LimitReader(r.Body, _maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}

	if !gjson.ValidBytes(reqBody) {
		return nil, ErrMalformedBody
	}

	parsed := gjson.ParseBytes(reqBody)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("%w: expected an object", ErrMalformedBody)
	}

	fields := make(map[string]any)
	parsed.ForEach(func(key, value gjson.Result) bool {
		fields[key.String()] = value.Value()
		return true
	})

	return fields, nil
}

func GetQueryParam(r *http.Request, name string) string {
	return r.URL.Query().Get(name)
}

// GetIntQueryParam returns fallback when the parameter is missing and
// ErrInvalidQueryParam when it is present but not an integer.
func GetIntQueryParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidQueryParam, name)
	}

	return value, nil
}

func GetSpanFromContext(r *http.Request) trace.Span {
	return trace.SpanFromContext(r.Context())
}
