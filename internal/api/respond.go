package api

import (
	"errors"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v5"
)

var (
	errTooLarge    = errors.New("upload exceeds the size limit")
	errEmptyUpload = errors.New("empty upload")
)

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c *echo.Context, status int, msg string) error {
	return writeJSON(c, status, &ErrorResponse{Error: msg})
}

// writeJSON serializes with goccy/go-json, which the report types are
// tagged for, instead of echo's default encoder.
func writeJSON(c *echo.Context, status int, v any) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.JSONBlob(status, blob)
}
