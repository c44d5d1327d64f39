package api

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v5"

	"github.com/paulocmarques/BIOSUtilities/internal/logger"
)

func buildModule(tag string, payload []byte) []byte {
	size := 24 + len(payload)
	b := make([]byte, 0, size)
	b = append(b, tag...)
	b = binary.LittleEndian.AppendUint32(b, uint32(size))
	b = append(b, make([]byte, 8)...)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(payload)))
	b = binary.LittleEndian.AppendUint32(b, uint32(len(payload)))
	return append(b, payload...)
}

func buildContainer(mods ...[]byte) []byte {
	total := 16
	for _, m := range mods {
		total += len(m)
	}
	b := make([]byte, 0, total)
	b = append(b, "@UAF"...)
	b = binary.LittleEndian.AppendUint32(b, uint32(total))
	b = append(b, make([]byte, 8)...)
	for _, m := range mods {
		b = append(b, m...)
	}
	return b
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	s := NewServer(logger.JSON(io.Discard, slog.LevelError))
	s.ScratchRoot = t.TempDir()
	e := echo.New()
	s.Register(e)
	return e
}

func doUpload(t *testing.T, e *echo.Echo, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "firmware.bin")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(body); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	e := newTestEcho(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("health status: got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health body: %s", rec.Body.String())
	}
}

func TestExtractUpload(t *testing.T) {
	t.Parallel()

	e := newTestEcho(t)
	container := buildContainer(
		buildModule("@VER", []byte("P.1.2.3")),
	)
	rec := doUpload(t, e, "/v1/extract", container)
	if rec.Code != http.StatusOK {
		t.Fatalf("extract status: got %d body=%s", rec.Code, rec.Body.String())
	}

	var resp ExtractResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode extract response: %v", err)
	}
	if !strings.HasPrefix(resp.ID, "ucpx_") {
		t.Fatalf("unexpected request id: %q", resp.ID)
	}
	if resp.Input != "firmware.bin" {
		t.Fatalf("unexpected input name: %q", resp.Input)
	}
	if resp.Container == nil || len(resp.Container.Modules) != 1 {
		t.Fatalf("expected one extracted module, got %+v", resp.Container)
	}
	if got := resp.Container.Modules[0].Tag; got != "@VER" {
		t.Fatalf("unexpected module tag: %q", got)
	}
}

func TestExtractRawBody(t *testing.T) {
	t.Parallel()

	e := newTestEcho(t)
	container := buildContainer(
		buildModule("@VER", []byte("P.1.2.3")),
	)
	req := httptest.NewRequest(http.MethodPost, "/v1/extract", bytes.NewReader(container))
	req.Header.Set(echo.HeaderContentType, echo.MIMEOctetStream)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("extract status: got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"input":"upload.bin"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestExtractRejectsNonContainer(t *testing.T) {
	t.Parallel()

	e := newTestEcho(t)
	rec := doUpload(t, e, "/v1/extract", []byte("this is not a firmware image"))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rec.Code, rec.Body.String())
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if !strings.Contains(resp.Error, "no AMI UCP container") {
		t.Fatalf("unexpected error: %q", resp.Error)
	}
}

func TestExtractRejectsOversizedUpload(t *testing.T) {
	t.Parallel()

	s := NewServer(logger.JSON(io.Discard, slog.LevelError))
	s.ScratchRoot = t.TempDir()
	s.MaxUpload = 64
	e := echo.New()
	s.Register(e)

	rec := doUpload(t, e, "/v1/extract", make([]byte, 1024))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}
