// Package api exposes the extraction engine over HTTP: upload a BIOS
// update executable, receive the structured extraction report. Output
// files are written to a per-request scratch directory and discarded;
// the JSON record is the product of this surface.
package api

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/paulocmarques/BIOSUtilities/internal/comp"
	"github.com/paulocmarques/BIOSUtilities/internal/logger"
	"github.com/paulocmarques/BIOSUtilities/internal/pfat"
	"github.com/paulocmarques/BIOSUtilities/internal/report"
	"github.com/paulocmarques/BIOSUtilities/internal/ucp"
	"github.com/paulocmarques/BIOSUtilities/internal/version"
)

// DefaultMaxUpload caps uploaded executables at 512 MiB.
const DefaultMaxUpload = int64(512 << 20)

// Server handles extraction requests.
type Server struct {
	Log logger.Logger

	// ScratchRoot is where per-request extraction trees are created;
	// empty means the system temp directory.
	ScratchRoot string

	// MaxUpload caps the accepted request size; zero means the default.
	MaxUpload int64

	// External decompressor overrides; empty means the tool defaults.
	TianoBinary    string
	SevenZipBinary string
}

// NewServer builds a Server with the given logger.
func NewServer(log logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	return &Server{Log: log}
}

// Register mounts the API routes.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/v1/healthz", s.handleHealth)
	e.POST("/v1/extract", s.handleExtract)
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.String(),
	})
}

// ExtractResponse is the body returned for a successful extraction.
type ExtractResponse struct {
	ID              string            `json:"id"`
	Input           string            `json:"input"`
	ContainerOffset int               `json:"container_offset"`
	Container       *report.Container `json:"container"`
}

func (s *Server) handleExtract(c *echo.Context) error {
	data, name, err := s.readUpload(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err.Error())
	}

	off, buf := ucp.Locate(data)
	if len(buf) == 0 {
		return writeError(c, http.StatusUnprocessableEntity, "no AMI UCP container signature found")
	}

	id := "ucpx_" + uuid.NewString()
	scratchRoot := s.ScratchRoot
	if scratchRoot == "" {
		scratchRoot = os.TempDir()
	}
	scratch := filepath.Join(scratchRoot, id)
	defer func() { _ = os.RemoveAll(scratch) }()
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return writeError(c, http.StatusInternalServerError, "scratch directory unavailable")
	}

	x := &ucp.Extractor{
		Checksum: boolParam(c, "checksum"),
		EFI:      comp.Tiano{Binary: s.TianoBinary},
		SFX:      comp.SevenZip{Binary: s.SevenZipBinary},
		PFAT:     pfat.Handler{},
	}

	rec, err := x.Extract(c.Request().Context(), buf, filepath.Join(scratch, "upload"), 0)
	if err != nil {
		s.Log.Error("extraction failed", "id", id, "error", err)
		return writeError(c, http.StatusInternalServerError, "extraction failed")
	}

	s.Log.Info("extraction served",
		"id", id, "input", name, "offset", off, "modules", len(rec.Modules))

	return writeJSON(c, http.StatusOK, &ExtractResponse{
		ID:              id,
		Input:           name,
		ContainerOffset: off,
		Container:       rec,
	})
}

// readUpload accepts either a multipart "file" field or a raw body.
func (s *Server) readUpload(c *echo.Context) ([]byte, string, error) {
	maxUpload := s.MaxUpload
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUpload
	}

	if fh, err := c.FormFile("file"); err == nil {
		if fh.Size > maxUpload {
			return nil, "", errTooLarge
		}
		f, err := fh.Open()
		if err != nil {
			return nil, "", err
		}
		defer func() { _ = f.Close() }()
		data, err := io.ReadAll(io.LimitReader(f, maxUpload+1))
		if err != nil {
			return nil, "", err
		}
		if int64(len(data)) > maxUpload {
			return nil, "", errTooLarge
		}
		return data, fh.Filename, nil
	}

	body := http.MaxBytesReader(c.Response(), c.Request().Body, maxUpload)
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, "", errTooLarge
	}
	if len(data) == 0 {
		return nil, "", errEmptyUpload
	}
	return data, "upload.bin", nil
}

func boolParam(c *echo.Context, name string) bool {
	switch c.QueryParam(name) {
	case "1", "true", "yes":
		return true
	}
	return false
}
