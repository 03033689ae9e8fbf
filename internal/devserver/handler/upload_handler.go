package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gadgetstore/storefront/internal/devserver/metrics"
)

const maxUploadBytes = 10 << 20 // 10 MiB

var allowedImageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// UploadHandler stores product images on local disk and hands back a URL
// under /uploads/, standing in for the production image CDN.
type UploadHandler struct {
	dir           string
	publicBaseURL string
	log           zerolog.Logger
}

func NewUploadHandler(dir, publicBaseURL string, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{dir: dir, publicBaseURL: strings.TrimRight(publicBaseURL, "/"), log: log}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /products/upload-image — multipart form field "file".
//
// @Summary      Upload a product image
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image file"
// @Success      201   {object}  uploadResponse
// @Failure      400   {object}  map[string]string
// @Failure      413   {object}  map[string]string
// @Router       /products/upload-image [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing form field \"file\"")
	}
	if fileHeader.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "image too large")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported image type")
	}

	src, err := fileHeader.Open()
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return err
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, maxUploadBytes)); err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	h.log.Info().Str("file", name).Int64("bytes", fileHeader.Size).Msg("image uploaded")

	return c.JSON(http.StatusCreated, uploadResponse{URL: h.publicBaseURL + "/uploads/" + name})
}
