package uploads

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtected(r gin.IRouter) {
	r.POST("/upload", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not upload file"})
		return
	}
	defer src.Close()

	// One byte past the cap is enough to detect an oversized upload
	// without buffering the whole thing.
	data, err := io.ReadAll(io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not upload file"})
		return
	}

	url, err := h.service.Store(data, file.Header.Get("Content-Type"), file.Filename)
	if errors.Is(err, ErrNotAnImage) || errors.Is(err, ErrTooLarge) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "file uploaded successfully", "file_url": url})
}
