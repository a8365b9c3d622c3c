package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reviewpulse/sentiment-api/internal/ingest"
	"github.com/reviewpulse/sentiment-api/internal/usecase"
)

// ClassifyHandler handles classification and file-upload requests
type ClassifyHandler struct {
	classifyUC  usecase.ClassifyUsecase
	maxFileSize int64
}

// NewClassifyHandler creates a new classify handler
func NewClassifyHandler(classifyUC usecase.ClassifyUsecase, maxFileSize int64) *ClassifyHandler {
	return &ClassifyHandler{
		classifyUC:  classifyUC,
		maxFileSize: maxFileSize,
	}
}

// Classify handles POST /api/classify
func (h *ClassifyHandler) Classify(c *gin.Context) {
	var input usecase.ClassifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleMalformedBody(c, err)
		return
	}

	result, err := h.classifyUC.ClassifyOne(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, result)
}

// ClassifyBatch handles POST /api/classify-batch
func (h *ClassifyHandler) ClassifyBatch(c *gin.Context) {
	var input usecase.BatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleMalformedBody(c, err)
		return
	}

	output, err := h.classifyUC.ClassifyBatch(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// UploadFile handles POST /api/upload-file
func (h *ClassifyHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "file is required")
		return
	}

	// Declared size is checked before the body is read at all
	if fileHeader.Size > h.maxFileSize {
		HandleUsecaseError(c, ingest.ErrFileTooLarge)
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "failed to open uploaded file")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, h.maxFileSize+1))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "failed to read uploaded file")
		return
	}

	output, err := h.classifyUC.ClassifyFile(c.Request.Context(), &ingest.UploadedFile{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Data:     data,
	})
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// ModelInfo handles GET /api/model-info
func (h *ClassifyHandler) ModelInfo(c *gin.Context) {
	respondSuccess(c, http.StatusOK, h.classifyUC.ModelInfo())
}
