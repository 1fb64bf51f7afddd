package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hengtai25/portfolio-api/internal/application/usecase/media"
	"github.com/hengtai25/portfolio-api/pkg/apperror"
)

type MediaHandler struct {
	uploadAssetUseCase *media.UploadAssetUseCase
}

func NewMediaHandler(uploadUC *media.UploadAssetUseCase) *MediaHandler {
	return &MediaHandler{uploadAssetUseCase: uploadUC}
}

func (h *MediaHandler) UploadAsset(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("file is required", err))
		return
	}

	kind := c.PostForm("kind")
	if kind == "" {
		kind = media.KindProjectImage
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read uploaded file", err))
		return
	}
	defer file.Close()

	output, err := h.uploadAssetUseCase.Execute(c.Request.Context(), media.UploadAssetInput{
		File: file,
		Kind: kind,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"url":       output.URL,
		"public_id": output.PublicID,
	})
}
