package media

import (
	"context"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hengtai25/portfolio-api/internal/application/service"
	"github.com/hengtai25/portfolio-api/pkg/apperror"
	"github.com/hengtai25/portfolio-api/pkg/logger"
)

// Asset kinds map to upload folders.
const (
	KindProjectImage = "projects"
	KindProfilePhoto = "profile"
)

type UploadAssetUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadAssetUseCase(u service.Uploader, log logger.Logger) *UploadAssetUseCase {
	return &UploadAssetUseCase{uploader: u, logger: log}
}

type UploadAssetInput struct {
	File io.Reader
	Kind string
}

type UploadAssetOutput struct {
	URL      string
	PublicID string
}

func (uc *UploadAssetUseCase) Execute(ctx context.Context, input UploadAssetInput) (*UploadAssetOutput, error) {
	if input.File == nil {
		return nil, apperror.NewInvalidInput("file is required", nil)
	}
	if input.Kind != KindProjectImage && input.Kind != KindProfilePhoto {
		return nil, apperror.NewInvalidInput("unknown asset kind", nil)
	}

	publicID := uuid.NewString()
	folder := "portfolio/" + input.Kind

	url, err := uc.uploader.Upload(ctx, input.File, folder, publicID)
	if err != nil {
		uc.logger.Error("Failed to upload asset", err, zap.String("kind", input.Kind))
		return nil, apperror.NewInternal("failed to upload asset", err)
	}

	return &UploadAssetOutput{URL: url, PublicID: publicID}, nil
}
