package usecase

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
	"go.uber.org/zap"

	"github.com/swapspot/swapspot/internal/marketplace/domain"
)

type PhotoUsecase struct {
	listings *ListingUsecase
	storage  domain.ImageStorage
	maxWidth uint
	logger   *zap.Logger
}

func NewPhotoUsecase(listings *ListingUsecase, storage domain.ImageStorage, maxWidth uint, logger *zap.Logger) *PhotoUsecase {
	return &PhotoUsecase{
		listings: listings,
		storage:  storage,
		maxWidth: maxWidth,
		logger:   logger,
	}
}

// UploadListingPhoto downscales oversized photos, uploads the result and
// attaches the URL to the listing. Returns the public URL.
func (uc *PhotoUsecase) UploadListingPhoto(ctx context.Context, listingID, fileName string, data []byte) (string, error) {
	if _, err := uc.listings.GetListingByID(ctx, listingID); err != nil {
		return "", err
	}

	scaled, err := uc.downscale(fileName, data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	url, err := uc.storage.Upload(ctx, fileName, scaled)
	if err != nil {
		uc.logger.Error("PhotoUsecase.UploadListingPhoto: upload failed",
			zap.String("listing_id", listingID), zap.Error(err))
		return "", err
	}

	if err := uc.listings.AttachImageURL(ctx, listingID, url); err != nil {
		return "", err
	}
	return url, nil
}

func (uc *PhotoUsecase) downscale(fileName string, data []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unsupported image: %w", err)
	}

	if uc.maxWidth == 0 || uint(img.Bounds().Dx()) <= uc.maxWidth {
		return data, nil
	}

	scaled := resize.Resize(uc.maxWidth, 0, img, resize.Lanczos3)
	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, scaled)
	default:
		err = jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode image: %w", err)
	}

	uc.logger.Debug("Photo downscaled",
		zap.String("file", fileName),
		zap.Int("original_width", img.Bounds().Dx()),
		zap.Uint("max_width", uc.maxWidth))
	return buf.Bytes(), nil
}
