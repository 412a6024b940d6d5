package service

import (
	"fmt"

	"github.com/rs/xid"

	"github.com/pintag-dev/pintag/internal/config"
	"github.com/pintag-dev/pintag/internal/domain"
	"github.com/pintag-dev/pintag/internal/utils"
)

type ImageService interface {
	Create(creatorName string) (domain.Image, error)
	All() ([]domain.Image, error)
}

type ImageStorage interface {
	CreateImage(image domain.Image)
	Images() []domain.Image
}

// PhotoSource maps a numeric photo id to a URL on the external
// placeholder-image service. Injected so tests can substitute a
// deterministic stub instead of depending on the real service.
type PhotoSource func(photoId int) string

// PicsumSource builds URLs for the picsum.photos-style service configured in
// cfg, e.g. https://picsum.photos/id/42/800/600.
func PicsumSource(cfg config.Photos) PhotoSource {
	return func(photoId int) string {
		return fmt.Sprintf("%s/id/%d/%d/%d", cfg.BaseUrl, photoId, cfg.Width, cfg.Height)
	}
}

type Image struct {
	storage    ImageStorage
	photoURL   PhotoSource
	maxPhotoId int
}

func NewImage(storage ImageStorage, photoURL PhotoSource, maxPhotoId int) *Image {
	return &Image{storage, photoURL, maxPhotoId}
}

// Create picks a photo id uniformly at random from [1, maxPhotoId] and stores
// a new image pointing at it. Repeated photo ids are allowed; nothing tracks
// which ones were already used.
func (i *Image) Create(creatorName string) (domain.Image, error) {
	photoId := utils.RandInt(1, i.maxPhotoId+1)

	image := domain.Image{
		Id:            xid.New().String(),
		Url:           i.photoURL(photoId),
		CreatedByName: creatorName,
	}
	i.storage.CreateImage(image)
	return image, nil
}

func (i *Image) All() ([]domain.Image, error) {
	return i.storage.Images(), nil
}
