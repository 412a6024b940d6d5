package memory

import (
	"github.com/pintag-dev/pintag/internal/domain"
)

// CreateImage stores a new image. Ids are generated by the service layer and
// assumed unique; images are never updated or deleted afterwards.
func (s *Storage) CreateImage(image domain.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.images[image.Id] = image
	s.imageOrder = append(s.imageOrder, image.Id)
}

// Images returns all images in creation order.
func (s *Storage) Images() []domain.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()

	images := make([]domain.Image, 0, len(s.imageOrder))
	for _, id := range s.imageOrder {
		images = append(images, s.images[id])
	}
	return images
}

// ImageExists reports whether an image with the given id was ever created.
func (s *Storage) ImageExists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.images[id]
	return ok
}
