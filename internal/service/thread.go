package service

import (
	"github.com/rs/xid"

	"github.com/pintag-dev/pintag/internal/domain"
)

type ThreadService interface {
	Create(data domain.ThreadCreationData) (domain.Thread, error)
	ForImage(imageId string) ([]domain.Thread, error)
	UpdatePosition(threadId string, x, y float64, requesterName string) (domain.Thread, error)
	Delete(threadId string, requesterName string) error
}

type ThreadStorage interface {
	CreateThread(thread domain.Thread) (domain.Thread, error)
	ThreadsByImage(imageId string) ([]domain.Thread, error)
	UpdateThreadPosition(threadId string, x, y float64, requesterName string) (domain.Thread, error)
	DeleteThread(threadId string, requesterName string) error
}

// Sanitizer strips active markup from a raw comment, keeping safe inline
// text. Satisfied by *bluemonday.Policy.
type Sanitizer interface {
	Sanitize(raw string) string
}

type Thread struct {
	storage   ThreadStorage
	sanitizer Sanitizer
}

func NewThread(storage ThreadStorage, sanitizer Sanitizer) *Thread {
	return &Thread{storage, sanitizer}
}

// Create sanitizes the comment and stores a new thread against an existing
// image. A comment that sanitizes down to the empty string is accepted; the
// client enforces non-empty input, the server does not revalidate.
func (t *Thread) Create(data domain.ThreadCreationData) (domain.Thread, error) {
	thread := domain.Thread{
		Id:            xid.New().String(),
		ImageId:       data.ImageId,
		X:             data.X,
		Y:             data.Y,
		Comment:       t.sanitizer.Sanitize(data.Comment),
		CreatedByName: data.CreatedBy,
	}
	return t.storage.CreateThread(thread)
}

func (t *Thread) ForImage(imageId string) ([]domain.Thread, error) {
	return t.storage.ThreadsByImage(imageId)
}

func (t *Thread) UpdatePosition(threadId string, x, y float64, requesterName string) (domain.Thread, error) {
	return t.storage.UpdateThreadPosition(threadId, x, y, requesterName)
}

func (t *Thread) Delete(threadId string, requesterName string) error {
	return t.storage.DeleteThread(threadId, requesterName)
}
