package memory

import (
	"net/http"
	"strings"

	"github.com/pintag-dev/pintag/internal/domain"
	internal_errors "github.com/pintag-dev/pintag/internal/errors"
)

func imageNotFound() error {
	return &internal_errors.ErrorWithStatusCode{
		Message:    "Image not found.",
		StatusCode: http.StatusNotFound,
	}
}

func threadNotFound() error {
	return &internal_errors.ErrorWithStatusCode{
		Message:    "Thread not found.",
		StatusCode: http.StatusNotFound,
	}
}

func notCreator() error {
	return &internal_errors.ErrorWithStatusCode{
		Message:    "Only the thread creator can do that.",
		StatusCode: http.StatusForbidden,
	}
}

// CreateThread stores a new thread. The owning image must exist at creation
// time; it is never re-validated afterwards since images cannot be deleted.
func (s *Storage) CreateThread(thread domain.Thread) (domain.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.images[thread.ImageId]; !ok {
		return domain.Thread{}, imageNotFound()
	}

	s.threads[thread.Id] = thread
	s.threadOrder = append(s.threadOrder, thread.Id)
	return thread, nil
}

// ThreadsByImage returns all threads pinned to the given image in creation
// order. The image itself must exist.
func (s *Storage) ThreadsByImage(imageId string) ([]domain.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.images[imageId]; !ok {
		return nil, imageNotFound()
	}

	threads := make([]domain.Thread, 0)
	for _, id := range s.threadOrder {
		if t := s.threads[id]; t.ImageId == imageId {
			threads = append(threads, t)
		}
	}
	return threads, nil
}

// UpdateThreadPosition overwrites a thread's coordinates in place. Only the
// creator (matched case-insensitively) may move a thread.
func (s *Storage) UpdateThreadPosition(id string, x, y float64, requester string) (domain.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread, ok := s.threads[id]
	if !ok {
		return domain.Thread{}, threadNotFound()
	}
	if !strings.EqualFold(thread.CreatedByName, requester) {
		return domain.Thread{}, notCreator()
	}

	thread.X = x
	thread.Y = y
	s.threads[id] = thread
	return thread, nil
}

// DeleteThread removes a thread permanently. Same existence and ownership
// checks as UpdateThreadPosition.
func (s *Storage) DeleteThread(id string, requester string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread, ok := s.threads[id]
	if !ok {
		return threadNotFound()
	}
	if !strings.EqualFold(thread.CreatedByName, requester) {
		return notCreator()
	}

	delete(s.threads, id)
	for i, tid := range s.threadOrder {
		if tid == id {
			s.threadOrder = append(s.threadOrder[:i], s.threadOrder[i+1:]...)
			break
		}
	}
	return nil
}
