package memory

import (
	"net/http"

	"github.com/pintag-dev/pintag/internal/domain"
	internal_errors "github.com/pintag-dev/pintag/internal/errors"
)

// CreateUser stores a new user. The name must already be trimmed and
// non-empty; the service layer owns that validation.
func (s *Storage) CreateUser(name string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := foldName(name)
	if _, ok := s.users[key]; ok {
		return domain.User{}, &internal_errors.ErrorWithStatusCode{
			Message:    "User already exists.",
			StatusCode: http.StatusConflict,
		}
	}

	user := domain.User{Name: name}
	s.users[key] = user
	s.userOrder = append(s.userOrder, key)
	return user, nil
}

// UserByName resolves a name case-insensitively. The returned user carries
// the name as originally registered.
func (s *Storage) UserByName(name string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[foldName(name)]
	return user, ok
}

// Users returns all users in registration order.
func (s *Storage) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.userOrder))
	for _, key := range s.userOrder {
		users = append(users, s.users[key])
	}
	return users
}
