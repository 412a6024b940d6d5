package service

import (
	"net/http"
	"strings"

	"github.com/pintag-dev/pintag/internal/domain"
	internal_errors "github.com/pintag-dev/pintag/internal/errors"
)

type UserService interface {
	Register(name string) (domain.User, error)
	Login(name string) error
	All() ([]domain.User, error)
}

type UserStorage interface {
	CreateUser(name string) (domain.User, error)
	UserByName(name string) (domain.User, bool)
	Users() []domain.User
}

type User struct {
	storage UserStorage
}

func NewUser(storage UserStorage) *User {
	return &User{storage}
}

// Register trims the name and stores it. A blank name is a validation error;
// a case-insensitive duplicate surfaces as a conflict from storage.
func (u *User) Register(name string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, &internal_errors.ErrorWithStatusCode{
			Message:    "Name is required.",
			StatusCode: http.StatusBadRequest,
		}
	}
	return u.storage.CreateUser(name)
}

// Login checks that the name belongs to a registered user. There is no
// credential beyond the name itself; the client keeps the name and replays it
// in the X-User-Name header on protected endpoints.
func (u *User) Login(name string) error {
	if strings.TrimSpace(name) == "" {
		return &internal_errors.ErrorWithStatusCode{
			Message:    "Invalid credentials.",
			StatusCode: http.StatusUnauthorized,
		}
	}
	if _, ok := u.storage.UserByName(name); !ok {
		return &internal_errors.ErrorWithStatusCode{
			Message:    "User not found.",
			StatusCode: http.StatusUnauthorized,
		}
	}
	return nil
}

func (u *User) All() ([]domain.User, error) {
	return u.storage.Users(), nil
}
