package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pintag-dev/pintag/internal/domain"
	mw "github.com/pintag-dev/pintag/internal/middleware"
)

// --- Mocks ---

type MockUserService struct {
	MockRegister func(name string) (domain.User, error)
	MockLogin    func(name string) error
	MockAll      func() ([]domain.User, error)
}

func (m *MockUserService) Register(name string) (domain.User, error) {
	if m.MockRegister != nil {
		return m.MockRegister(name)
	}
	return domain.User{Name: name}, nil
}

func (m *MockUserService) Login(name string) error {
	if m.MockLogin != nil {
		return m.MockLogin(name)
	}
	return nil
}

func (m *MockUserService) All() ([]domain.User, error) {
	if m.MockAll != nil {
		return m.MockAll()
	}
	return nil, nil
}

type MockImageService struct {
	MockCreate func(creatorName string) (domain.Image, error)
	MockAll    func() ([]domain.Image, error)
}

func (m *MockImageService) Create(creatorName string) (domain.Image, error) {
	if m.MockCreate != nil {
		return m.MockCreate(creatorName)
	}
	return domain.Image{}, nil
}

func (m *MockImageService) All() ([]domain.Image, error) {
	if m.MockAll != nil {
		return m.MockAll()
	}
	return nil, nil
}

type MockThreadService struct {
	MockCreate         func(data domain.ThreadCreationData) (domain.Thread, error)
	MockForImage       func(imageId string) ([]domain.Thread, error)
	MockUpdatePosition func(threadId string, x, y float64, requesterName string) (domain.Thread, error)
	MockDelete         func(threadId string, requesterName string) error
}

func (m *MockThreadService) Create(data domain.ThreadCreationData) (domain.Thread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.Thread{}, nil
}

func (m *MockThreadService) ForImage(imageId string) ([]domain.Thread, error) {
	if m.MockForImage != nil {
		return m.MockForImage(imageId)
	}
	return nil, nil
}

func (m *MockThreadService) UpdatePosition(threadId string, x, y float64, requesterName string) (domain.Thread, error) {
	if m.MockUpdatePosition != nil {
		return m.MockUpdatePosition(threadId, x, y, requesterName)
	}
	return domain.Thread{}, nil
}

func (m *MockThreadService) Delete(threadId string, requesterName string) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, requesterName)
	}
	return nil
}

// --- Helpers ---

// newTestRouter wires the handler's routes without the identity middleware;
// tests inject a user into the request context directly.
func newTestRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/users", h.CreateUser)
	r.Post("/login", h.Login)
	r.Get("/users", h.GetUsers)
	r.Post("/images", h.CreateImage)
	r.Get("/images", h.GetImages)
	r.Post("/images/{imageId}/threads", h.CreateThread)
	r.Get("/images/{imageId}/threads", h.GetThreadsForImage)
	r.Patch("/threads/{threadId}", h.UpdateThreadPosition)
	r.Delete("/threads/{threadId}", h.DeleteThread)
	return r
}

func asUser(r *http.Request, name string) *http.Request {
	return mw.WithUser(r, &domain.User{Name: name})
}
