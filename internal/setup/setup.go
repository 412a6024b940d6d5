package setup

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/pintag-dev/pintag/internal/config"
	"github.com/pintag-dev/pintag/internal/handler"
	"github.com/pintag-dev/pintag/internal/middleware"
	"github.com/pintag-dev/pintag/internal/service"
	"github.com/pintag-dev/pintag/internal/storage/memory"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config   *config.Config
	Storage  *memory.Storage
	Handler  *handler.Handler
	Identity *middleware.Identity
}

// SetupDependencies initializes all dependencies required for the application.
// The store is constructed once here and passed by handle to every consumer,
// so tests can build their own isolated instance.
func SetupDependencies(cfg *config.Config) *Dependencies {
	storage := memory.New()

	user := service.NewUser(storage)
	image := service.NewImage(storage, service.PicsumSource(cfg.Photos), cfg.Photos.MaxId)
	thread := service.NewThread(storage, bluemonday.UGCPolicy())

	h := handler.New(user, image, thread)
	identity := middleware.NewIdentity(storage)

	return &Dependencies{
		Config:   cfg,
		Storage:  storage,
		Handler:  h,
		Identity: identity,
	}
}
