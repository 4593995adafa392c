package services

import (
	"go.opentelemetry.io/otel"

	"github.com/ghuser/blogs/pkg/app"
	"github.com/ghuser/blogs/pkg/config"
	"github.com/ghuser/blogs/services/blog/domain/repositories"
	"github.com/ghuser/blogs/services/blog/infrastructure/persistence/memory"
	"github.com/ghuser/blogs/services/blog/infrastructure/persistence/postgres"
)

const instrumentationName = "github.com/ghuser/blogs/services/blog"

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Blog *BlogService
}

// New wires all blog application services with infrastructure from the
// Application container. STORE_DRIVER selects the repository.
func New(a *app.Application) *Services {
	var repo repositories.BlogRepository
	switch a.Config.StoreDriver {
	case config.StoreMemory:
		repo = memory.NewBlogRepository(a.Config.StoreTimeout)
	default:
		repo = postgres.NewBlogRepository(a.Db)
	}
	return &Services{
		Blog: NewBlogService(repo, a.Logger, otel.Meter(instrumentationName)),
	}
}
