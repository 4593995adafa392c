package services

import (
	"github.com/ghuser/blogs/pkg/app"
	"github.com/ghuser/blogs/pkg/config"
	"github.com/ghuser/blogs/services/user/domain/repositories"
	"github.com/ghuser/blogs/services/user/infrastructure/persistence/memory"
	"github.com/ghuser/blogs/services/user/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	User *UserService
}

// New wires the user services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	var repo repositories.UserRepository
	switch a.Config.StoreDriver {
	case config.StoreMemory:
		repo = memory.NewUserRepository()
	default:
		repo = postgres.NewUserRepository(a.Db)
	}
	return &Services{
		User: NewUserService(repo, a.Mailer, a.Logger),
	}
}
