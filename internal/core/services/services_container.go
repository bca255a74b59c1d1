package services

import (
	portsrepo "github.com/blogapi/blog_backend/internal/core/ports/repositories"
	portssvc "github.com/blogapi/blog_backend/internal/core/ports/services"
	"github.com/blogapi/blog_backend/internal/platform/config"
)

// NewServiceContainer wires all application services over the repository
// provider and configuration.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, notifier portssvc.NotifierSvc) *portssvc.ServiceContainer {
	tokenSvc := NewTokenService(cfg)
	return &portssvc.ServiceContainer{
		Auth:     NewAuthService(cfg, repos.UserRepo, repos.RefreshTokenRepo, tokenSvc, notifier),
		Token:    tokenSvc,
		User:     NewUserService(repos.UserRepo),
		Post:     NewPostService(repos.PostRepo),
		Category: NewCategoryService(repos.CategoryRepo),
		Tag:      NewTagService(repos.TagRepo),
	}
}
