package services

import (
	portsrepo "github.com/SscSPs/rating_registry/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rating_registry/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...RatingServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Rating: NewRatingService(repos.RatingRepo, options...),
	}
}
