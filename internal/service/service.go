package service

import (
	"github.com/jmoiron/sqlx"

	"github.com/crabbyteti/tambak-monitor/internal/repository"
)

type Services struct {
	Repos     *repository.Repos
	Auth      *AuthService
	Dashboard *DashboardService
	Readings  *ReadingService
}

func New(db *sqlx.DB) *Services {
	repos := repository.New(db)
	return FromRepos(repos)
}

// FromRepos wires services over an existing repository, used by tests that
// back the repository with a mock connection.
func FromRepos(repos *repository.Repos) *Services {
	return &Services{
		Repos:     repos,
		Auth:      &AuthService{repos: repos},
		Dashboard: &DashboardService{repos: repos},
		Readings:  &ReadingService{repos: repos},
	}
}
