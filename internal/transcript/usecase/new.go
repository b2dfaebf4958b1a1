package usecase

import (
	"usecase-srv/internal/transcript"
	"usecase-srv/internal/transcript/repository"
	"usecase-srv/pkg/log"
	"usecase-srv/pkg/sessionsrv"
)

type implUseCase struct {
	sessionSrv sessionsrv.ISession
	repo       repository.CacheRepository
	l          log.Logger
}

// New - Factory function
func New(
	sessionSrv sessionsrv.ISession,
	repo repository.CacheRepository,
	l log.Logger,
) transcript.UseCase {
	return &implUseCase{
		sessionSrv: sessionSrv,
		repo:       repo,
		l:          l,
	}
}
