package usecase

import (
	"usecase-srv/internal/session"
	"usecase-srv/internal/transcript"
	"usecase-srv/pkg/log"
	"usecase-srv/pkg/minio"
	"usecase-srv/pkg/sessionsrv"
)

type implUseCase struct {
	sessionSrv   sessionsrv.ISession
	transcriptUC transcript.UseCase
	storage      minio.MinIO
	l            log.Logger
}

// New - Factory function
func New(
	sessionSrv sessionsrv.ISession,
	transcriptUC transcript.UseCase,
	storage minio.MinIO,
	l log.Logger,
) session.UseCase {
	return &implUseCase{
		sessionSrv:   sessionSrv,
		transcriptUC: transcriptUC,
		storage:      storage,
		l:            l,
	}
}
