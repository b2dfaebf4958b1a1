package usecase

import (
	"usecase-srv/internal/extraction"
	"usecase-srv/internal/transcript"
	"usecase-srv/pkg/extractsrv"
	"usecase-srv/pkg/kafka"
	"usecase-srv/pkg/log"
)

type implUseCase struct {
	extractSrv   extractsrv.IExtract
	transcriptUC transcript.UseCase
	producer     kafka.IProducer
	l            log.Logger
}

// New - Factory function
func New(
	extractSrv extractsrv.IExtract,
	transcriptUC transcript.UseCase,
	producer kafka.IProducer,
	l log.Logger,
) extraction.UseCase {
	return &implUseCase{
		extractSrv:   extractSrv,
		transcriptUC: transcriptUC,
		producer:     producer,
		l:            l,
	}
}
