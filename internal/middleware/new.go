package middleware

import (
	"usecase-srv/config"
	"usecase-srv/pkg/jwt"
	"usecase-srv/pkg/log"
)

type Middleware struct {
	l            log.Logger
	jwtManager   *jwt.Manager
	cookieConfig config.CookieConfig
}

func New(l log.Logger, jwtManager *jwt.Manager, cookieConfig config.CookieConfig) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
	}
}
