package web

import (
	"go.uber.org/zap"
)

type webService struct {
	server *Server
	log    *zap.Logger
}
