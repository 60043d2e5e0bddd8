package service

import (
	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/store"
)

type Services struct {
	UserService UserService
	AuthService AuthService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserService(storages.UserRepository, logger),
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
	}
}
