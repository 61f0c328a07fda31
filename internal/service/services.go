package service

import (
	"github.com/MKhiriev/museum-user-api/internal/config"
	"github.com/MKhiriev/museum-user-api/internal/logger"
	"github.com/MKhiriev/museum-user-api/internal/store"
	"github.com/MKhiriev/museum-user-api/internal/utils"
)

type Services struct {
	AuthService       AuthService
	CollectionService CollectionService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	collections := NewCollectionService(storages.CollectionRepository, cfg.App.CollectionLimit, logger)

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, utils.NewUUIDGenerator(), cfg.App, logger),
		CollectionService: NewCollectionValidationService().Wrap(collections),
	}
}
