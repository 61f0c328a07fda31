package store

import (
	"github.com/MKhiriev/museum-user-api/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository       UserRepository
	CollectionRepository CollectionRepository
}

// NewStorages builds all repositories on top of a connected [DB].
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		CollectionRepository: NewCollectionRepository(db, log),
	}
}
