package store

import "github.com/MKhiriev/inkloth/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository UserRepository
	BlogRepository BlogRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		BlogRepository: NewBlogRepository(db, log),
	}
}
