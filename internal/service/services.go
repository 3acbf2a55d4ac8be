package service

import (
	"github.com/MKhiriev/inkloth/internal/adapter"
	"github.com/MKhiriev/inkloth/internal/config"
	"github.com/MKhiriev/inkloth/internal/crypto"
	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/store"
	"github.com/MKhiriev/inkloth/internal/validators"
)

type Services struct {
	AuthService          AuthService
	TokenService         TokenService
	PasswordResetService PasswordResetService
	UserService          UserService
	BlogService          BlogService
	AccessGuard          AccessGuard
	AppInfoService       AppInfoService
}

// Dependencies are the outbound collaborators shared by the services.
type Dependencies struct {
	Storages *store.Storages
	Hasher   crypto.PasswordHasher
	Mailer   adapter.Mailer
	Uploader adapter.ImageUploader
}

func NewServices(deps Dependencies, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	accountValidator := validators.NewAccountValidator()
	guard := NewAccessGuard()

	return &Services{
		AuthService:          NewAuthService(deps.Storages.UserRepository, deps.Hasher, accountValidator, logger),
		TokenService:         NewTokenService(cfg, logger),
		PasswordResetService: NewPasswordResetService(deps.Storages.UserRepository, deps.Hasher, deps.Mailer, accountValidator, cfg, logger),
		UserService:          NewUserService(deps.Storages.UserRepository, accountValidator, logger),
		BlogService:          NewBlogService(deps.Storages.BlogRepository, deps.Uploader, guard, validators.NewBlogValidator(), logger),
		AccessGuard:          guard,
		AppInfoService:       appInfo,
	}, nil
}
