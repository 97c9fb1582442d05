package services

import (
	"context"

	"github.com/atlascompta/compta_backend/internal/core/domain"
	"github.com/atlascompta/compta_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a collaborator account with a bcrypt-hashed
	// password. The email is stored lowercase and must be unique.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser verifies email and password and returns a signed JWT.
	AuthenticateUser(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
