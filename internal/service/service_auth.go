package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/museum-user-api/internal/config"
	"github.com/MKhiriev/museum-user-api/internal/logger"
	"github.com/MKhiriev/museum-user-api/internal/store"
	"github.com/MKhiriev/museum-user-api/internal/utils"
	"github.com/MKhiriev/museum-user-api/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// idGenerator assigns ids to newly registered users.
	idGenerator IDGenerator

	// tokenParams holds the signing key, optional issuer and optional
	// lifetime of issued tokens.
	tokenParams utils.TokenParams

	// hashCost is the bcrypt cost used at registration.
	hashCost int

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, idGenerator IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		idGenerator:    idGenerator,
		tokenParams: utils.TokenParams{
			SignKey:  cfg.TokenSignKey,
			Issuer:   cfg.TokenIssuer,
			Duration: cfg.TokenDuration,
		},
		hashCost: bcrypt.DefaultCost,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger,
	}
}

// RegisterUser creates a new user account and returns the confirmation
// message shown to the client.
//
// Returns:
//   - ErrInvalidInput if the user name or password is empty.
//   - ErrPasswordMismatch if password2 is missing or differs from password.
//   - ErrUserNameTaken if the user name is already registered.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (string, error) {
	log := logger.FromContext(ctx)

	userName := strings.TrimSpace(credentials.UserName)
	if userName == "" || credentials.Password == "" {
		log.Error().Str("user_name", credentials.UserName).Msg("invalid user data provided")
		return "", ErrInvalidInput
	}
	if credentials.Password2 != credentials.Password {
		return "", ErrPasswordMismatch
	}

	hash, err := utils.HashPassword(credentials.Password, a.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		// bcrypt refuses passwords longer than 72 bytes
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrInvalidInput
		}
		return "", internal(err)
	}

	user := models.User{
		UserID:       a.idGenerator.Generate(),
		UserName:     userName,
		PasswordHash: hash,
		CreatedAt:    a.now(),
	}

	if _, err = a.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("user_name", userName).Msg("user creation ended with error")
		if errors.Is(err, store.ErrUserNameAlreadyExists) {
			return "", ErrUserNameTaken
		}
		return "", internal(err)
	}

	log.Info().Str("user_id", user.UserID).Str("user_name", userName).Msg("user registered")
	return fmt.Sprintf("User %s successfully registered", userName), nil
}

// CheckUser authenticates an existing user by name and password.
//
// Returns the stored user record or:
//   - ErrInvalidInput if the user name or password is empty.
//   - ErrUserNotFound if no user has that name.
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) CheckUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	userName := strings.TrimSpace(credentials.UserName)
	if userName == "" || credentials.Password == "" {
		log.Error().Str("user_name", credentials.UserName).Msg("invalid user data provided")
		return models.User{}, ErrInvalidInput
	}

	foundUser, err := a.userRepository.FindUserByName(ctx, userName)
	if err != nil {
		log.Err(err).Str("user_name", userName).Msg("user search by name failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, userNotFound(userName)
		}
		return models.User{}, internal(err)
	}

	if !utils.ComparePassword(foundUser.PasswordHash, credentials.Password) {
		log.Warn().Str("user_id", foundUser.UserID).Str("user_name", userName).Msg("wrong password")
		return models.User{}, wrongPassword(userName)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT carrying the user's id and name.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(models.Identity{UserID: user.UserID, UserName: user.UserName}, a.tokenParams)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string and returns the identity it carries.
// Any validation failure (bad signature, expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Identity, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenParams)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	return token.Claims.Identity(), nil
}
