package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/museum-user-api/internal/logger"
	"github.com/MKhiriev/museum-user-api/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record. The caller assigns UserID and
// CreatedAt; the stored user is returned unchanged.
//
// Error handling:
//   - duplicate key on user_name → [ErrUserNameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Msg("error building insert user query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("user_name", user.UserName).Msg("error inserting user")
		err = r.db.classify(err, ErrExecutingStatement)
		if errors.Is(err, ErrDuplicateKey) {
			return models.User{}, ErrUserNameAlreadyExists
		}
		return models.User{}, err
	}

	return user, nil
}

// FindUserByName retrieves the user whose user_name matches userName.
//
// Error handling:
//   - empty result set → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped [ErrScanningRow].
func (r *userRepository) FindUserByName(ctx context.Context, userName string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectUserByNameQuery(userName)
	if err != nil {
		log.Err(err).Msg("error building select user query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.UserID, &found.UserName, &found.PasswordHash, &found.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("user_name", userName).Msg("error scanning user")
		return models.User{}, r.db.classify(err, ErrScanningRow)
	}

	return found, nil
}
