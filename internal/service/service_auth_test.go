package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/museum-user-api/internal/config"
	"github.com/MKhiriev/museum-user-api/internal/logger"
	"github.com/MKhiriev/museum-user-api/internal/mock"
	"github.com/MKhiriev/museum-user-api/internal/store"
	"github.com/MKhiriev/museum-user-api/internal/utils"
	"github.com/MKhiriev/museum-user-api/models"
)

type fixedIDGenerator string

func (g fixedIDGenerator) Generate() string { return string(g) }

var testAppConfig = config.App{TokenSignKey: "test-sign-key"}

// newTestAuthSvc - helper building authService around a mocked repository
func newTestAuthSvc(t *testing.T, cfg config.App) (*authService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, fixedIDGenerator("user-1"), cfg, logger.Nop()).(*authService)
	svc.hashCost = bcrypt.MinCost

	return svc, repo
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "user-1", u.UserID)
			assert.Equal(t, "ann", u.UserName)
			assert.NotEqual(t, "secret", u.PasswordHash, "password must be stored hashed")
			assert.True(t, utils.ComparePassword(u.PasswordHash, "secret"))
			assert.False(t, u.CreatedAt.IsZero())
			return u, nil
		},
	)

	msg, err := svc.RegisterUser(ctx, models.Credentials{UserName: "ann", Password: "secret", Password2: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "User ann successfully registered", msg)
}

func TestAuthService_RegisterUser_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		credentials models.Credentials
		wantKind    Kind
	}{
		{name: "empty user name", credentials: models.Credentials{Password: "p"}, wantKind: KindInvalidInput},
		{name: "blank user name", credentials: models.Credentials{UserName: "   ", Password: "p"}, wantKind: KindInvalidInput},
		{name: "empty password", credentials: models.Credentials{UserName: "ann"}, wantKind: KindInvalidInput},
		{name: "passwords differ", credentials: models.Credentials{UserName: "ann", Password: "a", Password2: "b"}, wantKind: KindPasswordMismatch},
		{name: "missing confirmation", credentials: models.Credentials{UserName: "ann", Password: "a"}, wantKind: KindPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// repository must not be reached: no expectations are set
			svc, _ := newTestAuthSvc(t, testAppConfig)

			_, err := svc.RegisterUser(context.Background(), tt.credentials)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, AsError(err).Kind)
		})
	}
}

func TestAuthService_RegisterUser_NameTaken(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNameAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{UserName: "ann", Password: "p", Password2: "p"})
	assert.ErrorIs(t, err, ErrUserNameTaken)
	assert.Equal(t, "User Name already taken", err.Error())
}

func TestAuthService_RegisterUser_StoreFailureIsInternal(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig)

	dbErr := errors.New("pq: connection reset")
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{UserName: "ann", Password: "p", Password2: "p"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, dbErr)
	assert.NotContains(t, err.Error(), "connection reset")
}

// ── CheckUser ────────────────────────────────────────────────────────────────

func TestAuthService_CheckUser(t *testing.T) {
	hash, err := utils.HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{UserID: "user-1", UserName: "ann", PasswordHash: hash}

	tests := []struct {
		name        string
		password    string
		findResult  models.User
		findErr     error
		wantErr     error
		wantMessage string
	}{
		{name: "correct password", password: "secret", findResult: stored},
		{name: "wrong password", password: "nope", findResult: stored, wantErr: ErrWrongPassword, wantMessage: "Incorrect password for user ann"},
		{name: "unknown user", password: "secret", findErr: store.ErrNoUserWasFound, wantErr: ErrUserNotFound, wantMessage: "Unable to find user ann"},
		{name: "store failure", password: "secret", findErr: errors.New("boom"), wantErr: ErrInternal, wantMessage: "unexpected error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthSvc(t, testAppConfig)
			repo.EXPECT().FindUserByName(gomock.Any(), "ann").Return(tt.findResult, tt.findErr)

			user, err := svc.CheckUser(context.Background(), models.Credentials{UserName: "ann", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantMessage, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored, user)
		})
	}
}

func TestAuthService_CheckUser_InvalidInput(t *testing.T) {
	svc, _ := newTestAuthSvc(t, testAppConfig)

	_, err := svc.CheckUser(context.Background(), models.Credentials{UserName: "ann"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_RegisterThenLogin_TokenCarriesSubject(t *testing.T) {
	svc, repo := newTestAuthSvc(t, testAppConfig)
	ctx := context.Background()

	var saved models.User
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			saved = u
			return u, nil
		},
	)
	repo.EXPECT().FindUserByName(ctx, "ann").DoAndReturn(
		func(context.Context, string) (models.User, error) { return saved, nil },
	)

	creds := models.Credentials{UserName: "ann", Password: "secret", Password2: "secret"}
	_, err := svc.RegisterUser(ctx, creds)
	require.NoError(t, err)

	user, err := svc.CheckUser(ctx, creds)
	require.NoError(t, err)

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)

	identity, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, models.Identity{UserID: saved.UserID, UserName: "ann"}, identity)
}

func TestAuthService_ParseToken_Rejections(t *testing.T) {
	svc, _ := newTestAuthSvc(t, testAppConfig)
	ctx := context.Background()

	foreign, err := utils.GenerateJWTToken(models.Identity{UserID: "u"}, utils.TokenParams{SignKey: "other-key"})
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
	}{
		{name: "garbage", raw: "not-a-token"},
		{name: "empty", raw: ""},
		{name: "other sign key", raw: foreign.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctx := context.Background()
	params := utils.TokenParams{SignKey: testAppConfig.TokenSignKey, Duration: time.Nanosecond}

	token, err := utils.GenerateJWTToken(models.Identity{UserID: "u"}, params)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	svc, _ := newTestAuthSvc(t, config.App{TokenSignKey: params.SignKey, TokenDuration: params.Duration})
	_, err = svc.ParseToken(ctx, token.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_IssuerEnforced(t *testing.T) {
	ctx := context.Background()

	withoutIssuer, err := utils.GenerateJWTToken(models.Identity{UserID: "u"}, utils.TokenParams{SignKey: "k"})
	require.NoError(t, err)

	svc, _ := newTestAuthSvc(t, config.App{TokenSignKey: "k", TokenIssuer: "museum-user-api"})
	_, err = svc.ParseToken(ctx, withoutIssuer.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_MissingSubject(t *testing.T) {
	svc, _ := newTestAuthSvc(t, testAppConfig)

	_, err := svc.CreateToken(context.Background(), models.User{UserName: "ann"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
