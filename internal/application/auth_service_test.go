package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adityawp/casaly/internal/apperr"
	"github.com/adityawp/casaly/internal/domain/entity"
	"github.com/adityawp/casaly/pkg/helpers"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
	creates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}, byID: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return apperr.New(apperr.KindConflict, "email already registered")
	}
	f.creates++
	u.ID = "user-" + u.Username
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, apperr.New(apperr.KindNotFound, "user not found")
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperr.New(apperr.KindNotFound, "user not found")
}

func newAuthService(repo *fakeUserRepo) *AuthService {
	return NewAuthService(repo, helpers.NewJWTManager("test-secret", 4*time.Hour), nil)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	u, tok, err := svc.Register(ctx, RegisterInput{Username: "ana", Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)
	require.NotEmpty(t, tok.Value)
	require.NotEqual(t, "hunter22", u.Password, "plaintext stored")

	// The issued token resolves back to the new user's id.
	claims, err := svc.JWT.Parse(tok.Value)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)

	_, tok, err = svc.Login(ctx, "ana@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, tok.Value)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Username: "ana", Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterInput{Username: "ana2", Email: "ana@example.com", Password: "hunter23"})
	require.Error(t, err)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	require.Equal(t, 1, repo.creates, "second record created")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Username: "ana", Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, tok, err := svc.Login(ctx, "ana@example.com", "wrong-password")
	require.Error(t, err)
	require.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	require.Empty(t, tok.Value, "token issued despite bad credentials")
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.Error(t, err)
	// Unknown email is indistinguishable from a wrong password.
	require.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestAuthService_Register_EmptyPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, _, err := svc.Register(context.Background(), RegisterInput{Username: "ana", Email: "ana@example.com"})
	require.Error(t, err)
	require.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	require.Zero(t, repo.creates)
}
