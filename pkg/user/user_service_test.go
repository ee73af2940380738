package user

import (
	"context"
	"testing"
	"time"

	"recipehub-backend/domain"
	"recipehub-backend/entities"
	"recipehub-backend/pkg/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	byUsername map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byUsername: make(map[string]*entities.User)}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, u *entities.User) error {
	if _, ok := f.byUsername[u.Username]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.byUsername[u.Username] = u
	return nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, u *entities.User) error {
	f.byUsername[u.Username] = u
	return nil
}

func (f *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	for _, u := range f.byUsername {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func newTestService(repo UserRepository) UserService {
	sessions := session.NewSessionService("test-secret", time.Hour, 24*time.Hour)
	return NewUserService(repo, sessions)
}

func registerRequest() domain.RegisterRequest {
	return domain.RegisterRequest{
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Liddell",
		Country:   "Wonderland",
		Password:  "s3cretpw",
		Email:     "alice@example.com",
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestService(repo)

	res, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, res.UserID)

	stored := repo.byUsername["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cretpw", stored.Password)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	// First registration is untouched.
	assert.Len(t, repo.byUsername, 1)
}

func TestLoginUniformFailureMessage(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, unknownErr := svc.Login(context.Background(), domain.LoginRequest{Username: "nobody", Password: "whatever"})
	_, wrongPwErr := svc.Login(context.Background(), domain.LoginRequest{Username: "alice", Password: "wrong"})

	// Unknown user and wrong password are indistinguishable.
	assert.ErrorIs(t, unknownErr, domain.ErrCredentialsIncorrect)
	assert.ErrorIs(t, wrongPwErr, domain.ErrCredentialsIncorrect)
	assert.Equal(t, unknownErr.Error(), wrongPwErr.Error())
}

func TestSetProfilePic(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestService(repo)

	registered, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	profile, err := svc.SetProfilePic(context.Background(), registered.UserID, "https://pics.example.com/alice.png")
	require.NoError(t, err)
	assert.Equal(t, "https://pics.example.com/alice.png", profile.ProfilePic)

	cleared, err := svc.SetProfilePic(context.Background(), registered.UserID, "")
	require.NoError(t, err)
	assert.Empty(t, cleared.ProfilePic)

	_, err = svc.SetProfilePic(context.Background(), uuid.NewString(), "x")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLoginEstablishesSession(t *testing.T) {
	repo := newFakeUserRepository()
	sessions := session.NewSessionService("test-secret", time.Hour, 24*time.Hour)
	svc := NewUserService(repo, sessions)

	registered, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), domain.LoginRequest{Username: "alice", Password: "s3cretpw"})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.User.Username)

	userID, err := sessions.Validate(res.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, userID)
}
