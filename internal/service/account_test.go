package service

import (
	"context"
	"testing"

	"github.com/LucasBartista123/ProjetoSenai/internal/config"
	"github.com/LucasBartista123/ProjetoSenai/internal/constants"
	"github.com/LucasBartista123/ProjetoSenai/internal/domain"
	"github.com/LucasBartista123/ProjetoSenai/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*domain.User), nextID: 1}
}

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *user
	stored.ID = id
	f.users[id] = &stored
	return id, nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if user, ok := f.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	for _, user := range f.users {
		if user.Username == username && user.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	for _, user := range f.users {
		if user.Email == email && user.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Update(ctx context.Context, user *domain.User) error {
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func newAccountService(t *testing.T, store UserStore) *AccountService {
	t.Helper()
	cfg := &config.Config{UploadDir: t.TempDir()}
	return NewAccountService(store, cfg, zerolog.Nop())
}

func TestRegister(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newAccountService(t, store)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "sup3rsecret")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, constants.DefaultAvatar, user.Avatar)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("sup3rsecret")))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newAccountService(t, store)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "sup3rsecret")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "other@example.com", "sup3rsecret")
	require.ErrorIs(t, err, ErrUsernameTaken)
	require.Len(t, store.users, 1, "failed registration must not insert a row")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newAccountService(t, store)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "sup3rsecret")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "bob", "alice@example.com", "sup3rsecret")
	require.ErrorIs(t, err, ErrEmailTaken)
	require.Len(t, store.users, 1)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newAccountService(t, store)

	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "sup3rsecret")
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "alice@example.com", "sup3rsecret")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)

	_, err = svc.Authenticate(context.Background(), "alice@example.com", "wrongpass")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "sup3rsecret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile_KeepOwnUsername(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newAccountService(t, store)

	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "sup3rsecret")
	require.NoError(t, err)

	// Same username, new email: the uniqueness check excludes self.
	updated, err := svc.UpdateProfile(context.Background(), registered.ID, "alice", "new@example.com", nil)
	require.NoError(t, err)
	require.Equal(t, "new@example.com", updated.Email)
}

func TestUpdateProfile_TakenUsername(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newAccountService(t, store)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "sup3rsecret")
	require.NoError(t, err)
	bob, err := svc.Register(context.Background(), "bob", "bob@example.com", "sup3rsecret")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), bob.ID, "alice", "bob@example.com", nil)
	require.ErrorIs(t, err, ErrUsernameTaken)
}
