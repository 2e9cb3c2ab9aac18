package service

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"kolbe-be/internal/database"
	"kolbe-be/internal/entities"
	"kolbe-be/internal/logger"
	"kolbe-be/internal/password"
	"kolbe-be/internal/repository"
)

type errBoom struct{}

func (errBoom) Error() string { return "pq: connection reset by peer" }

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "kolbe.db") + "?_pragma=foreign_keys(1)"

	db, err := database.NewConnection(context.Background(), database.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.RunMigrations(context.Background(), db, database.DriverSQLite))
	return db
}

func newTestAuthService(t *testing.T, repo repository.UserRepository, hasher PasswordHasher, pending *PendingRegistrations) AuthService {
	t.Helper()
	if hasher == nil {
		hasher = password.NewHasher(bcrypt.MinCost)
	}
	return NewAuthService(repo, hasher, nil, pending, logger.Discard())
}

func countUsers(t *testing.T, db *sql.DB, email string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users WHERE email = $1`, email).Scan(&n))
	return n
}

// fakeUserRepo records calls and returns canned results.
type fakeUserRepo struct {
	mu          sync.Mutex
	createCalls int
	createErr   error
	findOut     *entities.User
	findErr     error
}

func (f *fakeUserRepo) Create(ctx context.Context, email, passwordHash string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &entities.User{ID: int64(f.createCalls), Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.findOut == nil {
		return nil, repository.ErrUserNotFound
	}
	return f.findOut, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	return nil, repository.ErrUserNotFound
}

// failingHasher fails every operation.
type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("bcrypt: cost out of range") }
func (failingHasher) Verify(string, string) error  { return errors.New("crypto/bcrypt: hashedSecret too short") }

// gatedHasher blocks inside Hash until released, to hold a registration in flight.
type gatedHasher struct {
	inner   PasswordHasher
	entered chan struct{}
	proceed chan struct{}
}

func newGatedHasher() *gatedHasher {
	return &gatedHasher{
		inner:   password.NewHasher(bcrypt.MinCost),
		entered: make(chan struct{}, 16),
		proceed: make(chan struct{}),
	}
}

func (g *gatedHasher) Hash(plain string) (string, error) {
	g.entered <- struct{}{}
	<-g.proceed
	return g.inner.Hash(plain)
}

func (g *gatedHasher) Verify(hash, plain string) error { return g.inner.Verify(hash, plain) }

type fakeTokens struct {
	err error
}

func (f fakeTokens) GenerateToken(userID int64, email string) (string, time.Time, error) {
	if f.err != nil {
		return "", time.Time{}, f.err
	}
	return "token-for-" + email, time.Now().Add(time.Hour), nil
}

// countingHasher wraps a real hasher and counts calls.
type countingHasher struct {
	inner   PasswordHasher
	mu      sync.Mutex
	hashes  int
	verifies int
}

func newCountingHasher() *countingHasher {
	return &countingHasher{inner: password.NewHasher(bcrypt.MinCost)}
}

func (c *countingHasher) Hash(plain string) (string, error) {
	c.mu.Lock()
	c.hashes++
	c.mu.Unlock()
	return c.inner.Hash(plain)
}

func (c *countingHasher) Verify(hash, plain string) error {
	c.mu.Lock()
	c.verifies++
	c.mu.Unlock()
	return c.inner.Verify(hash, plain)
}

func (c *countingHasher) counts() (hashes, verifies int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hashes, c.verifies
}
