package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"kolbe-be/internal/database"
	"kolbe-be/internal/jwt"
	"kolbe-be/internal/logger"
	"kolbe-be/internal/menu"
	"kolbe-be/internal/middleware"
	"kolbe-be/internal/password"
	"kolbe-be/internal/repository"
	"kolbe-be/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	tokens *jwt.JWTService
}

// newTestServer wires the real stack against a throwaway SQLite file.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	dsn := "file:" + filepath.Join(t.TempDir(), "kolbe.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := database.NewConnection(ctx, database.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(ctx, db, database.DriverSQLite))

	log := logger.Discard()
	catalog := menu.Default()
	tokens := jwt.NewJWTService("test-secret", time.Hour)

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(
		userRepo,
		password.NewHasher(bcrypt.MinCost),
		tokens,
		nil,
		log,
	)
	favoriteService := service.NewFavoriteService(repository.NewFavoriteRepository(db), catalog, nil, log)

	r := gin.New()
	api := r.Group("/api/v1")

	auth := NewAuthController(authService)
	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)

	menuController := NewMenuController(catalog)
	qr := NewQRCodeController(catalog, "http://localhost:5500/")
	api.GET("/menu/items", menuController.ListItems)
	api.GET("/menu/items/:id", menuController.GetItem)
	api.GET("/menu/items/:id/price", menuController.GetPrice)
	api.GET("/menu/items/:id/qrcode", qr.GenerateQRCode)

	favorites := NewFavoriteController(favoriteService)
	protected := api.Group("/favorites", middleware.AuthMiddleware(tokens, userRepo))
	protected.POST("", favorites.AddFavorite)
	protected.GET("", favorites.ListFavorites)
	protected.DELETE("/:id", favorites.RemoveFavorite)

	return &testServer{router: r, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// fakeAuthService returns canned results so status mapping can be checked in isolation.
type fakeAuthService struct {
	registerErr error
	loginErr    error
}

func (f *fakeAuthService) Register(ctx context.Context, email, plain string) (*service.RegisterResult, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &service.RegisterResult{UserID: 1}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, plain string) (*service.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &service.LoginResult{UserID: 1, Email: email}, nil
}

func newFakeAuthRouter(svc service.AuthService) *gin.Engine {
	r := gin.New()
	ac := NewAuthController(svc)
	r.POST("/register", ac.Register)
	r.POST("/login", ac.Login)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
