package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/camden-git/totenbilder/database"
	"github.com/camden-git/totenbilder/models"
	"github.com/camden-git/totenbilder/repository"
	"github.com/camden-git/totenbilder/services"
	"github.com/camden-git/totenbilder/web"
)

var testURLs = models.ImageURLBuilder{
	BaseURL:        "https://archive.example/files/",
	PlaceholderURL: "https://placehold.co/400x600/eee/555?text=",
}

// 23 November, the death day of demo record 101
func fixedNow() time.Time {
	return time.Date(2024, time.November, 23, 10, 0, 0, 0, time.Local)
}

type erroringRepository struct {
	err error
}

func (e erroringRepository) Search(context.Context, models.SearchFilter, models.PageRequest) (models.ListResult, error) {
	return models.ListResult{}, e.err
}

func (e erroringRepository) DiedOn(context.Context, int, int, models.TodaySort) ([]models.Totenbild, error) {
	return nil, e.err
}

func (e erroringRepository) GetByID(context.Context, int64) (*models.Totenbild, error) {
	return nil, e.err
}

func (e erroringRepository) GetByAlias(context.Context, string) (*models.Totenbild, error) {
	return nil, e.err
}

var errBoom = errors.New("boom")

type stubAuthenticator struct{}

func (stubAuthenticator) Authenticate(_ context.Context, login, password string) (models.SessionUser, error) {
	if login == "admin" && password == "correct-horse" {
		return models.SessionUser{ID: "1", Name: "admin", Email: "admin@example.org"}, nil
	}
	return models.SessionUser{}, services.ErrInvalidCredentials
}

func mustRenderer() *web.Renderer {
	r, err := web.NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// newTestRouter mounts the handlers the way the server does, with primary as
// the live archive.
func newTestRouter(primary repository.TotenbildRepository, sessions *services.SessionService) http.Handler {
	logger := zap.NewNop()
	renderer := mustRenderer()

	api := &TotenbildHandler{Repo: primary, URLs: testURLs, Logger: logger, Now: fixedNow}
	pages := &PageHandler{
		Repo: &repository.FallbackTotenbildRepository{
			Primary: primary,
			Demo:    repository.NewDemoTotenbildRepository(),
			Logger:  logger,
		},
		URLs:     testURLs,
		Renderer: renderer,
		Logger:   logger,
		Now:      fixedNow,
	}
	auth := &AuthHandler{Auth: stubAuthenticator{}, Sessions: sessions, Renderer: renderer, Logger: logger}

	r := chi.NewRouter()
	r.Get("/api/search", api.Search)
	r.Get("/api/today", api.Today)
	r.Get("/api/totenbilder/{nid}", api.GetByID)
	r.Get("/api/totenbilder/alias/{alias}", api.GetByAlias)
	r.Get("/api/auth/session", auth.Session)
	r.Get("/", pages.Home)
	r.Get("/today", pages.Today)
	r.Get("/person/{nid}", pages.Person)
	r.Get("/totenbild/{alias}", pages.Alias)
	r.Get("/impressum", pages.Static("impressum"))
	r.Get("/login", auth.LoginPage)
	r.Post("/login", auth.Login)
	r.Post("/logout", auth.Logout)
	r.With(RequireSession(sessions)).Get("/admin", auth.Admin)
	return r
}

func notConfigured() repository.TotenbildRepository {
	return erroringRepository{err: database.ErrNotConfigured}
}
