package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/config"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/middleware"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/models"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/repository"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/service"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/slug"
	"github.com/Tanishagodhaa/qr-cafe-menu/pkg/logger"
)

// fixture wires the full handler stack over in-memory repositories, matching
// the production router layout.
type fixture struct {
	router chi.Router
	auth   *service.AuthService
	cafes  *service.CafeService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	authCfg := config.AuthConfig{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  60,
		RefreshTokenTTL: 120,
	}
	deployCfg := config.DeployConfig{
		Root:          t.TempDir(),
		PublicBaseURL: "https://menus.example.com",
	}
	log := logger.New("error")

	userRepo := repository.NewInMemoryUserRepository()
	cafeRepo := repository.NewInMemoryCafeRepository()
	categoryRepo := repository.NewInMemoryCategoryRepository()
	itemRepo := repository.NewInMemoryItemRepository()
	activityRepo := repository.NewInMemoryActivityRepository()

	authService := service.NewAuthService(userRepo, authCfg)
	cafeService := service.NewCafeService(cafeRepo, activityRepo, slug.NewGenerator(nil), nil)
	categoryService := service.NewCategoryService(cafeRepo, categoryRepo, itemRepo)
	itemService := service.NewItemService(cafeRepo, categoryRepo, itemRepo)
	menuService := service.NewMenuService(cafeRepo, categoryRepo, itemRepo)
	deployService := service.NewDeployService(cafeRepo, menuService, activityRepo, deployCfg, log)

	authHandler := NewAuthHandler(authService, log)
	cafeHandler := NewCafeHandler(cafeService, menuService, deployService, log)
	categoryHandler := NewCategoryHandler(categoryService, log)
	itemHandler := NewItemHandler(itemService, log)
	publicHandler := NewPublicHandler(menuService, authCfg, log)

	r := chi.NewRouter()
	r.Get("/m/{slug}", publicHandler.MenuPage)
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(authCfg))

			r.Post("/cafes", cafeHandler.CreateCafe)
			r.Get("/cafes", cafeHandler.ListCafes)
			r.Get("/cafes/{cafeId}", cafeHandler.GetCafe)
			r.Put("/cafes/{cafeId}", cafeHandler.UpdateCafe)
			r.Post("/cafes/{cafeId}/publish", cafeHandler.Publish)
			r.Post("/cafes/{cafeId}/deploy", cafeHandler.Deploy)
			r.Get("/cafes/{cafeId}/qr", cafeHandler.QRCode)
			r.Get("/cafes/{cafeId}/package", cafeHandler.Package)
			r.Get("/cafes/{cafeId}/activity", cafeHandler.Activity)

			r.Post("/cafes/{cafeId}/categories", categoryHandler.CreateCategory)
			r.Get("/cafes/{cafeId}/categories", categoryHandler.ListCategories)
			r.Put("/cafes/{cafeId}/categories/order", categoryHandler.Reorder)
			r.Put("/categories/{categoryId}", categoryHandler.UpdateCategory)
			r.Delete("/categories/{categoryId}", categoryHandler.DeleteCategory)

			r.Post("/categories/{categoryId}/items", itemHandler.CreateItem)
			r.Get("/categories/{categoryId}/items", itemHandler.ListItems)
			r.Put("/items/{itemId}", itemHandler.UpdateItem)
			r.Delete("/items/{itemId}", itemHandler.DeleteItem)
		})
	})

	return &fixture{router: r, auth: authService, cafes: cafeService}
}

// registerOwner creates an account and returns its id and access token.
func (f *fixture) registerOwner(t *testing.T, email string) (string, string) {
	t.Helper()
	user, pair, err := f.auth.Register(context.Background(), "Owner", email, "s3cret-pass")
	if err != nil {
		t.Fatalf("register owner: %v", err)
	}
	return user.ID, pair.AccessToken
}

func (f *fixture) createCafe(t *testing.T, ownerID, name string) *models.Cafe {
	t.Helper()
	cafe, err := f.cafes.Create(context.Background(), ownerID, service.CreateCafeInput{Name: name})
	if err != nil {
		t.Fatalf("create cafe: %v", err)
	}
	return cafe
}

// do performs a request against the fixture router.
func (f *fixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}
