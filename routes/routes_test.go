package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hithesh05/chroma-shop-essence/cache"
	"github.com/hithesh05/chroma-shop-essence/models"
	"github.com/hithesh05/chroma-shop-essence/services"
	"github.com/hithesh05/chroma-shop-essence/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()

	st := store.New(store.WithAutoCloseDelay(time.Minute))
	jwtService, err := services.NewJWTService("test-secret")
	require.NoError(t, err)

	router := gin.New()
	Register(router, Deps{
		Store: st,
		JWT:   jwtService,
		Cache: cache.New(),
	})
	return router, st
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, models.ApiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func dataAsMap(t *testing.T, resp models.ApiResponse) map[string]any {
	t.Helper()
	m, ok := resp.Data.(map[string]any)
	require.True(t, ok, "response data should be an object, got %T", resp.Data)
	return m
}

func TestListProductsWithFilters(t *testing.T) {
	router, _ := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/store/products?category=clothing&sort=price-low", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	items, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, items, 3)

	first := items[0].(map[string]any)
	assert.Equal(t, "Essential Cotton T-Shirt", first["name"])

	require.NotNil(t, resp.Meta)
	assert.Equal(t, 3, resp.Meta.Total)
}

func TestGetProductByID(t *testing.T) {
	router, _ := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/store/products/1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Minimalist Leather Backpack", dataAsMap(t, resp)["name"])

	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/store/products/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, resp.Error)
}

func TestCartFlow(t *testing.T) {
	router, st := newTestRouter(t)

	// Add two backpacks
	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/cart",
		models.AddToCartRequest{ProductID: 1, Quantity: 2}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataAsMap(t, resp)
	assert.EqualValues(t, 2, data["count"])
	assert.InDelta(t, 2*249.99, data["total"].(float64), 1e-9)

	// Adding opens the cart panel
	assert.True(t, st.IsCartOpen())

	// Absolute quantity update
	w, resp = doJSON(t, router, http.MethodPatch, "/api/v1/cart/1",
		models.UpdateCartItemRequest{Quantity: 1}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, dataAsMap(t, resp)["count"])

	// Unknown product is a 404, cart untouched
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/cart",
		models.AddToCartRequest{ProductID: 999, Quantity: 1}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, st.Cart(), 1)

	// Clear
	w, resp = doJSON(t, router, http.MethodDelete, "/api/v1/cart", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, dataAsMap(t, resp)["count"])
}

func TestWishlistToggle(t *testing.T) {
	router, st := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/wishlist/toggle",
		models.ToggleWishlistRequest{ProductID: 3}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, dataAsMap(t, resp)["in_wishlist"])

	w, resp = doJSON(t, router, http.MethodPost, "/api/v1/wishlist/toggle",
		models.ToggleWishlistRequest{ProductID: 3}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, dataAsMap(t, resp)["in_wishlist"])
	assert.Empty(t, st.Wishlist())
}

func TestUIToggleMutualExclusion(t *testing.T) {
	router, _ := newTestRouter(t)

	_, resp := doJSON(t, router, http.MethodPost, "/api/v1/ui/cart/toggle", nil, nil)
	data := dataAsMap(t, resp)
	assert.Equal(t, true, data["is_cart_open"])
	assert.Equal(t, false, data["is_menu_open"])

	_, resp = doJSON(t, router, http.MethodPost, "/api/v1/ui/menu/toggle", nil, nil)
	data = dataAsMap(t, resp)
	assert.Equal(t, false, data["is_cart_open"])
	assert.Equal(t, true, data["is_menu_open"])
}

func login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		models.LoginRequest{Email: email, Password: password}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token, ok := dataAsMap(t, resp)["token"].(string)
	require.True(t, ok)
	return token
}

func TestAuthFlow(t *testing.T) {
	router, st := newTestRouter(t)

	// Bad credentials
	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		models.LoginRequest{Email: "user@example.com", Password: "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, resp.Error)
	assert.False(t, st.IsLoggedIn())

	// Demo user
	token := login(t, router, "user@example.com", "password")

	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", nil,
		map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, dataAsMap(t, resp)["id"])

	// Logout clears the session; the old token no longer maps to one
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", nil,
		map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterLogsSessionIn(t *testing.T) {
	router, st := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register",
		models.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "pw"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	data := dataAsMap(t, resp)
	user := data["user"].(map[string]any)
	assert.Equal(t, "Jane", user["name"])
	assert.Equal(t, false, user["isAdmin"])
	assert.True(t, st.IsLoggedIn())
}

func TestAdminStatsRequiresAdmin(t *testing.T) {
	router, _ := newTestRouter(t)

	// Anonymous
	w, _ := doJSON(t, router, http.MethodGet, "/api/v1/admin/stats", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Regular user
	userToken := login(t, router, "user@example.com", "password")
	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/admin/stats", nil,
		map[string]string{"Authorization": "Bearer " + userToken})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin
	adminToken := login(t, router, "admin@example.com", "admin")
	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/admin/stats", nil,
		map[string]string{"Authorization": "Bearer " + adminToken})
	require.Equal(t, http.StatusOK, w.Code)

	data := dataAsMap(t, resp)
	assert.EqualValues(t, 8, data["total_products"])
	assert.EqualValues(t, 4, data["featured_products"])
}
