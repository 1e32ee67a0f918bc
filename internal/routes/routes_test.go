package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-marketplace/internal/config"
	"github.com/BruksfildServices01/service-marketplace/internal/db/dbtest"
)

type client struct {
	t *testing.T
	r *gin.Engine
}

func newClient(t *testing.T) *client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r, dbtest.Seeded(t), &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		Timezone:  "UTC",
	}, nil)

	return &client{t: t, r: r}
}

func (c *client) do(method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w, out
}

func (c *client) signUp(username, role string) (token string, id uint) {
	c.t.Helper()

	w, body := c.do(http.MethodPost, "/api/auth/sign-up", "", gin.H{
		"username":         username,
		"email":            username + "@example.com",
		"password":         "secret123",
		"confirm_password": "secret123",
		"phone":            "555-0100",
		"address":          "1 Main St",
		"role":             role,
	})
	require.Equal(c.t, http.StatusCreated, w.Code, w.Body.String())

	user := body["user"].(map[string]any)
	return body["token"].(string), uint(user["id"].(float64))
}

func TestHealth(t *testing.T) {
	c := newClient(t)

	w, body := c.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestCatalogRoutes(t *testing.T) {
	c := newClient(t)

	w, body := c.do(http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, body["total"])

	w, body = c.do(http.MethodGet, "/api/categories/cleaning/services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, body["total"])

	w, body = c.do(http.MethodGet, "/api/services?category=gardening", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, body["total"])

	w, body = c.do(http.MethodGet, "/api/categories/cooking", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "category_not_found", body["error_code"])

	w, body = c.do(http.MethodGet, "/api/services/carpentry", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_service_name", body["error_code"])

	w, body = c.do(http.MethodGet, "/api/services/welding", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "welding", body["name"])
}

func TestAuthRequired(t *testing.T) {
	c := newClient(t)

	w, body := c.do(http.MethodPost, "/api/bookings", "", gin.H{"service_name": "plumbing"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing_authorization_header", body["error_code"])

	w, body = c.do(http.MethodPost, "/api/bookings", "garbage", gin.H{"service_name": "plumbing"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_token", body["error_code"])
}

func TestSignInRoute(t *testing.T) {
	c := newClient(t)
	c.signUp("carla", "customer")

	w, body := c.do(http.MethodPost, "/api/auth/sign-in", "", gin.H{
		"email":    "carla@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body["token"])

	w, body = c.do(http.MethodPost, "/api/auth/sign-in", "", gin.H{
		"email":    "carla@example.com",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", body["error_code"])

	w, body = c.do(http.MethodPost, "/api/auth/sign-up", "", gin.H{
		"username":         "carla",
		"email":            "carla@example.com",
		"password":         "secret123",
		"confirm_password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_fields", body["error_code"])

	w, _ = c.do(http.MethodPost, "/api/auth/sign-up", "", gin.H{
		"username":         "carla",
		"email":            "carla@example.com",
		"password":         "secret123",
		"confirm_password": "secret123",
		"phone":            "555-0100",
		"address":          "1 Main St",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBookingFlow(t *testing.T) {
	c := newClient(t)

	customer, customerID := c.signUp("carla", "customer")
	provider, providerID := c.signUp("pedro", "provider")
	outsider, _ := c.signUp("quinn", "provider")

	// Offers
	w, body := c.do(http.MethodPost, "/api/offers", provider, gin.H{
		"service_name": "plumbing",
		"price":        5000,
		"description":  "Leaks fixed fast",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	offerID := uint(body["id"].(float64))

	w, body = c.do(http.MethodPost, "/api/offers", customer, gin.H{
		"service_name": "plumbing",
		"price":        1,
		"description":  "x",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", body["error_code"])

	w, _ = c.do(http.MethodPost, "/api/offers", provider, gin.H{
		"service_name": "plumbing",
		"price":        10,
		"description":  "again",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, body = c.do(http.MethodPatch, fmt.Sprintf("/api/offers/%d", offerID), provider, gin.H{"price": 5500})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 5500, body["price"])
	assert.Equal(t, "Leaks fixed fast", body["description"])

	w, body = c.do(http.MethodGet, "/api/services/plumbing/offers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total"])

	w, body = c.do(http.MethodGet, fmt.Sprintf("/api/providers/%d/offers", providerID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total"])

	// Bookings
	w, body = c.do(http.MethodPost, "/api/bookings", customer, gin.H{"service_name": "carpentry"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_service_name", body["error_code"])

	w, body = c.do(http.MethodPost, "/api/bookings", customer, gin.H{"service_name": "plumbing"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "pending", body["status"])
	assert.Nil(t, body["provider_id"])
	bookingID := uint(body["id"].(float64))
	path := fmt.Sprintf("/api/bookings/%d", bookingID)

	w, body = c.do(http.MethodGet, "/api/bookings/open", provider, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total"])

	w, _ = c.do(http.MethodPut, path+"/accept", outsider, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, body = c.do(http.MethodPut, path+"/accept", provider, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "accepted", body["status"])
	assert.EqualValues(t, providerID, body["provider_id"])

	w, body = c.do(http.MethodPut, path+"/accept", provider, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "invalid_transition", body["error_code"])

	w, _ = c.do(http.MethodPut, path+"/complete", customer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, body = c.do(http.MethodPut, path+"/complete", provider, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", body["status"])

	w, _ = c.do(http.MethodPut, path+"/cancel", customer, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, body = c.do(http.MethodGet, fmt.Sprintf("/api/customers/%d/bookings", customerID), customer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total"])

	w, _ = c.do(http.MethodGet, fmt.Sprintf("/api/customers/%d/bookings", customerID), provider, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = c.do(http.MethodGet, "/api/bookings", customer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = c.do(http.MethodGet, "/api/admin/audit-logs", customer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, body = c.do(http.MethodGet, "/api/bookings/abc", customer, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_id", body["error_code"])
}

func TestUserRoutes(t *testing.T) {
	c := newClient(t)

	token, id := c.signUp("carla", "customer")
	other, _ := c.signUp("bea", "customer")

	w, body := c.do(http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := body["user"].(map[string]any)
	assert.Equal(t, "carla", user["username"])
	assert.NotContains(t, user, "password_hash")

	path := fmt.Sprintf("/api/users/%d", id)

	w, _ = c.do(http.MethodPut, path, other, gin.H{"phone": "1"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, body = c.do(http.MethodPut, path, token, gin.H{"phone": "555-0100"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "555-0100", body["user"].(map[string]any)["phone"])

	w, _ = c.do(http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// The token still verifies but its user is gone.
	w, body = c.do(http.MethodPost, "/api/bookings", token, gin.H{"service_name": "plumbing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "user_not_found", body["error_code"])

	w, _ = c.do(http.MethodGet, path, other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
