package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/arjun-629/WealthNest/routes"
	"github.com/arjun-629/WealthNest/utils"
	"github.com/gin-gonic/gin"
)

var testInit sync.Once

// setupTest opens the shared in-memory database, wipes it, and returns the
// fully wired router.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	testInit.Do(func() {
		gin.SetMode(gin.TestMode)
		os.Setenv("JWT_SECRET", "test-secret")
		if err := config.InitTestDB(); err != nil {
			t.Fatalf("Failed to init test database: %v", err)
		}
	})

	clearTestData(t)
	return routes.SetupRouter()
}

func clearTestData(t *testing.T) {
	t.Helper()
	for _, table := range []string{"transactions", "purchases", "recharges", "withdrawals", "users", "products"} {
		if err := config.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to clear table %s: %v", table, err)
		}
	}
}

// createTestUser inserts a user directly and returns it with a valid token
func createTestUser(t *testing.T, username, phone string, isAdmin bool) (*models.User, string) {
	t.Helper()

	hash, err := utils.HashPassword("secret123")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		Name:         "Test " + username,
		Username:     username,
		PhoneNumber:  phone,
		PasswordHash: hash,
		ReferralCode: "REF-" + username,
		IsActive:     true,
		IsAdmin:      isAdmin,
	}
	if err := config.DB.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return user, token
}

func createTestProduct(t *testing.T, name string, price, dailyIncome float64, duration int) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:        name,
		Price:       price,
		DailyIncome: dailyIncome,
		Duration:    duration,
		TotalReturn: price + dailyIncome*float64(duration),
		Profit:      dailyIncome*float64(duration) - price,
	}
	if err := config.DB.Create(product).Error; err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	return product
}

// doRequest performs an HTTP request against the router and decodes the
// JSON response body into a map
func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) (int, map[string]interface{}) {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("Failed to unmarshal response body %q: %v", w.Body.String(), err)
		}
	}
	return w.Code, parsed
}

// doListRequest is doRequest for endpoints whose top-level response is a
// JSON array
func doListRequest(t *testing.T, router *gin.Engine, method, path string, token string) (int, []map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(method, path, nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed []map[string]interface{}
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("Failed to unmarshal list response %q: %v", w.Body.String(), err)
		}
	}
	return w.Code, parsed
}

func reloadUser(t *testing.T, id uint) *models.User {
	t.Helper()
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		t.Fatalf("Failed to reload user %d: %v", id, err)
	}
	return &user
}
