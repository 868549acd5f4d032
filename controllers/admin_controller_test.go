package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	router := setupTest(t)

	user, _ := createTestUser(t, "ramesh", "9876543210", false)
	_, adminToken := createTestUser(t, "admin", "9999999999", true)
	product := createTestProduct(t, "Starter Plan", 490, 80, 9)

	createActivePurchase(t, user.ID, product.ID, 80, time.Now(), 9)

	require.NoError(t, config.DB.Create(&models.Recharge{
		UserID: user.ID, Amount: 1000, Status: models.RechargeStatusCompleted, ReferenceID: "X1",
	}).Error)
	// Pending money must not count toward the recharge total
	require.NoError(t, config.DB.Create(&models.Recharge{
		UserID: user.ID, Amount: 400, Status: models.RechargeStatusPending,
	}).Error)
	require.NoError(t, config.DB.Create(&models.Withdrawal{
		UserID: user.ID, Amount: 150, Method: models.WithdrawalMethodUPI, UpiID: "r@upi", Status: models.WithdrawalStatusPending,
	}).Error)

	code, resp := doRequest(t, router, http.MethodGet, "/admin/dashboard-stats", nil, adminToken)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(2), resp["totalUsers"])
	assert.Equal(t, float64(1), resp["activeProducts"])
	assert.Equal(t, float64(1000), resp["totalRecharges"])
	assert.Equal(t, float64(1), resp["pendingWithdrawals"])
}

func TestAdminListEndpoints(t *testing.T) {
	router := setupTest(t)

	user, _ := createTestUser(t, "ramesh", "9876543210", false)
	admin, adminToken := createTestUser(t, "admin", "9999999999", true)

	require.NoError(t, config.DB.Create(&models.Withdrawal{
		UserID: user.ID, Amount: 150, Method: models.WithdrawalMethodUPI, UpiID: "r@upi", Status: models.WithdrawalStatusPending,
	}).Error)
	require.NoError(t, config.DB.Create(&models.Recharge{
		UserID: user.ID, Amount: 1000, Status: models.RechargeStatusPending,
	}).Error)
	require.NoError(t, config.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("referred_by", admin.ID).Error)

	code, users := doListRequest(t, router, http.MethodGet, "/admin/users", adminToken)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, users, 2)
	for _, u := range users {
		_, exposed := u["password_hash"]
		assert.False(t, exposed)
	}

	// Withdrawal and recharge rows carry the owner's contact details
	code, withdrawals := doListRequest(t, router, http.MethodGet, "/admin/withdrawals", adminToken)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, withdrawals, 1)
	assert.Equal(t, "9876543210", withdrawals[0]["user_phone"])
	assert.Equal(t, "ramesh", withdrawals[0]["user_username"])

	code, recharges := doListRequest(t, router, http.MethodGet, "/admin/recharges", adminToken)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, recharges, 1)
	assert.Equal(t, "ramesh", recharges[0]["user_username"])

	code, referrals := doListRequest(t, router, http.MethodGet, "/admin/referrals", adminToken)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, referrals, 1)
	assert.Equal(t, "ramesh", referrals[0]["user_username"])
	assert.Equal(t, float64(admin.ID), referrals[0]["referrer_id"])
}

func TestProductCRUD(t *testing.T) {
	router := setupTest(t)

	_, adminToken := createTestUser(t, "admin", "9999999999", true)

	code, resp := doRequest(t, router, http.MethodPost, "/admin/products", map[string]interface{}{
		"name": "Starter Plan", "price": 490, "daily_income": 80,
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "All product fields are required", resp["error"])

	code, resp = doRequest(t, router, http.MethodPost, "/admin/products", map[string]interface{}{
		"name": "Starter Plan", "price": 490, "daily_income": 80, "duration": 9, "total_return": 720, "profit": 230,
	}, adminToken)
	require.Equal(t, http.StatusCreated, code)
	productID := uint(resp["product"].(map[string]interface{})["id"].(float64))

	// Numeric fields arriving as strings are coerced on update
	code, resp = doRequest(t, router, http.MethodPut, fmt.Sprintf("/admin/products/%d", productID), map[string]interface{}{
		"price": "550", "duration": "12", "name": "Starter Plan v2",
	}, adminToken)
	require.Equal(t, http.StatusOK, code)
	product := resp["product"].(map[string]interface{})
	assert.Equal(t, float64(550), product["price"])
	assert.Equal(t, float64(12), product["duration"])
	assert.Equal(t, "Starter Plan v2", product["name"])

	code, resp = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/admin/products/%d", productID), nil, adminToken)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Product deleted successfully", resp["message"])

	code, resp = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/admin/products/%d", productID), nil, adminToken)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Product not found", resp["error"])
}

func TestDeleteProductWithActiveInvestments(t *testing.T) {
	router := setupTest(t)

	user, _ := createTestUser(t, "ramesh", "9876543210", false)
	_, adminToken := createTestUser(t, "admin", "9999999999", true)
	product := createTestProduct(t, "Starter Plan", 490, 80, 9)
	purchase := createActivePurchase(t, user.ID, product.ID, 80, time.Now(), 9)

	code, resp := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/admin/products/%d", product.ID), nil, adminToken)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Cannot delete product with active investments. Please wait for all investments to complete.", resp["error"])

	// Completed investments release the plan
	require.NoError(t, config.DB.Model(purchase).Update("status", models.PurchaseStatusCompleted).Error)
	code, _ = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/admin/products/%d", product.ID), nil, adminToken)
	assert.Equal(t, http.StatusOK, code)
}

func TestAdminUpdateUser(t *testing.T) {
	router := setupTest(t)

	user, _ := createTestUser(t, "ramesh", "9876543210", false)
	_, adminToken := createTestUser(t, "admin", "9999999999", true)

	code, resp := doRequest(t, router, http.MethodPut, fmt.Sprintf("/admin/user/%d", user.ID), map[string]interface{}{
		"name":          "Ramesh Kumar",
		"is_active":     false,
		"password":      "newpass99",
		"password_hash": "injected",
		"id":            42,
	}, adminToken)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "User updated successfully", resp["message"])

	updated := reloadUser(t, user.ID)
	assert.Equal(t, "Ramesh Kumar", updated.Name)
	assert.False(t, updated.IsActive)
	// ID is not patchable and the raw hash field is ignored
	assert.Equal(t, user.ID, updated.ID)
	assert.NotEqual(t, "injected", updated.PasswordHash)
	assert.NotEqual(t, user.PasswordHash, updated.PasswordHash)

	code, resp = doRequest(t, router, http.MethodPut, "/admin/user/999", map[string]interface{}{"name": "X"}, adminToken)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "User not found", resp["error"])
}

func TestUserTransactionFeed(t *testing.T) {
	router := setupTest(t)

	user, token := createTestUser(t, "ramesh", "9876543210", false)

	require.NoError(t, config.DB.Create(&models.Transaction{
		UserID: user.ID, Type: models.TransactionTypeDailyIncome, Amount: 80,
		Status: models.TransactionStatusCompleted, Description: "Daily income from plan 1 investment", ReferenceID: "1",
	}).Error)
	require.NoError(t, config.DB.Create(&models.Withdrawal{
		UserID: user.ID, Amount: 150, Method: models.WithdrawalMethodUPI, UpiID: "r@upi", Status: models.WithdrawalStatusPending,
	}).Error)
	require.NoError(t, config.DB.Create(&models.Recharge{
		UserID: user.ID, Amount: 1000, Status: models.RechargeStatusPending,
	}).Error)
	// Resolved requests never show up as synthetic rows
	require.NoError(t, config.DB.Create(&models.Recharge{
		UserID: user.ID, Amount: 300, Status: models.RechargeStatusFailed, ReferenceID: "BAD1",
	}).Error)

	code, entries := doListRequest(t, router, http.MethodGet, "/user/transactions", token)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, entries, 3)

	types := make(map[string]bool)
	for _, e := range entries {
		types[e["type"].(string)] = true
	}
	assert.True(t, types["daily_income"])
	assert.True(t, types["withdrawal_pending"])
	assert.True(t, types["recharge_pending"])
}
