package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebateRequiresConfirmation(t *testing.T) {
	router := setupTest(t)

	user, _ := createTestUser(t, "ramesh", "9876543210", false)
	_, adminToken := createTestUser(t, "admin", "9999999999", true)
	product := createTestProduct(t, "Starter Plan", 490, 80, 9)
	createActivePurchase(t, user.ID, product.ID, 80, time.Now(), 9)

	code, resp := doRequest(t, router, http.MethodPost, "/admin/process-investment-rebate", map[string]interface{}{}, adminToken)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Rebate pays out immediately on every call; set confirm to true to proceed", resp["error"])
	assert.Equal(t, float64(0), reloadUser(t, user.ID).Balance)
}

// TestRebatePaysOnEveryCall pins the payout-per-call behavior: two calls pay
// twice and pull the end date in by two days. The confirm flag exists because
// of exactly this.
func TestRebatePaysOnEveryCall(t *testing.T) {
	router := setupTest(t)

	user, _ := createTestUser(t, "ramesh", "9876543210", false)
	_, adminToken := createTestUser(t, "admin", "9999999999", true)
	product := createTestProduct(t, "Starter Plan", 490, 80, 9)
	purchase := createActivePurchase(t, user.ID, product.ID, 80, time.Now(), 5)
	originalEnd := purchase.EndDate

	body := map[string]interface{}{"confirm": true}

	code, resp := doRequest(t, router, http.MethodPost, "/admin/process-investment-rebate", body, adminToken)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), resp["usersAffected"])
	assert.Equal(t, float64(80), resp["totalAmountAdded"])
	assert.Equal(t, float64(80), reloadUser(t, user.ID).Balance)

	code, _ = doRequest(t, router, http.MethodPost, "/admin/process-investment-rebate", body, adminToken)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(160), reloadUser(t, user.ID).Balance)

	var after models.Purchase
	require.NoError(t, config.DB.First(&after, purchase.ID).Error)
	assert.WithinDuration(t, originalEnd.AddDate(0, 0, -2), after.EndDate, time.Second)
	assert.Equal(t, models.PurchaseStatusActive, after.Status)

	var count int64
	require.NoError(t, config.DB.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", user.ID, models.TransactionTypeInvestmentRebate).
		Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestRebateCompletesExhaustedPurchase(t *testing.T) {
	router := setupTest(t)

	user, _ := createTestUser(t, "ramesh", "9876543210", false)
	_, adminToken := createTestUser(t, "admin", "9999999999", true)
	product := createTestProduct(t, "Starter Plan", 490, 80, 9)

	// One day left: the rebate pays it out and closes the purchase
	purchase := createActivePurchase(t, user.ID, product.ID, 80, time.Now().AddDate(0, 0, -8), 9)

	code, _ := doRequest(t, router, http.MethodPost, "/admin/process-investment-rebate", map[string]interface{}{"confirm": true}, adminToken)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(80), reloadUser(t, user.ID).Balance)

	var after models.Purchase
	require.NoError(t, config.DB.First(&after, purchase.ID).Error)
	assert.Equal(t, models.PurchaseStatusCompleted, after.Status)

	// Completed purchases are out of scope for the next run
	code, resp := doRequest(t, router, http.MethodPost, "/admin/process-investment-rebate", map[string]interface{}{"confirm": true}, adminToken)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), resp["usersAffected"])
	assert.Equal(t, float64(80), reloadUser(t, user.ID).Balance)
}
