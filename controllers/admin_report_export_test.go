package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func downloadReport(t *testing.T, router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTransactionReportDownloads(t *testing.T) {
	router := setupTest(t)

	user, _ := createTestUser(t, "ramesh", "9876543210", false)
	_, adminToken := createTestUser(t, "admin", "9999999999", true)

	require.NoError(t, config.DB.Create(&models.Transaction{
		UserID: user.ID, Type: models.TransactionTypeRecharge, Amount: 1000,
		Status: models.TransactionStatusCompleted, Description: "Recharge via UTR: X1", ReferenceID: "X1",
	}).Error)

	w := downloadReport(t, router, "/admin/reports/transactions/excel?period=day", adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=transactions-day.xlsx", w.Header().Get("Content-Disposition"))
	assert.NotZero(t, w.Body.Len())

	w = downloadReport(t, router, "/admin/reports/transactions/pdf?period=week", adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=transactions-week.pdf", w.Header().Get("Content-Disposition"))
	assert.True(t, w.Body.Len() > 0)

	w = downloadReport(t, router, "/admin/reports/transactions/excel?period=year", adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
