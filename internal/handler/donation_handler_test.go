package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"giveone/internal/models"
	"giveone/internal/repository"
	"giveone/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockDonator struct{ mock.Mock }

func (m *mockDonator) Donate(userID, caseID uint, amountCents int64, txnType string, now time.Time) (*models.Donation, *models.Case, error) {
	args := m.Called(userID, caseID, amountCents, txnType)
	var d *models.Donation
	if v := args.Get(0); v != nil {
		d = v.(*models.Donation)
	}
	var c *models.Case
	if v := args.Get(1); v != nil {
		c = v.(*models.Case)
	}
	return d, c, args.Error(2)
}

func setupDonationRouter(svc *mockDonator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", uint(1)) })
	h := NewDonationHandler(svc, nil)
	r.POST("/donations", h.Create)
	return r
}

func postDonation(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/donations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestDonationCreate(t *testing.T) {
	t.Run("success returns 201 with donation and case", func(t *testing.T) {
		svc := new(mockDonator)
		svc.On("Donate", uint(1), uint(7), int64(300), "DONATION").Return(
			&models.Donation{UserID: 1, CaseID: 7, AmountCents: 300, RunningBalanceCents: 700},
			&models.Case{ID: 7, GoalCents: 500, RaisedCents: 500, Status: "Funded"},
			nil,
		)
		rec := postDonation(setupDonationRouter(svc), `{"case_id":7,"amount_cents":300}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"running_balance_cents":700`)
		assert.Contains(t, rec.Body.String(), `"Funded"`)
		svc.AssertExpectations(t)
	})

	t.Run("bad json returns 400", func(t *testing.T) {
		svc := new(mockDonator)
		rec := postDonation(setupDonationRouter(svc), `{"case_id":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Donate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid amount returns 400", func(t *testing.T) {
		svc := new(mockDonator)
		svc.On("Donate", uint(1), uint(7), int64(-50), "DONATION").Return(nil, nil, service.ErrInvalidAmount)
		rec := postDonation(setupDonationRouter(svc), `{"case_id":7,"amount_cents":-50}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown case returns 404", func(t *testing.T) {
		svc := new(mockDonator)
		svc.On("Donate", uint(1), uint(99), int64(100), "DONATION").Return(nil, nil, service.ErrCaseNotFound)
		rec := postDonation(setupDonationRouter(svc), `{"case_id":99,"amount_cents":100}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("funded case returns 409", func(t *testing.T) {
		svc := new(mockDonator)
		svc.On("Donate", uint(1), uint(5), int64(100), "DONATION").Return(nil, nil, service.ErrCaseFunded)
		rec := postDonation(setupDonationRouter(svc), `{"case_id":5,"amount_cents":100}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("insufficient balance returns 402", func(t *testing.T) {
		svc := new(mockDonator)
		svc.On("Donate", uint(1), uint(7), int64(99999), "DONATION").Return(nil, nil, repository.ErrInsufficientBalance)
		rec := postDonation(setupDonationRouter(svc), `{"case_id":7,"amount_cents":99999}`)
		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	})
}
