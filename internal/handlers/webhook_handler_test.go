package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finvent/paystream/internal/handlers"
	"github.com/finvent/paystream/internal/handlers/mocks"
	"github.com/finvent/paystream/internal/models"
	"github.com/finvent/paystream/internal/pipeline"
)

func webhookRouter(ledgerMock *mocks.MockWebhookLedger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/webhooks/:provider", handlers.NewWebhookHandler(ledgerMock).Receive)
	return router
}

func TestReceive_AcceptsKnownProvider(t *testing.T) {
	ledgerMock := mocks.NewMockWebhookLedger(t)
	router := webhookRouter(ledgerMock)

	body := `{"id":"evt_1","type":"payment_intent.succeeded","data":{"amount":1250}}`
	ledgerMock.EXPECT().HandleWebhook(mock.Anything, models.ProviderStripe, "evt_1", "payment_intent.succeeded", []byte(body)).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"received":true`)
	assert.Contains(t, w.Body.String(), "evt_1")
}

func TestReceive_UnknownProviderIs404(t *testing.T) {
	router := webhookRouter(mocks.NewMockWebhookLedger(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/venmo", strings.NewReader(`{"id":"evt_1"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReceive_MissingEventIDIs400(t *testing.T) {
	router := webhookRouter(mocks.NewMockWebhookLedger(t))

	for _, body := range []string{`{"type":"charge.refunded"}`, `not json at all`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestReceive_PermanentLedgerErrorIs400(t *testing.T) {
	ledgerMock := mocks.NewMockWebhookLedger(t)
	router := webhookRouter(ledgerMock)

	ledgerMock.EXPECT().HandleWebhook(mock.Anything, models.ProviderPaypal, "evt_2", mock.Anything, mock.Anything).
		Return(pipeline.Permanent(errors.New("malformed payload")))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/paypal", strings.NewReader(`{"id":"evt_2"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReceive_TransientLedgerErrorIs500(t *testing.T) {
	ledgerMock := mocks.NewMockWebhookLedger(t)
	router := webhookRouter(ledgerMock)

	ledgerMock.EXPECT().HandleWebhook(mock.Anything, models.ProviderStripe, "evt_3", mock.Anything, mock.Anything).
		Return(errors.New("db unavailable"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(`{"id":"evt_3"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
