package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reunion/config"
	"reunion/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.Handler) service.RegistrationGateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Backend: &config.BackendConfig{
			BaseURL: server.URL,
			Timeout: 2 * time.Second,
		},
	}

	return NewHTTPGateway(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateAttendee_ReturnsID(t *testing.T) {
	gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/attendees", r.URL.Path)

		var record service.AttendeeRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&record))
		assert.Equal(t, "Lan Pham", record.FullName)
		assert.Equal(t, "https://cdn.example.com/qr.png", record.TicketQRURL)

		json.NewEncoder(w).Encode(map[string]int64{"id": 42})
	}))

	id, err := gw.CreateAttendee(context.Background(), service.AttendeeRecord{
		FullName:    "Lan Pham",
		Email:       "lan@example.com",
		TicketQRURL: "https://cdn.example.com/qr.png",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestCreateAttendee_BackendErrorSurfacesMessage(t *testing.T) {
	gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "attendees table unavailable"})
	}))

	_, err := gw.CreateAttendee(context.Background(), service.AttendeeRecord{Email: "lan@example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "attendees table unavailable")
	assert.Contains(t, err.Error(), "500")
}

func TestCreateOrder_SendsItemsWithoutPrices(t *testing.T) {
	var captured map[string]any

	gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]int64{"orderId": 7})
	}))

	orderID, err := gw.CreateOrder(context.Background(), service.OrderRecord{
		AttendeeID: 42,
		Items: []service.OrderItem{
			{MerchandiseID: 1, Quantity: 2},
		},
		Amount: 500000,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), orderID)

	items, ok := captured["items"].([]any)
	require.True(t, ok)
	first, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, first, "unitPrice", "order items must not re-send prices")
}

func TestCheckDuplicate_BackendFailureTreatedAsNotExists(t *testing.T) {
	gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	exists, err := gw.CheckDuplicate(context.Background(), "lan@example.com", "")

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCheckDuplicate_ReportsExisting(t *testing.T) {
	gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]bool{"exists": true})
	}))

	exists, err := gw.CheckDuplicate(context.Background(), "lan@example.com", "0900000000")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUploadTicketQR_SendsMultipartPNG(t *testing.T) {
	gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ticket-qr", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "lan@example.com", r.FormValue("email"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "ticket-qr.png", header.Filename)

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, data)

		json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.com/qr.png"})
	}))

	url, err := gw.UploadTicketQR(context.Background(), []byte{1, 2, 3}, "lan@example.com")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/qr.png", url)
}

func TestUploadPaymentProof_SendsOptionalIDs(t *testing.T) {
	orderID := int64(7)

	gw := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "42", r.FormValue("attendeeId"))
		assert.Equal(t, "7", r.FormValue("orderId"))
		assert.Empty(t, r.FormValue("donationId"))
		assert.Equal(t, "800000", r.FormValue("amount"))

		json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.com/proof.jpg"})
	}))

	url, err := gw.UploadPaymentProof(context.Background(), service.PaymentProofUpload{
		Data:        []byte{9},
		FileName:    "proof.jpg",
		ContentType: "image/jpeg",
		AttendeeID:  42,
		OrderID:     &orderID,
		Amount:      800000,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/proof.jpg", url)
}
