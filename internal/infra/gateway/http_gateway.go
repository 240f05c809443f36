// Package gateway contains the HTTP+JSON client for the upstream
// registration backend.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"reunion/config"
	"reunion/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// httpGateway implements service.RegistrationGateway by calling the backend
// endpoints one request at a time.
type httpGateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPGateway creates the registration backend client from config.
func NewHTTPGateway(cfg *config.Config, logger *slog.Logger) service.RegistrationGateway {
	timeout := defaultTimeout
	baseURL := ""
	apiKey := ""
	if cfg.Backend != nil {
		if cfg.Backend.Timeout > 0 {
			timeout = cfg.Backend.Timeout
		}
		baseURL = strings.TrimRight(cfg.Backend.BaseURL, "/")
		apiKey = cfg.Backend.APIKey
	}

	return &httpGateway{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type backendError struct {
	Error string `json:"error"`
}

// CheckDuplicate reports whether an attendee with the email or phone already
// exists. A backend failure degrades to "not exists": the check only guards
// the form step UX.
func (g *httpGateway) CheckDuplicate(ctx context.Context, email, phone string) (bool, error) {
	payload := map[string]string{
		"email": email,
		"phone": phone,
	}

	var out struct {
		Exists bool `json:"exists"`
	}
	if err := g.postJSON(ctx, "/attendees/check-duplicate", payload, &out); err != nil {
		g.logger.Warn("duplicate check degraded to not-exists",
			slog.String("error", err.Error()),
		)

		return false, nil
	}

	return out.Exists, nil
}

// CreateAttendee persists the registration form and returns the new attendee ID.
func (g *httpGateway) CreateAttendee(ctx context.Context, record service.AttendeeRecord) (int64, error) {
	var out struct {
		ID int64 `json:"id"`
	}
	if err := g.postJSON(ctx, "/attendees", record, &out); err != nil {
		return 0, errors.Wrap(err, "create attendee")
	}

	return out.ID, nil
}

// CreateDonation persists a donation amount for an attendee.
func (g *httpGateway) CreateDonation(ctx context.Context, attendeeID, amount int64) (int64, error) {
	payload := map[string]int64{
		"attendeeId": attendeeID,
		"amount":     amount,
	}

	var out struct {
		ID int64 `json:"id"`
	}
	if err := g.postJSON(ctx, "/donations", payload, &out); err != nil {
		return 0, errors.Wrap(err, "create donation")
	}

	return out.ID, nil
}

// CreateOrder persists the merchandise order and returns the order ID.
func (g *httpGateway) CreateOrder(ctx context.Context, record service.OrderRecord) (int64, error) {
	var out struct {
		OrderID int64 `json:"orderId"`
	}
	if err := g.postJSON(ctx, "/orders", record, &out); err != nil {
		return 0, errors.Wrap(err, "create order")
	}

	return out.OrderID, nil
}

// UploadPaymentProof uploads the proof image together with the identifiers of
// the records it settles.
func (g *httpGateway) UploadPaymentProof(ctx context.Context, upload service.PaymentProofUpload) (string, error) {
	fields := map[string]string{
		"attendeeId": strconv.FormatInt(upload.AttendeeID, 10),
		"amount":     strconv.FormatInt(upload.Amount, 10),
	}
	if upload.OrderID != nil {
		fields["orderId"] = strconv.FormatInt(*upload.OrderID, 10)
	}
	if upload.DonationID != nil {
		fields["donationId"] = strconv.FormatInt(*upload.DonationID, 10)
	}

	var out struct {
		URL string `json:"url"`
	}
	err := g.postMultipart(ctx, "/payment-proofs", multipartFile{
		fieldName:   "file",
		fileName:    upload.FileName,
		contentType: upload.ContentType,
		data:        upload.Data,
	}, fields, &out)
	if err != nil {
		return "", errors.Wrap(err, "upload payment proof")
	}

	return out.URL, nil
}

// UploadTicketQR uploads the rendered QR PNG for an email.
func (g *httpGateway) UploadTicketQR(ctx context.Context, png []byte, email string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	err := g.postMultipart(ctx, "/ticket-qr", multipartFile{
		fieldName:   "file",
		fileName:    "ticket-qr.png",
		contentType: "image/png",
		data:        png,
	}, map[string]string{"email": email}, &out)
	if err != nil {
		return "", errors.Wrap(err, "upload ticket QR")
	}

	return out.URL, nil
}

func (g *httpGateway) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	return g.do(req, out)
}

type multipartFile struct {
	fieldName   string
	fileName    string
	contentType string
	data        []byte
}

func (g *httpGateway) postMultipart(ctx context.Context, path string, f multipartFile, fields map[string]string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(f.fieldName, f.fileName)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := part.Write(f.data); err != nil {
		return errors.WithStack(err)
	}

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return errors.WithStack(err)
		}
	}
	if err := writer.Close(); err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, &buf)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return g.do(req, out)
}

func (g *httpGateway) do(req *http.Request, out any) error {
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var backendErr backendError
		if err := json.Unmarshal(body, &backendErr); err == nil && backendErr.Error != "" {
			return errors.Errorf("backend returned %d: %s", resp.StatusCode, backendErr.Error)
		}

		return errors.Errorf("backend returned %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "decode backend response")
	}

	return nil
}
