package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reunion/internal/delivery/http/middleware"
	"reunion/internal/delivery/http/validator"
	"reunion/internal/domain/entity"
	"reunion/internal/domain/repository"
	mockRepo "reunion/internal/mocks/repository"
	"reunion/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSessionHandler(t *testing.T) (*SessionHandler, *mockRepo.MockSessionRepository) {
	sessions := mockRepo.NewMockSessionRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &SessionHandler{
		sessionUC: impl.NewSessionService(sessions, logger),
		logger:    logger,
	}, sessions
}

func newTestContext(method, target, body string, sessionKey string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if sessionKey != "" {
		req.Header.Set(middleware.SessionKeyHeader, sessionKey)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSessionHandler_GetSession_ColdStartIssuesKey(t *testing.T) {
	h, sessions := newTestSessionHandler(t)

	sessions.EXPECT().
		Load(mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(nil, repository.ErrSessionNotFound)

	c, rec := newTestContext(http.MethodGet, "/session", "", "")

	m := middleware.NewSessionMiddleware()
	err := m.Resolve(h.GetSession)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"step":1`)

	issued := rec.Header().Get(middleware.SessionKeyHeader)
	_, parseErr := uuid.Parse(issued)
	assert.NoError(t, parseErr)
}

func TestSessionHandler_GetSession_RejectsMalformedKey(t *testing.T) {
	h, _ := newTestSessionHandler(t)

	c, rec := newTestContext(http.MethodGet, "/session", "", "not-a-uuid")

	m := middleware.NewSessionMiddleware()
	err := m.Resolve(h.GetSession)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid session key format")
}

func TestSessionHandler_SetStep_ValidationError(t *testing.T) {
	h, _ := newTestSessionHandler(t)

	key := uuid.New()
	c, rec := newTestContext(http.MethodPut, "/session/step", `{"step":9}`, key.String())

	m := middleware.NewSessionMiddleware()
	err := m.Resolve(h.SetStep)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestSessionHandler_AddCartItem_Created(t *testing.T) {
	h, sessions := newTestSessionHandler(t)

	key := uuid.New()

	sessions.EXPECT().
		Load(mock.Anything, key).
		Return(entity.NewCheckoutSession(key), nil)

	sessions.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.CheckoutSession")).
		Return(nil)

	body := `{"merchandiseId":1,"kind":"tshirt","name":"Reunion Tee","quantity":2,"unitPrice":150000,"gender":"male","size":"L"}`
	c, rec := newTestContext(http.MethodPost, "/session/cart/items", body, key.String())

	m := middleware.NewSessionMiddleware()
	err := m.Resolve(h.AddCartItem)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quantity":2`)
}

func TestSessionHandler_AddCartItem_NameTagRejected(t *testing.T) {
	h, sessions := newTestSessionHandler(t)

	key := uuid.New()

	c, rec := newTestContext(http.MethodPost, "/session/cart/items", `{"merchandiseId":2,"kind":"nametag","name":"Name Tag","quantity":1}`, key.String())

	m := middleware.NewSessionMiddleware()
	err := m.Resolve(h.AddCartItem)(c)
	require.NoError(t, err)

	// "nametag" fails the input's oneof constraint before the usecase runs.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
