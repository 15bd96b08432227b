package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"med-estudia/internal/domain"
	"med-estudia/internal/dto"
	"med-estudia/internal/middleware"
	"med-estudia/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RegisterLearner(ctx context.Context) (*dto.LearnerTokenResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LearnerTokenResponse), args.Error(1)
}

func (m *MockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthClaims), args.Error(1)
}

var _ service.AuthService = (*MockAuthService)(nil)

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.CORS())
	return app
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	assert.NotContains(t, out, "data")
	msg, _ := out["error"].(string)
	return msg
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"rate limited", domain.NewRateLimitedError(nil), http.StatusTooManyRequests, domain.MsgRateLimited},
		{"payment required", domain.NewPaymentRequiredError(nil), http.StatusPaymentRequired, domain.MsgPaymentRequired},
		{"upstream", domain.NewUpstreamError(503, "<html>down</html>", nil), http.StatusInternalServerError, "AI Gateway error: 503"},
		{"invalid type", domain.NewInvalidRequestTypeError("summary"), http.StatusInternalServerError, domain.MsgInvalidRequestType},
		{"configuration", domain.NewConfigurationError(domain.MsgMissingCredential), http.StatusInternalServerError, domain.MsgMissingCredential},
		{"shape", domain.NewShapeValidationError(errors.New("missing field")), http.StatusInternalServerError, domain.MsgUnusableResponse},
		{"invalid input", domain.NewInvalidInputError("topic is required"), http.StatusBadRequest, "topic is required"},
		{"unauthorized", domain.NewUnauthorizedError("Token is empty", nil), http.StatusUnauthorized, "Token is empty"},
		{"not found", domain.NewNotFoundError("nope"), http.StatusNotFound, "nope"},
		{"plain error", errors.New("secret internals"), http.StatusInternalServerError, domain.MsgUnexpected},
		{"fiber error", fiber.NewError(fiber.StatusMethodNotAllowed, "Method Not Allowed"), http.StatusMethodNotAllowed, "Method Not Allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Get("/boom", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantMsg, decodeError(t, resp))
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	app := newApp()
	app.Post("/api/medical-ai", func(c *fiber.Ctx) error { return c.SendString("should not run") })

	resp, err := app.Test(httptest.NewRequest(http.MethodOptions, "/api/medical-ai", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "authorization, x-client-info, apikey, content-type", resp.Header.Get("Access-Control-Allow-Headers"))
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)
}

func TestRequireLearner(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		setupMock  func(m *MockAuthService)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid token",
			authHeader: "Bearer good",
			setupMock: func(m *MockAuthService) {
				m.On("ValidateJWT", mock.Anything, "good").Return(&dto.AuthClaims{LearnerID: "learner-1", TokenType: "learner"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "learner-1",
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			authHeader: "Bearer ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad",
			setupMock: func(m *MockAuthService) {
				m.On("ValidateJWT", mock.Anything, "bad").Return(nil, service.ErrInvalidJWTToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := new(MockAuthService)
			if tt.setupMock != nil {
				tt.setupMock(authSvc)
			}

			app := newApp()
			app.Get("/me", middleware.RequireLearner(authSvc), func(c *fiber.Ctx) error {
				return c.SendString(middleware.LearnerID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tt.wantBody, string(body))
			} else {
				assert.NotEmpty(t, decodeError(t, resp))
			}
			authSvc.AssertExpectations(t)
		})
	}
}

func TestValidateQuestionID(t *testing.T) {
	app := newApp()
	vm := middleware.NewValidationMiddleware()
	app.Delete("/q/:id", vm.ValidateQuestionID(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/q/01HZX3K4M5N6P7Q8R9S0T1V2W3", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/q/not-an-id", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, middleware.StatusFor(domain.NewInternalError("x", nil)))
	assert.Equal(t, http.StatusTooManyRequests, middleware.StatusFor(domain.NewRateLimitedError(nil)))
}
