package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/core/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/handlers"
	"github.com/SscSPs/finance_dashboard/internal/i18n"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/SscSPs/finance_dashboard/internal/platform/config"
	"github.com/SscSPs/finance_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"google.golang.org/api/idtoken"
)

const testJWTSecret = "handler-test-secret-key-that-is-long-enough"

type HandlersTestSuite struct {
	suite.Suite
	router       *gin.Engine
	cfg          *config.Config
	catalog      *i18n.Catalog
	mockUsers    *MockUserService
	mockTxns     *MockTransactionService
	mockDash     *MockDashboardService
	mockGoogle   *MockGoogleOAuthService
	farmerUser   *domain.User
	farmerBearer string
}

func (suite *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(utils.RegisterGinValidators())
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
		AuthCookieName:    "auth_token",
		IsProduction:      true, // no swagger routes
	}
	suite.catalog = i18n.NewCatalog()
	suite.mockUsers = new(MockUserService)
	suite.mockTxns = new(MockTransactionService)
	suite.mockDash = new(MockDashboardService)
	suite.mockGoogle = new(MockGoogleOAuthService)

	container := &portssvc.ServiceContainer{
		User:               suite.mockUsers,
		Transaction:        suite.mockTxns,
		Dashboard:          suite.mockDash,
		TokenService:       services.NewTokenService(suite.cfg),
		GoogleOAuthHandler: suite.mockGoogle,
	}
	loginLimiter, err := middleware.NewIPRateLimiter("100-M")
	suite.Require().NoError(err)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, container, suite.catalog, loginLimiter, nil)

	suite.farmerUser = &domain.User{
		UserID:       "user-1",
		Name:         "Ravi",
		Email:        "ravi@example.com",
		AccountType:  domain.AccountFarmer,
		AuthProvider: domain.ProviderLocal,
		IsActive:     true,
		CreatedAt:    time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	token, _, err := utils.GenerateJWT(suite.farmerUser.UserID, domain.AccountFarmer, testJWTSecret, time.Hour, "test")
	suite.Require().NoError(err)
	suite.farmerBearer = "Bearer " + token
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.mockUsers.AssertExpectations(suite.T())
	suite.mockTxns.AssertExpectations(suite.T())
	suite.mockDash.AssertExpectations(suite.T())
	suite.mockGoogle.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) do(method, path string, body any, bearer string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (suite *HandlersTestSuite) cookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// --- Health ---

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

// --- Auth ---

func (suite *HandlersTestSuite) TestRegister_Success() {
	req := dto.RegisterRequest{Name: "Ravi", Email: "ravi@example.com", Password: "Harvest2026", AccountType: "farmer"}
	suite.mockUsers.On("RegisterUser", mock.Anything, req).Return(suite.farmerUser, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/register", req, "")

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.UserResponse
	suite.decode(w, &resp)
	suite.Equal("user-1", resp.UserID)
	suite.Equal("farmer", resp.AccountType)
}

func (suite *HandlersTestSuite) TestRegister_ValidationFailsBeforeService() {
	req := dto.RegisterRequest{Name: "Ravi", Email: "not-an-email", Password: "weak", AccountType: "landlord"}

	w := suite.do(http.MethodPost, "/api/v1/auth/register", req, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp apperrors.AppError
	suite.decode(w, &resp)
	suite.Contains(resp.Message, "invalid email format")
	suite.Contains(resp.Message, "account type must be farmer, individual or company")
	suite.mockUsers.AssertNotCalled(suite.T(), "RegisterUser", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestRegister_DuplicateEmail() {
	req := dto.RegisterRequest{Name: "Ravi", Email: "ravi@example.com", Password: "Harvest2026", AccountType: "farmer"}
	suite.mockUsers.On("RegisterUser", mock.Anything, req).
		Return(nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/register", req, "")

	suite.Equal(http.StatusConflict, w.Code)
	var resp apperrors.AppError
	suite.decode(w, &resp)
	suite.Equal("email already registered", resp.Message)
}

func (suite *HandlersTestSuite) TestLogin_SetsCookieAndReturnsToken() {
	suite.mockUsers.On("AuthenticateUser", mock.Anything, "ravi@example.com", "Harvest2026", domain.AccountFarmer).
		Return(suite.farmerUser, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Email: "ravi@example.com", Password: "Harvest2026", AccountType: "farmer"}, "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.decode(w, &resp)
	suite.NotEmpty(resp.Token)
	suite.Equal("user-1", resp.User.UserID)

	claims, err := utils.ParseAndValidateJWT(resp.Token, testJWTSecret)
	suite.Require().NoError(err)
	suite.Equal(domain.AccountFarmer, claims.AccountType)

	c := suite.cookie(w, "auth_token")
	suite.Require().NotNil(c)
	suite.Equal(resp.Token, c.Value)
	suite.True(c.HttpOnly)
}

func (suite *HandlersTestSuite) TestLogin_InvalidCredentialsAreTranslated() {
	suite.mockUsers.On("AuthenticateUser", mock.Anything, "ravi@example.com", "wrong", domain.AccountCompany).
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login?lang=te",
		dto.LoginRequest{Email: "ravi@example.com", Password: "wrong", AccountType: "company"}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	var resp apperrors.AppError
	suite.decode(w, &resp)
	suite.Equal(suite.catalog.Text(i18n.Telugu, "invalid_credentials"), resp.Message)
	suite.Nil(suite.cookie(w, "auth_token"))
}

func (suite *HandlersTestSuite) TestLogout_ClearsCookie() {
	w := suite.do(http.MethodPost, "/api/v1/auth/logout", nil, "")

	suite.Equal(http.StatusNoContent, w.Code)
	c := suite.cookie(w, "auth_token")
	suite.Require().NotNil(c)
	suite.Empty(c.Value)
	suite.Negative(c.MaxAge)
}

func (suite *HandlersTestSuite) TestMe() {
	suite.mockUsers.On("GetUserByID", mock.Anything, "user-1").Return(suite.farmerUser, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/me", nil, suite.farmerBearer)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.decode(w, &resp)
	suite.Equal("ravi@example.com", resp.Email)
}

func (suite *HandlersTestSuite) TestGoogleExchange_WithIDToken() {
	payload := &idtoken.Payload{
		Subject: "google-123",
		Claims: map[string]interface{}{
			"email":          "ravi@example.com",
			"name":           "Ravi",
			"email_verified": true,
		},
	}
	suite.mockGoogle.On("ValidateGoogleIDToken", mock.Anything, "id-token").Return(payload, nil).Once()
	suite.mockUsers.On("CreateOAuthUser", mock.Anything, "Ravi", "ravi@example.com", domain.AccountFarmer,
		domain.ProviderGoogle, "google-123", true).Return(suite.farmerUser, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/google/exchange-code",
		dto.ExchangeCodeRequest{IDToken: "id-token", AccountType: "farmer"}, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.NotNil(suite.cookie(w, "auth_token"))
	suite.mockGoogle.AssertNotCalled(suite.T(), "ExchangeCodeForToken", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestGoogleExchange_InvalidCode() {
	suite.mockGoogle.On("ExchangeCodeForToken", mock.Anything, "bad-code").
		Return(nil, fmt.Errorf("oauth2: \"invalid_grant\" \"Bad Request\"")).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/google/exchange-code",
		dto.ExchangeCodeRequest{Code: "bad-code", AccountType: "farmer"}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestGoogleExchange_AccountTypeMismatch() {
	payload := &idtoken.Payload{
		Subject: "google-123",
		Claims:  map[string]interface{}{"email": "ravi@example.com", "email_verified": true},
	}
	suite.mockGoogle.On("ValidateGoogleIDToken", mock.Anything, "id-token").Return(payload, nil).Once()
	suite.mockUsers.On("CreateOAuthUser", mock.Anything, "", "ravi@example.com", domain.AccountCompany,
		domain.ProviderGoogle, "google-123", true).
		Return(nil, fmt.Errorf("%w: user is registered as farmer", apperrors.ErrUnauthorized)).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/google/exchange-code",
		dto.ExchangeCodeRequest{IDToken: "id-token", AccountType: "company"}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Dashboard ---

func (suite *HandlersTestSuite) TestDashboard_RequiresToken() {
	w := suite.do(http.MethodGet, "/api/v1/dashboard", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestDashboard_TranslatesNotices() {
	metrics := domain.AgriculturalMetrics{Crops: []domain.CropGrowth{}}
	dashboard := &domain.Dashboard{
		AccountType:  domain.AccountFarmer,
		Transactions: []domain.Transaction{},
		Agricultural: &metrics,
		Notices:      []string{domain.DataUnavailableNotice("agricultural")},
	}
	suite.mockDash.On("Dashboard", mock.Anything, mock.MatchedBy(func(v domain.ViewerContext) bool {
		return v.UserID == "user-1" && v.AccountType == domain.AccountFarmer && v.Language == i18n.Telugu && !v.Now.IsZero()
	})).Return(dashboard, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/dashboard?lang=te", nil, suite.farmerBearer)

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal(i18n.Telugu, w.Header().Get("Content-Language"))
	var resp dto.DashboardResponse
	suite.decode(w, &resp)
	suite.Equal("farmer", resp.AccountType)
	suite.Equal("te", resp.Language)
	suite.NotNil(resp.AgriculturalMetrics)
	suite.Nil(resp.CompanyMetrics)
	suite.Equal([]string{suite.catalog.Text(i18n.Telugu, "error_loading_agricultural_data")}, resp.Notices)
	suite.NotNil(resp.Recommendations)
}

func (suite *HandlersTestSuite) TestDashboard_ServiceError() {
	suite.mockDash.On("Dashboard", mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded).Once()

	w := suite.do(http.MethodGet, "/api/v1/dashboard", nil, suite.farmerBearer)

	suite.Equal(http.StatusGatewayTimeout, w.Code)
}

// --- Transactions ---

func (suite *HandlersTestSuite) TestCreateTransaction() {
	req := dto.CreateTransactionRequest{Amount: "1250.50", Category: "Seeds", Type: "expense"}
	txn := &domain.Transaction{
		TransactionID: "txn-1",
		UserID:        "user-1",
		Amount:        decimal.RequireFromString("1250.50"),
		Category:      "Seeds",
		Kind:          domain.Expense,
		Date:          time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	suite.mockTxns.On("AddTransaction", mock.Anything, "user-1", req).Return(txn, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", req, suite.farmerBearer)

	suite.Require().Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.decode(w, &resp)
	suite.Equal("txn-1", resp.TransactionID)
	suite.Equal("expense", resp.Type)
	suite.True(resp.Amount.Equal(decimal.RequireFromString("1250.5")))
}

func (suite *HandlersTestSuite) TestCreateTransaction_RejectsUnknownType() {
	w := suite.do(http.MethodPost, "/api/v1/transactions",
		dto.CreateTransactionRequest{Amount: "10", Category: "Gift", Type: "transfer"}, suite.farmerBearer)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTxns.AssertNotCalled(suite.T(), "AddTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateTransaction_InvalidAmountFromService() {
	req := dto.CreateTransactionRequest{Amount: "abc", Category: "Seeds", Type: "expense"}
	suite.mockTxns.On("AddTransaction", mock.Anything, "user-1", req).
		Return(nil, fmt.Errorf("%w: invalid amount, please enter a valid number", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", req, suite.farmerBearer)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp apperrors.AppError
	suite.decode(w, &resp)
	suite.Equal("invalid amount, please enter a valid number", resp.Message)
}

func (suite *HandlersTestSuite) TestListTransactions() {
	next := "next-page"
	txns := []domain.Transaction{
		{TransactionID: "txn-2", Amount: decimal.NewFromInt(5), Category: "Seeds", Kind: domain.Expense},
		{TransactionID: "txn-1", Amount: decimal.NewFromInt(9), Category: "Crop sale", Kind: domain.Income},
	}
	suite.mockTxns.On("ListTransactions", mock.Anything, "user-1", dto.ListTransactionsParams{Limit: 2}).
		Return(txns, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?limit=2", nil, suite.farmerBearer)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Transactions, 2)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next-page", *resp.NextToken)
}

func (suite *HandlersTestSuite) TestListTransactions_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/api/v1/transactions?limit=500", nil, suite.farmerBearer)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Language ---

func (suite *HandlersTestSuite) TestSetLanguage() {
	w := suite.do(http.MethodPut, "/api/v1/language/te", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	c := suite.cookie(w, i18n.CookieName)
	suite.Require().NotNil(c)
	suite.Equal("te", c.Value)

	w = suite.do(http.MethodPut, "/api/v1/language/fr", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestTranslations() {
	w := suite.do(http.MethodGet, "/api/v1/translations?lang=te", nil, "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.TranslationsResponse
	suite.decode(w, &resp)
	suite.Equal("te", resp.Language)
	suite.Equal([]string{"en", "te"}, resp.Available)
	suite.Equal(suite.catalog.Text(i18n.Telugu, "invalid_credentials"), resp.Strings["invalid_credentials"])
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
