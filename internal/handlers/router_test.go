package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/dto"
	"github.com/SscSPs/visa_office_app/internal/handlers"
	"github.com/SscSPs/visa_office_app/internal/middleware"
	"github.com/SscSPs/visa_office_app/internal/platform/config"
	"github.com/SscSPs/visa_office_app/internal/utils"
	"github.com/SscSPs/visa_office_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

const (
	testClientID       = "0b6e4c1a-3f2d-4c8e-9a51-7d2f1e6b8c01"
	unknownClientID    = "0b6e4c1a-3f2d-4c8e-9a51-7d2f1e6b8cff"
	testFamilyMemberID = "5a1d2e3f-4b5c-4d6e-8f70-81a2b3c4d5e6"
	testDossierID      = "9c7b6a5d-4e3f-4a2b-9c1d-0e9f8a7b6c5d"
	testInstallmentID  = "3e4f5a6b-7c8d-4e9f-a0b1-c2d3e4f5a6b7"
	otherInstallmentID = "3e4f5a6b-7c8d-4e9f-a0b1-c2d3e4f5a6b8"
	testCaisseID       = "7f8e9d0c-1b2a-4394-8576-a5b4c3d2e1f0"
	testAttachmentID   = "2d3c4b5a-6978-4a6b-9c8d-7e6f5a4b3c2d"
)

type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine

	auth        *MockAuthService
	client      *MockClientService
	phoneCall   *MockPhoneCallService
	dossier     *MockDossierService
	serviceItem *MockServiceItemService
	payment     *MockPaymentService
	financial   *MockFinancialService
	attachment  *MockAttachmentService

	adminToken string
	userToken  string
}

func (suite *RouterTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, userID+"@office.test", string(role), testJWTSecret, time.Hour, "visa-office-test")
	suite.Require().NoError(err)
	return token
}

func (suite *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.auth = new(MockAuthService)
	suite.client = new(MockClientService)
	suite.phoneCall = new(MockPhoneCallService)
	suite.dossier = new(MockDossierService)
	suite.serviceItem = new(MockServiceItemService)
	suite.payment = new(MockPaymentService)
	suite.financial = new(MockFinancialService)
	suite.attachment = new(MockAttachmentService)

	lim, err := middleware.NewLimiter("2-M", "")
	suite.Require().NoError(err)

	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true, UploadMaxBytes: 1024}
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Auth:        suite.auth,
		Client:      suite.client,
		PhoneCall:   suite.phoneCall,
		Dossier:     suite.dossier,
		ServiceItem: suite.serviceItem,
		Payment:     suite.payment,
		Financial:   suite.financial,
		Attachment:  suite.attachment,
	}, lim)

	suite.adminToken = suite.generateTestToken("admin-1", domain.RoleAdmin)
	suite.userToken = suite.generateTestToken("user-1", domain.RoleUser)
}

func (suite *RouterTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) errorOf(w *httptest.ResponseRecorder) string {
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func (suite *RouterTestSuite) TestHealth_IsPublic() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RouterTestSuite) TestProtectedRoute_RequiresToken() {
	w := suite.do(http.MethodGet, "/api/v1/clients", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.client.AssertNotCalled(suite.T(), "ListClients", mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestLogin_Success() {
	user := &domain.User{UserID: "admin-1", Email: "admin@office.test", Role: domain.RoleAdmin}
	suite.auth.On("Login", mock.Anything, "admin@office.test", "s3cret").Return("signed-token", user, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "admin@office.test", Password: "s3cret"})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.AccessToken)
	suite.Equal("admin-1", resp.User.ID)
	suite.Equal(domain.RoleAdmin, resp.User.Role)
}

func (suite *RouterTestSuite) TestLogin_InvalidCredentials() {
	suite.auth.On("Login", mock.Anything, "admin@office.test", "wrong").Return("", nil, apperrors.ErrUnauthorized).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "admin@office.test", Password: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *RouterTestSuite) TestLogin_ValidatesBody() {
	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "not-an-email", Password: "x"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorOf(w), "email")
	suite.auth.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestLogin_RateLimited() {
	suite.auth.On("Login", mock.Anything, mock.Anything, mock.Anything).Return("", nil, apperrors.ErrUnauthorized)
	body := dto.LoginRequest{Email: "admin@office.test", Password: "wrong"}

	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodPost, "/api/v1/auth/login", "", body).Code)
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodPost, "/api/v1/auth/login", "", body).Code)
	suite.Equal(http.StatusTooManyRequests, suite.do(http.MethodPost, "/api/v1/auth/login", "", body).Code)
	suite.auth.AssertNumberOfCalls(suite.T(), "Login", 2)
}

func (suite *RouterTestSuite) TestProfile() {
	suite.auth.On("GetProfile", mock.Anything, "user-1").Return(&domain.User{UserID: "user-1", Email: "user-1@office.test", Role: domain.RoleUser}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/auth/profile", suite.userToken, nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("user-1", resp.UserID)
}

func (suite *RouterTestSuite) TestCreateClient_AdminOnly() {
	req := dto.CreateClientRequest{FullName: "Amina B.", ClientType: domain.ClientIndividual, PassportNumber: "P1"}

	w := suite.do(http.MethodPost, "/api/v1/clients", suite.userToken, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.client.AssertNotCalled(suite.T(), "CreateClient", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestCreateClient_Created() {
	req := dto.CreateClientRequest{FullName: "Amina B.", ClientType: domain.ClientIndividual, PassportNumber: "P1"}
	suite.client.On("CreateClient", mock.Anything, mock.MatchedBy(func(r dto.CreateClientRequest) bool {
		return r.FullName == "Amina B." && r.ClientType == domain.ClientIndividual
	}), "admin-1").Return(&domain.Client{ClientID: testClientID, FullName: "Amina B.", ClientType: domain.ClientIndividual}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/clients", suite.adminToken, req)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.ClientResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(testClientID, resp.ClientID)
}

func (suite *RouterTestSuite) TestCreateClient_ValidationError() {
	w := suite.do(http.MethodPost, "/api/v1/clients", suite.adminToken, map[string]any{"clientType": "ALIEN"})

	suite.Equal(http.StatusBadRequest, w.Code)
	msg := suite.errorOf(w)
	suite.Contains(msg, "FullName is required")
	suite.Contains(msg, "ClientType")
}

func (suite *RouterTestSuite) TestCreateClient_DomainValidationMapsTo400() {
	suite.client.On("CreateClient", mock.Anything, mock.Anything, "admin-1").
		Return(nil, apperrors.Validationf("familyMembers are required for FAMILY clients")).Once()

	w := suite.do(http.MethodPost, "/api/v1/clients", suite.adminToken, dto.CreateClientRequest{FullName: "Fam", ClientType: domain.ClientFamily, PassportNumber: "P"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorOf(w), "familyMembers")
}

func (suite *RouterTestSuite) TestGetClient_NotFound() {
	suite.client.On("GetClient", mock.Anything, unknownClientID).Return(nil, fmt.Errorf("client %s: %w", unknownClientID, apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/clients/"+unknownClientID, suite.userToken, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RouterTestSuite) TestGetClient_InternalErrorIsMasked() {
	suite.client.On("GetClient", mock.Anything, testClientID).Return(nil, assert.AnError).Once()

	w := suite.do(http.MethodGet, "/api/v1/clients/"+testClientID, suite.userToken, nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to retrieve client", suite.errorOf(w))
}

func (suite *RouterTestSuite) TestMalformedPathIDIsNotFound() {
	for _, path := range []string{
		"/api/v1/clients/abc",
		"/api/v1/dossiers/abc",
		"/api/v1/financial/caisses/abc",
		"/api/v1/attachments/abc/file",
	} {
		w := suite.do(http.MethodGet, path, suite.userToken, nil)
		suite.Equal(http.StatusNotFound, w.Code, path)
	}
	suite.client.AssertNotCalled(suite.T(), "GetClient", mock.Anything, mock.Anything)
	suite.dossier.AssertNotCalled(suite.T(), "GetDossier", mock.Anything, mock.Anything)
	suite.financial.AssertNotCalled(suite.T(), "GetCaisseByID", mock.Anything, mock.Anything)
	suite.attachment.AssertNotCalled(suite.T(), "Open", mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestMalformedBodyIDIsRejected() {
	w := suite.do(http.MethodPost, "/api/v1/dossiers", suite.userToken, dto.CreateDossierRequest{ClientID: "abc"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorOf(w), "ClientID must be a valid UUID")

	w = suite.do(http.MethodPost, "/api/v1/installments/"+testInstallmentID+"/pay", suite.adminToken, dto.MarkInstallmentPaidRequest{CaisseID: "k-1"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/dossiers?clientId=abc", suite.userToken, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.dossier.AssertNotCalled(suite.T(), "CreateDossier", mock.Anything, mock.Anything, mock.Anything)
	suite.dossier.AssertNotCalled(suite.T(), "ListDossiers", mock.Anything, mock.Anything)
	suite.payment.AssertNotCalled(suite.T(), "MarkInstallmentPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestListClients_QueryBinding() {
	suite.client.On("ListClients", mock.Anything, dto.ListClientsParams{Page: 2, Limit: 5, Search: "amina", ClientType: domain.ClientFamily}).
		Return([]domain.Client{{ClientID: testClientID}}, pagination.Meta{Page: 2, Limit: 5, Total: 6, TotalPages: 2}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/clients?page=2&limit=5&search=amina&clientType=FAMILY", suite.userToken, nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ListClientsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Data, 1)
	suite.Equal(2, resp.Meta.TotalPages)
}

func (suite *RouterTestSuite) TestListClients_InvalidStatus() {
	w := suite.do(http.MethodGet, "/api/v1/clients?status=BOGUS", suite.userToken, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.client.AssertNotCalled(suite.T(), "ListClients", mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestRemoveFamilyMember_AdminOnly() {
	suite.Equal(http.StatusForbidden, suite.do(http.MethodDelete, "/api/v1/family-members/"+testFamilyMemberID, suite.userToken, nil).Code)

	suite.client.On("RemoveFamilyMember", mock.Anything, testFamilyMemberID).Return(nil).Once()
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/family-members/"+testFamilyMemberID, suite.adminToken, nil).Code)
}

func (suite *RouterTestSuite) TestCreateDossier_AllowedForUsers() {
	suite.dossier.On("CreateDossier", mock.Anything, dto.CreateDossierRequest{ClientID: testClientID}, "user-1").
		Return(&domain.Dossier{DossierID: testDossierID, ClientID: testClientID, Status: domain.DossierInProgress}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/dossiers", suite.userToken, dto.CreateDossierRequest{ClientID: testClientID})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *RouterTestSuite) TestListDossiers_ByClient() {
	suite.dossier.On("ListDossiers", mock.Anything, testClientID).Return([]domain.Dossier{{DossierID: testDossierID}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/dossiers?clientId="+testClientID, suite.userToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.dossier.AssertExpectations(suite.T())
}

func (suite *RouterTestSuite) TestLastPrice_NullWhenUnknown() {
	suite.serviceItem.On("GetLastPrice", mock.Anything, domain.ServiceVisa).Return(nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/services/last-price?serviceType=VISA", suite.userToken, nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.JSONEq(`{"serviceType":"VISA","unitPrice":null}`, w.Body.String())
}

func (suite *RouterTestSuite) TestLastPrice_RequiresServiceType() {
	w := suite.do(http.MethodGet, "/api/v1/services/last-price", suite.userToken, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RouterTestSuite) TestLastPrices_RepeatedParameter() {
	types := []domain.ServiceType{domain.ServiceVisa, domain.ServiceTranslation}
	suite.serviceItem.On("GetLastPrices", mock.Anything, types).
		Return(map[domain.ServiceType]decimal.Decimal{domain.ServiceVisa: decimal.NewFromInt(120)}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/services/last-prices?serviceType=VISA&serviceType=TRADUCTION", suite.userToken, nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.serviceItem.AssertExpectations(suite.T())
}

func (suite *RouterTestSuite) TestCreateManyServices_EmptyBatch() {
	w := suite.do(http.MethodPost, "/api/v1/dossiers/"+testDossierID+"/services/batch", suite.userToken, dto.CreateServiceItemsRequest{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.serviceItem.AssertNotCalled(suite.T(), "CreateManyServices", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestCreatePayment_AmountMismatch() {
	suite.payment.On("CreatePayment", mock.Anything, testClientID, mock.Anything, "user-1").
		Return(nil, apperrors.Validationf("installment 1: amount 250.00 does not match expected 300.00")).Once()

	w := suite.do(http.MethodPost, "/api/v1/clients/"+testClientID+"/payments", suite.userToken, map[string]any{
		"totalAmount":     "1000",
		"paymentOption":   domain.PaymentCash,
		"paymentModality": domain.ModalityInstallments,
		"installments": []map[string]any{
			{"description": "acompte", "percentage": "30", "amount": "250", "dueDate": "2025-07-01"},
			{"description": "solde", "percentage": "70", "amount": "700", "dueDate": "2025-08-01"},
		},
	})

	suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
	suite.Contains(suite.errorOf(w), "expected 300.00")
}

func (suite *RouterTestSuite) TestMarkInstallmentPaid() {
	suite.Equal(http.StatusForbidden, suite.do(http.MethodPost, "/api/v1/installments/"+testInstallmentID+"/pay", suite.userToken, nil).Code)

	suite.payment.On("MarkInstallmentPaid", mock.Anything, testInstallmentID, dto.MarkInstallmentPaidRequest{CaisseID: testCaisseID}, "admin-1").
		Return(&domain.Payment{PaymentID: "p-1"}, nil).Once()
	w := suite.do(http.MethodPost, "/api/v1/installments/"+testInstallmentID+"/pay", suite.adminToken, dto.MarkInstallmentPaidRequest{CaisseID: testCaisseID})
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	suite.payment.On("MarkInstallmentPaid", mock.Anything, otherInstallmentID, dto.MarkInstallmentPaidRequest{}, "admin-1").
		Return(&domain.Payment{PaymentID: "p-1"}, nil).Once()
	w = suite.do(http.MethodPost, "/api/v1/installments/"+otherInstallmentID+"/pay", suite.adminToken, nil)
	suite.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (suite *RouterTestSuite) TestGenerateReport() {
	suite.Equal(http.StatusForbidden, suite.do(http.MethodPost, "/api/v1/financial/reports/generate?startDate=2025-01-01&endDate=2025-01-31", suite.userToken, nil).Code)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	startsOnFirst := mock.MatchedBy(func(t time.Time) bool { return t.Equal(start) })
	suite.financial.On("GenerateFinancialReport", mock.Anything, startsOnFirst, mock.AnythingOfType("time.Time"), "admin-1").
		Return(&domain.FinancialReport{
			ReportID:      "r-1",
			TotalIncome:   decimal.NewFromInt(1000),
			TotalExpenses: decimal.NewFromInt(200),
			TotalTax:      decimal.NewFromInt(190),
			NetProfit:     decimal.NewFromInt(610),
		}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/financial/reports/generate?startDate=2025-01-01&endDate=2025-01-31", suite.adminToken, nil)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.FinancialReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.NetProfit.Equal(decimal.NewFromInt(610)))
}

func (suite *RouterTestSuite) TestGenerateReport_InvertedRange() {
	w := suite.do(http.MethodPost, "/api/v1/financial/reports/generate?startDate=2025-02-01&endDate=2025-01-01", suite.adminToken, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.financial.AssertNotCalled(suite.T(), "GenerateFinancialReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestListTransactions_InvalidDate() {
	w := suite.do(http.MethodGet, "/api/v1/financial/transactions?startDate=01/02/2025", suite.userToken, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorOf(w), "startDate")
}

func (suite *RouterTestSuite) TestTaxCalculation() {
	rate := decimal.RequireFromString("0.19")
	suite.financial.On("TaxRate").Return(rate)
	suite.financial.On("CalculateTaxForClient", mock.Anything).Return(decimal.NewFromInt(190))
	suite.financial.On("CalculateProfitForClient", mock.Anything, mock.Anything).Return(decimal.NewFromInt(810))

	w := suite.do(http.MethodGet, "/api/v1/financial/tax-calculation/1000", suite.userToken, nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.TaxCalculationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Tax.Equal(decimal.NewFromInt(190)))
	suite.True(resp.NetAmount.Equal(decimal.NewFromInt(810)))
	suite.True(resp.TaxRate.Equal(rate))

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/financial/tax-calculation/abc", suite.userToken, nil).Code)
}

func (suite *RouterTestSuite) TestUpdateCaisseBalance_RequiresPositiveAmount() {
	w := suite.do(http.MethodPatch, "/api/v1/financial/caisses/"+testCaisseID+"/balance", suite.adminToken, map[string]any{"amount": "0", "type": domain.Income})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.financial.AssertNotCalled(suite.T(), "UpdateCaisseBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) multipartUpload(attachmentType, filename, content string) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	suite.Require().NoError(mw.WriteField("attachmentType", attachmentType))
	fw, err := mw.CreateFormFile("file", filename)
	suite.Require().NoError(err)
	_, err = io.WriteString(fw, content)
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/clients/"+testClientID+"/attachments", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+suite.adminToken)
	return req
}

func (suite *RouterTestSuite) TestUploadAttachment() {
	suite.attachment.On("Upload", mock.Anything, testClientID, domain.AttachmentPassport, mock.MatchedBy(func(f portssvc.UploadFile) bool {
		return f.Filename == "passport.pdf" && f.Size == int64(len("%PDF-1.4 test"))
	}), "admin-1").Return(&domain.Attachment{AttachmentID: testAttachmentID, ClientID: testClientID, MimeType: "application/pdf"}, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.multipartUpload(string(domain.AttachmentPassport), "passport.pdf", "%PDF-1.4 test"))

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.AttachmentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(testAttachmentID, resp.AttachmentID)
}

func (suite *RouterTestSuite) TestUploadAttachment_InvalidType() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.multipartUpload("SELFIE", "x.pdf", "%PDF-1.4"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.attachment.AssertNotCalled(suite.T(), "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestDownloadAttachment() {
	att := &domain.Attachment{AttachmentID: testAttachmentID, OriginalName: "passport.pdf", MimeType: "application/pdf", Size: 8}
	suite.attachment.On("Open", mock.Anything, testAttachmentID).Return(att, io.NopCloser(strings.NewReader("%PDF-1.4")), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/attachments/"+testAttachmentID+"/file", suite.userToken, nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename=passport.pdf`, w.Header().Get("Content-Disposition"))
	suite.Equal("%PDF-1.4", w.Body.String())
}

func (suite *RouterTestSuite) TestMeta() {
	w := suite.do(http.MethodGet, "/api/v1/meta/payment-options", suite.userToken, nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var options []domain.PaymentOption
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &options))
	suite.Equal(domain.PaymentOptions, options)
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
