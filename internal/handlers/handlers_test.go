package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/devtools-pro/backend/internal/services"
	"github.com/devtools-pro/backend/pkg/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

type MockGenerationService struct {
	mock.Mock
}

func (m *MockGenerationService) GenerateCode(ctx context.Context, req models.GenerateCodeRequest, actor *services.Actor) (string, error) {
	args := m.Called(ctx, req, actor)
	return args.String(0), args.Error(1)
}

func (m *MockGenerationService) OptimizeCode(ctx context.Context, req models.OptimizeCodeRequest, actor *services.Actor) (string, []string, error) {
	args := m.Called(ctx, req, actor)
	var improvements []string
	if args.Get(1) != nil {
		improvements = args.Get(1).([]string)
	}
	return args.String(0), improvements, args.Error(2)
}

func (m *MockGenerationService) ExplainCode(ctx context.Context, req models.ExplainCodeRequest, actor *services.Actor) (string, error) {
	args := m.Called(ctx, req, actor)
	return args.String(0), args.Error(1)
}

func (m *MockGenerationService) DetectBugs(ctx context.Context, req models.DetectBugsRequest, actor *services.Actor) (string, error) {
	args := m.Called(ctx, req, actor)
	return args.String(0), args.Error(1)
}

func (m *MockGenerationService) GenerateUnitTests(ctx context.Context, req models.UnitTestRequest, actor *services.Actor) (string, string, error) {
	args := m.Called(ctx, req, actor)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockGenerationService) GenerateIntegrationTests(ctx context.Context, req models.IntegrationTestRequest, actor *services.Actor) (string, string, error) {
	args := m.Called(ctx, req, actor)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockGenerationService) GenerateE2ETests(ctx context.Context, req models.E2ETestRequest, actor *services.Actor) (string, string, error) {
	args := m.Called(ctx, req, actor)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockGenerationService) GenerateCoverageReport(ctx context.Context, req models.CoverageRequest, actor *services.Actor) (string, error) {
	args := m.Called(ctx, req, actor)
	return args.String(0), args.Error(1)
}

func (m *MockGenerationService) GenerateAPIDocs(ctx context.Context, def models.APIDefinition, docLanguage string, actor *services.Actor) (string, error) {
	args := m.Called(ctx, def, docLanguage, actor)
	return args.String(0), args.Error(1)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.String(1), args.Error(2)
}

func (m *MockAccountService) Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.String(1), args.Error(2)
}

func (m *MockAccountService) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockAccountService) UpgradePlan(ctx context.Context, userID uuid.UUID, plan string) (models.Plan, error) {
	args := m.Called(ctx, userID, plan)
	return args.Get(0).(models.Plan), args.Error(1)
}

func (m *MockAccountService) Usage(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockAccountService) PlanOf(ctx context.Context, userID uuid.UUID) string {
	args := m.Called(ctx, userID)
	return args.String(0)
}

type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) List() []models.Template {
	args := m.Called()
	return args.Get(0).([]models.Template)
}

func (m *MockTemplateService) Get(id string) (models.Template, error) {
	args := m.Called(id)
	return args.Get(0).(models.Template), args.Error(1)
}

func (m *MockTemplateService) ByCategory(category string) []models.Template {
	args := m.Called(category)
	return args.Get(0).([]models.Template)
}

func (m *MockTemplateService) ByLanguage(language string) []models.Template {
	args := m.Called(language)
	return args.Get(0).([]models.Template)
}

func (m *MockTemplateService) Generate(ctx context.Context, req models.GenerateTemplateRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func performJSON(router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return out
}
