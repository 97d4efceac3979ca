package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/devtools-pro/backend/pkg/models"
)

// Handler-facing contracts, kept narrow so handler tests can mock them.

type AccountServiceInterface interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error)
	Profile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpgradePlan(ctx context.Context, userID uuid.UUID, plan string) (models.Plan, error)
	Usage(ctx context.Context, userID uuid.UUID) (*models.User, error)
	PlanOf(ctx context.Context, userID uuid.UUID) string
}

type GenerationServiceInterface interface {
	GenerateCode(ctx context.Context, req models.GenerateCodeRequest, actor *Actor) (string, error)
	OptimizeCode(ctx context.Context, req models.OptimizeCodeRequest, actor *Actor) (string, []string, error)
	ExplainCode(ctx context.Context, req models.ExplainCodeRequest, actor *Actor) (string, error)
	DetectBugs(ctx context.Context, req models.DetectBugsRequest, actor *Actor) (string, error)
	GenerateUnitTests(ctx context.Context, req models.UnitTestRequest, actor *Actor) (string, string, error)
	GenerateIntegrationTests(ctx context.Context, req models.IntegrationTestRequest, actor *Actor) (string, string, error)
	GenerateE2ETests(ctx context.Context, req models.E2ETestRequest, actor *Actor) (string, string, error)
	GenerateCoverageReport(ctx context.Context, req models.CoverageRequest, actor *Actor) (string, error)
	GenerateAPIDocs(ctx context.Context, def models.APIDefinition, docLanguage string, actor *Actor) (string, error)
}

type TemplateServiceInterface interface {
	List() []models.Template
	Get(id string) (models.Template, error)
	ByCategory(category string) []models.Template
	ByLanguage(language string) []models.Template
	Generate(ctx context.Context, req models.GenerateTemplateRequest) (string, error)
}
