package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/config"
	"github.com/devtools-pro/backend/internal/prompt"
	"github.com/devtools-pro/backend/pkg/models"
)

// Completer is the completion-gateway contract the generation pipeline
// depends on.
type Completer interface {
	Complete(ctx context.Context, p prompt.Prompt) (string, error)
}

// CacheStore is the slice of ResponseCache the pipeline needs.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

// UsageRecorder accounts a successful generation; implementations are
// fail-open.
type UsageRecorder interface {
	Record(ctx context.Context, actor *Actor, endpoint string)
}

// GenerationService implements the one pattern every completion-backed
// endpoint shares: build prompt, consult cache, call the gateway on a
// miss, cache the result, account usage.
//
// Caching is per endpoint: only endpoints whose key is a pure function
// of compact request content are cached. Endpoints keyed on whole
// source bodies see near-zero hit rates, so they go straight to the
// gateway.
type GenerationService struct {
	completer Completer
	cache     CacheStore
	usage     UsageRecorder
	ttl       config.CacheConfig
	logger    *logrus.Logger
}

func NewGenerationService(completer Completer, cache CacheStore, usage UsageRecorder, ttl config.CacheConfig, logger *logrus.Logger) *GenerationService {
	return &GenerationService{
		completer: completer,
		cache:     cache,
		usage:     usage,
		ttl:       ttl,
		logger:    logger,
	}
}

// complete runs the shared pipeline. cacheKey may be empty to bypass
// caching; failMessage is the opaque client-facing text for upstream
// failures.
func (s *GenerationService) complete(ctx context.Context, endpoint string, p prompt.Prompt, cacheKey string, ttl time.Duration, failMessage string, actor *Actor) (string, error) {
	if cacheKey != "" {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			s.record(ctx, actor, endpoint)
			return cached, nil
		}
	}

	text, err := s.completer.Complete(ctx, p)
	if err != nil {
		s.logger.WithError(err).WithField("endpoint", endpoint).Error("Completion request failed")
		return "", UpstreamError(failMessage, err)
	}

	if cacheKey != "" {
		s.cache.Set(ctx, cacheKey, text, ttl)
	}
	s.record(ctx, actor, endpoint)

	return text, nil
}

func (s *GenerationService) record(ctx context.Context, actor *Actor, endpoint string) {
	if s.usage != nil {
		s.usage.Record(ctx, actor, endpoint)
	}
}

func (s *GenerationService) GenerateCode(ctx context.Context, req models.GenerateCodeRequest, actor *Actor) (string, error) {
	p, err := prompt.CodeGeneration(req)
	if err != nil {
		return "", ValidationError("%s", err.Error())
	}

	key := CacheKey("code:generate", p.System, p.User)
	return s.complete(ctx, "code.generate", p, key, s.ttl.CodeTTL,
		"Failed to generate code. Please try again.", actor)
}

func (s *GenerationService) OptimizeCode(ctx context.Context, req models.OptimizeCodeRequest, actor *Actor) (string, []string, error) {
	p, err := prompt.CodeOptimization(req)
	if err != nil {
		return "", nil, ValidationError("%s", err.Error())
	}

	optimized, err := s.complete(ctx, "code.optimize", p, "", 0,
		"Failed to optimize code. Please try again.", actor)
	if err != nil {
		return "", nil, err
	}

	improvements := []string{
		"Performance improved",
		"Better readability",
		"Best practices applied",
	}
	return optimized, improvements, nil
}

func (s *GenerationService) ExplainCode(ctx context.Context, req models.ExplainCodeRequest, actor *Actor) (string, error) {
	p, err := prompt.CodeExplanation(req)
	if err != nil {
		return "", ValidationError("%s", err.Error())
	}

	return s.complete(ctx, "code.explain", p, "", 0,
		"Failed to explain code. Please try again.", actor)
}

func (s *GenerationService) DetectBugs(ctx context.Context, req models.DetectBugsRequest, actor *Actor) (string, error) {
	p, err := prompt.BugDetection(req)
	if err != nil {
		return "", ValidationError("%s", err.Error())
	}

	return s.complete(ctx, "code.detect-bugs", p, "", 0,
		"Failed to detect bugs. Please try again.", actor)
}

// GenerateUnitTests returns the generated tests and the framework tag
// reported to the client.
func (s *GenerationService) GenerateUnitTests(ctx context.Context, req models.UnitTestRequest, actor *Actor) (string, string, error) {
	p, err := prompt.UnitTests(req)
	if err != nil {
		return "", "", ValidationError("%s", err.Error())
	}

	key := CacheKey("tests:unit", p.System, p.User)
	tests, err := s.complete(ctx, "tests.unit", p, key, s.ttl.TestsTTL,
		"Failed to generate unit tests", actor)
	if err != nil {
		return "", "", err
	}

	return tests, unitTestFramework(req.Language), nil
}

func unitTestFramework(language string) string {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "", "javascript", "typescript":
		return "Jest"
	default:
		return strings.TrimSpace(language)
	}
}

func (s *GenerationService) GenerateIntegrationTests(ctx context.Context, req models.IntegrationTestRequest, actor *Actor) (string, string, error) {
	p, err := prompt.IntegrationTests(req)
	if err != nil {
		return "", "", ValidationError("%s", err.Error())
	}

	tests, err := s.complete(ctx, "tests.integration", p, "", 0,
		"Failed to generate integration tests", actor)
	if err != nil {
		return "", "", err
	}

	return tests, "Jest", nil
}

func (s *GenerationService) GenerateE2ETests(ctx context.Context, req models.E2ETestRequest, actor *Actor) (string, string, error) {
	p, err := prompt.E2ETests(req)
	if err != nil {
		return "", "", ValidationError("%s", err.Error())
	}

	tests, err := s.complete(ctx, "tests.e2e", p, "", 0,
		"Failed to generate E2E tests", actor)
	if err != nil {
		return "", "", err
	}

	return tests, "Cypress/Playwright", nil
}

func (s *GenerationService) GenerateCoverageReport(ctx context.Context, req models.CoverageRequest, actor *Actor) (string, error) {
	p, err := prompt.CoverageReport(req)
	if err != nil {
		return "", ValidationError("%s", err.Error())
	}

	return s.complete(ctx, "tests.coverage", p, "", 0,
		"Failed to generate coverage report", actor)
}

func (s *GenerationService) GenerateAPIDocs(ctx context.Context, def models.APIDefinition, docLanguage string, actor *Actor) (string, error) {
	p, err := prompt.APIDocumentation(def, docLanguage)
	if err != nil {
		return "", ValidationError("%s", err.Error())
	}

	key := CacheKey("api-docs:generate", p.System, p.User)
	return s.complete(ctx, "api-docs.generate", p, key, s.ttl.DocsTTL,
		"Failed to generate API documentation", actor)
}
