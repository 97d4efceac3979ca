package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/catalog"
	"github.com/devtools-pro/backend/internal/config"
	"github.com/devtools-pro/backend/pkg/models"
)

// TemplateService serves the immutable template catalog and renders
// templates with a write-through cache. Rendering is a pure function
// of (template id, parameters), so the cache key is too.
type TemplateService struct {
	cache  CacheStore
	ttl    config.CacheConfig
	logger *logrus.Logger
}

func NewTemplateService(cache CacheStore, ttl config.CacheConfig, logger *logrus.Logger) *TemplateService {
	return &TemplateService{cache: cache, ttl: ttl, logger: logger}
}

func (s *TemplateService) List() []models.Template {
	return catalog.Templates()
}

func (s *TemplateService) Get(id string) (models.Template, error) {
	t, err := catalog.TemplateByID(id)
	if err != nil {
		return models.Template{}, NotFoundError("Template not found")
	}
	return t, nil
}

func (s *TemplateService) ByCategory(category string) []models.Template {
	return catalog.TemplatesByCategory(category)
}

func (s *TemplateService) ByLanguage(language string) []models.Template {
	return catalog.TemplatesByLanguage(language)
}

func (s *TemplateService) Generate(ctx context.Context, req models.GenerateTemplateRequest) (string, error) {
	key := CacheKey("template:generate", req.TemplateID, canonicalParams(req.Parameters))
	if cached, ok := s.cache.Get(ctx, key); ok {
		return cached, nil
	}

	code, err := catalog.Render(req.TemplateID, req.Parameters)
	if err != nil {
		if errors.Is(err, catalog.ErrTemplateNotFound) {
			return "", NotFoundError("Template not found")
		}
		var missing *catalog.MissingParamError
		if errors.As(err, &missing) {
			return "", ValidationError("%s", missing.Error())
		}
		return "", InternalError("Failed to generate code", err)
	}

	s.cache.Set(ctx, key, code, s.ttl.TemplateTTL)
	return code, nil
}

// canonicalParams serializes the parameter map with sorted keys so
// equal maps always produce equal cache keys.
func canonicalParams(params map[string]string) string {
	if len(params) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		name, _ := json.Marshal(k)
		value, _ := json.Marshal(params[k])
		b.Write(name)
		b.WriteByte(':')
		b.Write(value)
	}
	b.WriteByte('}')
	return b.String()
}
