package models

// TemplateParam declares one substitution slot of a template. Required
// parameters are validated before rendering; optional ones fall back to
// Default.
type TemplateParam struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Default  string `json:"default,omitempty"`
}

// Template is one entry of the immutable template catalog, defined at
// process start.
type Template struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Language    string          `json:"language"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Params      []TemplateParam `json:"params,omitempty"`
	Body        string          `json:"-"`
}

type GenerateTemplateRequest struct {
	TemplateID string            `json:"templateId" binding:"required"`
	Parameters map[string]string `json:"parameters"`
}
