package models

// APIDefinition is a transient request payload describing an API to
// document. It is never persisted; the documentation endpoints turn it
// into Markdown, OpenAPI, Postman or HTML artifacts.
type APIDefinition struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	BaseURL     string        `json:"baseURL"`
	Auth        string        `json:"auth"`
	Endpoints   []EndpointDef `json:"endpoints"`
}

type EndpointDef struct {
	Method      string         `json:"method"`
	Path        string         `json:"path"`
	Description string         `json:"description"`
	Auth        string         `json:"auth,omitempty"`
	Parameters  []ParameterDef `json:"parameters,omitempty"`
	Response    map[string]any `json:"response,omitempty"`
}

type ParameterDef struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

type DocsRequest struct {
	APIDefinition APIDefinition `json:"apiDefinition"`
	Language      string        `json:"language"`
}
