package models

type UnitTestRequest struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language"`
}

type TestEndpoint struct {
	Method        string   `json:"method"`
	Path          string   `json:"path"`
	Description   string   `json:"description"`
	TestScenarios []string `json:"testScenarios,omitempty"`
}

type IntegrationTestRequest struct {
	APIEndpoints []TestEndpoint `json:"apiEndpoints" binding:"required,min=1"`
	Data         map[string]any `json:"data"`
}

type FeatureSpec struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type E2ETestRequest struct {
	UserFlow string        `json:"userFlow" binding:"required"`
	Features []FeatureSpec `json:"features" binding:"required,min=1"`
}

type CoverageRequest struct {
	TestResults []map[string]any `json:"testResults" binding:"required,min=1"`
}
