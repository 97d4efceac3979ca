// Package prompt turns structured request payloads into the chat
// prompts sent to the completion service. Builders are pure: the same
// input always yields the same prompt, required fields fail fast and
// absent optional fields get documented defaults.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/devtools-pro/backend/pkg/models"
)

// Prompt is one fully assembled completion request: the system role
// instruction, the user prompt and the sampling parameters used by the
// original per-endpoint calls.
type Prompt struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// MissingFieldError reports a required request field that is absent or
// empty after trimming.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

var titleCaser = cases.Title(language.English)

func require(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &MissingFieldError{Field: field}
	}
	return value, nil
}

// CodeGeneration builds the natural-language-to-code prompt. An empty
// complexity defaults to "medium".
func CodeGeneration(req models.GenerateCodeRequest) (Prompt, error) {
	lang, err := require("language", req.Language)
	if err != nil {
		return Prompt{}, err
	}
	desc, err := require("description", req.Description)
	if err != nil {
		return Prompt{}, err
	}
	complexity := strings.TrimSpace(req.Complexity)
	if complexity == "" {
		complexity = "medium"
	}

	return Prompt{
		System:      "You are an expert coding assistant.",
		User:        fmt.Sprintf("Generate a %s function based on: %s. Complexity: %s. Provide clear, well-documented code with error handling.", lang, desc, complexity),
		Temperature: 0.7,
		MaxTokens:   1000,
	}, nil
}

func CodeOptimization(req models.OptimizeCodeRequest) (Prompt, error) {
	code, err := require("code", req.Code)
	if err != nil {
		return Prompt{}, err
	}
	lang, err := require("language", req.Language)
	if err != nil {
		return Prompt{}, err
	}

	return Prompt{
		System:      "You are a senior software engineer.",
		User:        fmt.Sprintf("Optimize the following %s code for performance, readability, and best practices:\n\n%s", lang, code),
		Temperature: 0.5,
		MaxTokens:   1500,
	}, nil
}

func CodeExplanation(req models.ExplainCodeRequest) (Prompt, error) {
	code, err := require("code", req.Code)
	if err != nil {
		return Prompt{}, err
	}

	return Prompt{
		System:      "You are a technical code explainer.",
		User:        fmt.Sprintf("Explain this code in simple terms:\n\n%s", code),
		Temperature: 0.3,
		MaxTokens:   1000,
	}, nil
}

func BugDetection(req models.DetectBugsRequest) (Prompt, error) {
	code, err := require("code", req.Code)
	if err != nil {
		return Prompt{}, err
	}
	lang, err := require("language", req.Language)
	if err != nil {
		return Prompt{}, err
	}

	return Prompt{
		System:      "You are a code reviewer and bug detector.",
		User:        fmt.Sprintf("Review this %s code and identify any bugs, potential issues, or security vulnerabilities:\n\n%s", lang, code),
		Temperature: 0.3,
		MaxTokens:   1500,
	}, nil
}

// UnitTests builds the unit-test generation prompt. Language defaults
// to javascript as in the original product.
func UnitTests(req models.UnitTestRequest) (Prompt, error) {
	code, err := require("code", req.Code)
	if err != nil {
		return Prompt{}, err
	}
	lang := strings.TrimSpace(req.Language)
	if lang == "" {
		lang = "javascript"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate comprehensive unit tests for this %s code:\n\n", lang)
	fmt.Fprintf(&b, "```%s\n%s\n```\n\n", lang, code)
	b.WriteString("Generate tests using appropriate testing framework:\n")
	b.WriteString("- For JavaScript/TypeScript: Jest\n")
	b.WriteString("- For Python: pytest\n")
	b.WriteString("- For Java: JUnit\n\n")
	b.WriteString("Include:\n")
	b.WriteString("- Test cases for normal operations\n")
	b.WriteString("- Test cases for error handling\n")
	b.WriteString("- Edge case tests\n")
	b.WriteString("- Mock external dependencies\n\n")
	b.WriteString("Format as a complete test file with proper imports.")

	return Prompt{
		System:      "You are an expert software test engineer.",
		User:        b.String(),
		Temperature: 0.7,
		MaxTokens:   1500,
	}, nil
}

func IntegrationTests(req models.IntegrationTestRequest) (Prompt, error) {
	if len(req.APIEndpoints) == 0 {
		return Prompt{}, &MissingFieldError{Field: "apiEndpoints"}
	}

	var b strings.Builder
	b.WriteString("Generate integration tests for the following API endpoints:\n\n")
	b.WriteString("**Endpoints:**\n")
	for _, ep := range req.APIEndpoints {
		method := ep.Method
		if method == "" {
			method = "GET"
		}
		path := ep.Path
		if path == "" {
			path = "/"
		}
		desc := ep.Description
		if desc == "" {
			desc = "No description"
		}
		fmt.Fprintf(&b, "\n- %s %s\n  - Description: %s\n", method, path, desc)
		if len(ep.TestScenarios) > 0 {
			b.WriteString("  - Test scenarios needed:\n")
			for _, scenario := range ep.TestScenarios {
				fmt.Fprintf(&b, "    * %s\n", scenario)
			}
		}
	}

	data, _ := json.MarshalIndent(req.Data, "", "  ")
	fmt.Fprintf(&b, "\n**Test Data:**\n%s\n\n", data)
	b.WriteString("Generate tests that:\n")
	b.WriteString("1. Test endpoint coordination\n")
	b.WriteString("2. Test data validation\n")
	b.WriteString("3. Test error handling\n")
	b.WriteString("4. Test API responses\n")
	b.WriteString("5. Use appropriate testing framework (Jest for JS, pytest for Python, etc.)\n\n")
	b.WriteString("Include test setup, test execution, and test teardown.")

	return Prompt{
		System:      "You are an expert integration test engineer.",
		User:        b.String(),
		Temperature: 0.7,
		MaxTokens:   2000,
	}, nil
}

func E2ETests(req models.E2ETestRequest) (Prompt, error) {
	flow, err := require("userFlow", req.UserFlow)
	if err != nil {
		return Prompt{}, err
	}
	if len(req.Features) == 0 {
		return Prompt{}, &MissingFieldError{Field: "features"}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate end-to-end tests (E2E) for this user flow:\n\n**User Flow:**\n%s\n\n**Features to Test:**\n", flow)
	for _, f := range req.Features {
		fmt.Fprintf(&b, "- %s: %s\n", f.Name, f.Description)
	}
	b.WriteString("\nGenerate E2E tests using:\n- Cypress\n- Playwright\n- or Selenium (depending on framework preference)\n\n")
	b.WriteString("Include:\n")
	b.WriteString("1. Test setup and configuration\n")
	b.WriteString("2. Login/authentication tests\n")
	b.WriteString("3. Core feature tests\n")
	b.WriteString("4. Error handling tests\n")
	b.WriteString("5. Edge cases\n")
	b.WriteString("6. Test cleanup\n\n")
	b.WriteString("Format as a complete E2E test suite with proper test descriptions and assertions.")

	return Prompt{
		System:      "You are an expert E2E test engineer.",
		User:        b.String(),
		Temperature: 0.7,
		MaxTokens:   2000,
	}, nil
}

func CoverageReport(req models.CoverageRequest) (Prompt, error) {
	if len(req.TestResults) == 0 {
		return Prompt{}, &MissingFieldError{Field: "testResults"}
	}

	results, _ := json.MarshalIndent(req.TestResults, "", "  ")

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a test coverage report based on these test results:\n\n%s\n\n", results)
	b.WriteString("Generate a comprehensive report including:\n")
	b.WriteString("1. Overall coverage percentage\n")
	b.WriteString("2. Per-module coverage breakdown\n")
	b.WriteString("3. Line coverage details\n")
	b.WriteString("4. Branch coverage details\n")
	b.WriteString("5. Function coverage details\n")
	b.WriteString("6. Suggested areas for improvement\n\n")
	b.WriteString("Format as a professional report with visual indicators for coverage levels (high/medium/low).")

	return Prompt{
		System:      "You are a test analysis expert.",
		User:        b.String(),
		Temperature: 0.7,
		MaxTokens:   1500,
	}, nil
}

// APIDocumentation builds the Markdown documentation prompt from an
// API definition. Absent optional fields render their documented
// defaults instead of failing.
func APIDocumentation(def models.APIDefinition, docLanguage string) (Prompt, error) {
	name, err := require("apiDefinition.name", def.Name)
	if err != nil {
		return Prompt{}, err
	}
	if len(def.Endpoints) == 0 {
		return Prompt{}, &MissingFieldError{Field: "apiDefinition.endpoints"}
	}

	desc := def.Description
	if desc == "" {
		desc = "No description provided"
	}
	baseURL := def.BaseURL
	if baseURL == "" {
		baseURL = "/api/v1"
	}
	auth := def.Auth
	if auth == "" {
		auth = "None"
	}
	if docLanguage == "" {
		docLanguage = "javascript"
	}

	var b strings.Builder
	b.WriteString("Generate comprehensive API documentation for this API:\n\n")
	fmt.Fprintf(&b, "**API Name:** %s\n", name)
	fmt.Fprintf(&b, "**Description:** %s\n", desc)
	fmt.Fprintf(&b, "**Base URL:** %s\n", baseURL)
	fmt.Fprintf(&b, "**Authentication:** %s\n\n", auth)
	b.WriteString("**Endpoints:**\n")
	for i, ep := range def.Endpoints {
		method := ep.Method
		if method == "" {
			method = "GET"
		}
		path := ep.Path
		if path == "" {
			path = "/"
		}
		epDesc := ep.Description
		if epDesc == "" {
			epDesc = "No description"
		}
		if ep.Parameters == nil {
			ep.Parameters = []models.ParameterDef{}
		}
		if ep.Response == nil {
			ep.Response = map[string]any{}
		}
		params, _ := json.Marshal(ep.Parameters)
		response, _ := json.Marshal(ep.Response)
		fmt.Fprintf(&b, "\n%d. %s %s\n   - Description: %s\n   - Parameters: %s\n   - Response: %s\n",
			i+1, method, path, epDesc, params, response)
	}
	fmt.Fprintf(&b, "\nGenerate documentation in %s with:\n", titleCaser.String(docLanguage))
	b.WriteString("- Clear introduction\n")
	b.WriteString("- Endpoint descriptions\n")
	b.WriteString("- Request/response examples\n")
	b.WriteString("- Error handling\n")
	b.WriteString("- Best practices\n\n")
	b.WriteString("Format the output as a Markdown document.")

	return Prompt{
		System:      "You are an expert API documentation writer.",
		User:        b.String(),
		Temperature: 0.7,
		MaxTokens:   2000,
	}, nil
}
