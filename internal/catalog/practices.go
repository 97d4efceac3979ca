package catalog

var bestPractices = map[string][]string{
	"javascript": {
		"1. Use descriptive test names that explain what is being tested",
		"2. Follow AAA pattern: Arrange, Act, Assert",
		"3. Test one behavior per test",
		"4. Use mocks for external dependencies",
		"5. Write tests before code (TDD)",
		"6. Keep tests independent and deterministic",
		"7. Aim for 100% line coverage for critical paths",
		"8. Use descriptive variable names in test setup",
		"9. Test both success and failure cases",
		"10. Keep tests fast and isolated",
	},
	"python": {
		"1. Use pytest for readability and flexibility",
		"2. Follow Arrange-Act-Assert pattern",
		"3. Use fixtures for reusable test setup",
		"4. Write tests that are self-documenting",
		"5. Use parametrize for test variations",
		"6. Mock external services and APIs",
		"7. Test edge cases and boundary conditions",
		"8. Keep tests independent",
		"9. Aim for high test coverage (>80%)",
		"10. Use descriptive test names and docstrings",
	},
	"java": {
		"1. Use JUnit 5 for modern testing",
		"2. Follow AAA pattern (Arrange, Act, Assert)",
		"3. Use parameterized tests for variations",
		"4. Apply testing best practices",
		"5. Use mocking frameworks (Mockito)",
		"6. Write tests for business logic only",
		"7. Keep tests independent and fast",
		"8. Use descriptive test names",
		"9. Aim for high test coverage",
		"10. Regularly review and refactor tests",
	},
}

// BestPractices returns the testing best-practice list for a language.
// Unknown languages fall back to the javascript list.
func BestPractices(language string) []string {
	if list, ok := bestPractices[language]; ok {
		return list
	}
	return bestPractices["javascript"]
}
