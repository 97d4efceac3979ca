package models

type GenerateCodeRequest struct {
	Language    string `json:"language" binding:"required"`
	Description string `json:"description" binding:"required"`
	Complexity  string `json:"complexity"`
}

type OptimizeCodeRequest struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language" binding:"required"`
}

type ExplainCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

type DetectBugsRequest struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language" binding:"required"`
}
