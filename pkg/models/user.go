package models

import (
	"time"

	"github.com/google/uuid"
)

// Plan tiers a user account can hold.
const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Plan          string    `json:"plan"`
	UsageCount    int       `json:"usage_count"`
	LastResetDate time.Time `json:"last_reset_date"`
	CreatedAt     time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpgradeRequest struct {
	Plan string `json:"plan" binding:"required"`
}
