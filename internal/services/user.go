package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/catalog"
	"github.com/devtools-pro/backend/pkg/models"
)

const uniqueViolation = "23505"

// pgPool is the slice of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type pgPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// UserRepository is CRUD over the users table. It returns raw storage
// errors; the account service maps them to the error taxonomy.
type UserRepository struct {
	db pgPool
}

func NewUserRepository(db pgPool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash, name string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (email, password, name)
		 VALUES ($1, $2, $3)
		 RETURNING id, email, name, plan, usage_count, last_reset_date, created_at`,
		email, passwordHash, name,
	).Scan(&user.ID, &user.Email, &user.Name, &user.Plan, &user.UsageCount, &user.LastResetDate, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, string, error) {
	var (
		user models.User
		hash string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password, name, plan, usage_count, last_reset_date, created_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Email, &hash, &user.Name, &user.Plan, &user.UsageCount, &user.LastResetDate, &user.CreatedAt)
	if err != nil {
		return nil, "", err
	}
	return &user, hash, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx,
		`SELECT id, email, name, plan, usage_count, last_reset_date, created_at
		 FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Email, &user.Name, &user.Plan, &user.UsageCount, &user.LastResetDate, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePlan(ctx context.Context, id uuid.UUID, plan string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET plan = $1 WHERE id = $2`, plan, id)
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// IncrementUsage bumps the usage counter, resetting it first when the
// last reset rolled over a calendar day.
func (r *UserRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users
		 SET usage_count = CASE WHEN last_reset_date < CURRENT_DATE THEN 1 ELSE usage_count + 1 END,
		     last_reset_date = CURRENT_DATE
		 WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to increment usage: %w", err)
	}
	return nil
}

// AccountService implements registration, login, profile access and
// plan changes on top of the repository and the token service.
type AccountService struct {
	repo   *UserRepository
	auth   *AuthService
	logger *logrus.Logger
}

func NewAccountService(repo *UserRepository, auth *AuthService, logger *logrus.Logger) *AccountService {
	return &AccountService{repo: repo, auth: auth, logger: logger}
}

func (s *AccountService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, string, error) {
	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", InternalError("Failed to register user", err)
	}

	user, err := s.repo.Create(ctx, req.Email, hash, req.Name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, "", ConflictError("Email already exists")
		}
		return nil, "", InternalError("Failed to register user", err)
	}

	token, err := s.auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", InternalError("Failed to register user", err)
	}

	return user, token, nil
}

// Login deliberately reports the same generic message for an unknown
// email and a wrong password.
func (s *AccountService) Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error) {
	user, hash, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", AuthError("Invalid credentials")
		}
		return nil, "", InternalError("Failed to login", err)
	}

	if !s.auth.CheckPassword(hash, req.Password) {
		return nil, "", AuthError("Invalid credentials")
	}

	token, err := s.auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", InternalError("Failed to login", err)
	}

	return user, token, nil
}

func (s *AccountService) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NotFoundError("User not found")
		}
		return nil, InternalError("Failed to fetch profile", err)
	}
	return user, nil
}

func (s *AccountService) UpgradePlan(ctx context.Context, userID uuid.UUID, plan string) (models.Plan, error) {
	if !catalog.ValidPlan(plan) {
		return models.Plan{}, ValidationError("Invalid plan")
	}

	if err := s.repo.UpdatePlan(ctx, userID, plan); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Plan{}, NotFoundError("User not found")
		}
		return models.Plan{}, InternalError("Failed to upgrade plan", err)
	}

	upgraded, _ := catalog.PlanByID(plan)
	return upgraded, nil
}

func (s *AccountService) Usage(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.Profile(ctx, userID)
}

// PlanOf resolves a user's plan for quota decisions, falling back to
// free when the lookup fails so enforcement stays fail-open.
func (s *AccountService) PlanOf(ctx context.Context, userID uuid.UUID) string {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("Plan lookup failed, assuming free tier")
		return models.PlanFree
	}
	return user.Plan
}
