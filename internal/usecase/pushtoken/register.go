package pushtoken

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/ids"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ======================================================
// PUSH TOKEN REGISTRATION
// ======================================================

type Result string

const (
	Registered        Result = "registered"
	AlreadyRegistered Result = "already_registered"
)

type Repository interface {
	Exists(ctx context.Context, userID, token string) (bool, error)
	Create(ctx context.Context, pt *models.PushToken) error
	ListForUser(ctx context.Context, userID string, limit int) ([]models.PushToken, error)
}

type RegisterInput struct {
	UserID     string
	Token      string
	Platform   string
	DeviceInfo models.JSONMap
}

type Register struct {
	repo Repository
}

func NewRegister(repo Repository) *Register {
	return &Register{repo: repo}
}

// Execute is idempotent on (user_id, token): registering the same pair
// twice is a no-op reported as AlreadyRegistered, never an error. The
// unique index backs this up when two registrations race.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (Result, error) {

	if in.UserID == "" || in.Token == "" {
		return "", httperr.ErrBusiness("invalid_token_registration")
	}
	if !models.IsValidPlatform(in.Platform) {
		return "", httperr.ErrBusiness("invalid_platform")
	}

	exists, err := uc.repo.Exists(ctx, in.UserID, in.Token)
	if err != nil {
		return "", err
	}
	if exists {
		return AlreadyRegistered, nil
	}

	pt := &models.PushToken{
		ID:         ids.NewPushToken(),
		UserID:     in.UserID,
		Token:      in.Token,
		Platform:   in.Platform,
		DeviceInfo: in.DeviceInfo,
	}

	if err := uc.repo.Create(ctx, pt); err != nil {
		// a concurrent registration may have won the unique index race
		if exists, checkErr := uc.repo.Exists(ctx, in.UserID, in.Token); checkErr == nil && exists {
			return AlreadyRegistered, nil
		}
		return "", err
	}

	return Registered, nil
}

type ListForUser struct {
	repo Repository
}

func NewListForUser(repo Repository) *ListForUser {
	return &ListForUser{repo: repo}
}

func (uc *ListForUser) Execute(ctx context.Context, userID string, limit int) ([]models.PushToken, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return uc.repo.ListForUser(ctx, userID, limit)
}
