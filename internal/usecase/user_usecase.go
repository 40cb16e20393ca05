package usecase

import (
	"context"
	"errors"
	"time"

	"duitbot/internal/domain"
)

// UserUseCase handles user registration and lookup.
type UserUseCase struct {
	userRepo UserRepository
	idGen    IDGenerator
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(userRepo UserRepository, idGen IDGenerator) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		idGen:    idGen,
	}
}

// Register gets or creates the user for a Telegram identity. The second
// return value reports whether the user was newly created.
func (uc *UserUseCase) Register(ctx context.Context, telegramID int64, username string) (*domain.User, bool, error) {
	existing, err := uc.userRepo.GetByTelegramID(ctx, telegramID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, err
	}

	now := time.Now().UTC()

	user := &domain.User{
		ID:         uc.idGen.Generate(),
		TelegramID: telegramID,
		Username:   username,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, false, err
	}

	return user, true, nil
}

// GetByTelegramID looks up a registered user.
func (uc *UserUseCase) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	return uc.userRepo.GetByTelegramID(ctx, telegramID)
}
