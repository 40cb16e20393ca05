package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"duitbot/internal/domain"
	"duitbot/internal/usecase"
	"duitbot/internal/usecase/mocks"
)

func TestRegisterCreatesNewUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewGoMockUserRepository(ctrl)

	userRepo.EXPECT().
		GetByTelegramID(gomock.Any(), int64(42)).
		Return(nil, domain.ErrUserNotFound)
	userRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *domain.User) error {
			if user.TelegramID != 42 || user.Username != "budi" {
				t.Errorf("unexpected user: %+v", user)
			}
			if user.ID == "" {
				t.Error("expected a generated id")
			}
			if !user.Active {
				t.Error("expected user active")
			}
			return nil
		})

	uc := usecase.NewUserUseCase(userRepo, mocks.NewMockIDGenerator())

	user, created, err := uc.Register(context.Background(), 42, "budi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created=true")
	}
	if user.TelegramID != 42 {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestRegisterExistingUserIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewGoMockUserRepository(ctrl)

	existing := &domain.User{ID: "u1", TelegramID: 42, Username: "budi", Active: true}
	userRepo.EXPECT().
		GetByTelegramID(gomock.Any(), int64(42)).
		Return(existing, nil)

	uc := usecase.NewUserUseCase(userRepo, mocks.NewMockIDGenerator())

	user, created, err := uc.Register(context.Background(), 42, "budi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected created=false for existing user")
	}
	if user != existing {
		t.Errorf("expected the existing user back, got %+v", user)
	}
}

func TestRegisterPropagatesLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewGoMockUserRepository(ctrl)

	boom := errors.New("connection refused")
	userRepo.EXPECT().
		GetByTelegramID(gomock.Any(), int64(42)).
		Return(nil, boom)

	uc := usecase.NewUserUseCase(userRepo, mocks.NewMockIDGenerator())

	_, _, err := uc.Register(context.Background(), 42, "budi")
	if !errors.Is(err, boom) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}
