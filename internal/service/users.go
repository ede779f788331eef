package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Totarae/shortlink/internal/apperrors"
	"github.com/Totarae/shortlink/internal/model"
	"github.com/Totarae/shortlink/internal/storage"
)

// UserService регистрирует пользователей и выдаёт им API-ключи.
type UserService struct {
	Users  storage.UserStore
	Logger *zap.Logger
	newKey func() string
}

func NewUserService(users storage.UserStore, logger *zap.Logger) *UserService {
	return &UserService{Users: users, Logger: logger, newKey: uuid.NewString}
}

// Signup создаёт пользователя. Тариф по умолчанию hobby.
func (s *UserService) Signup(ctx context.Context, req model.SignupRequest) (*model.User, error) {
	tier := model.TierHobby
	if req.Tier != nil {
		tier = *req.Tier
	}

	user := &model.User{
		Email:  req.Email,
		Name:   req.Name,
		APIKey: s.newKey(),
		Tier:   tier,
	}
	if err := s.Users.InsertUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, apperrors.Conflict(msgUserExists, err)
		}
		return nil, apperrors.Internal(fmt.Errorf("signup: %w", err))
	}

	s.Logger.Info("Пользователь зарегистрирован", zap.Int64("user_id", user.ID), zap.String("tier", string(tier)))
	return user, nil
}

// FindByEmail возвращает пользователей с данным email или NotFound.
func (s *UserService) FindByEmail(ctx context.Context, email string) ([]*model.User, error) {
	users, err := s.Users.FindUsersByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("find users: %w", err))
	}
	if len(users) == 0 {
		return nil, apperrors.NotFound(msgUserNotFound)
	}
	return users, nil
}
