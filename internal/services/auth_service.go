package services

import (
	"errors"
	"strings"

	"meu_delivery/internal/auth"
	"meu_delivery/internal/logger"
	"meu_delivery/internal/repositories"
	"meu_delivery/internal/services/dto"
	"meu_delivery/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	courierRepo repositories.CourierRepository
	tokens      *auth.TokenManager
}

func NewAuthService(courierRepo repositories.CourierRepository, tokens *auth.TokenManager) AuthService {
	return &AuthServiceImpl{
		courierRepo: courierRepo,
		tokens:      tokens,
	}
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	courier, err := s.courierRepo.FindByEmail(db, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrCourierNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, courier.PasswordHash) {
		logger.CtxWarn(db.Statement.Context, "Login with wrong password", "courier_id", courier.ID)
		return nil, apperrors.ErrWrongPassword
	}

	token, err := s.tokens.Generate(courier.ID, courier.Name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		Courier: dto.LoginCourier{
			ID:    courier.ID,
			Name:  courier.Name,
			Email: courier.Email,
		},
	}, nil
}
