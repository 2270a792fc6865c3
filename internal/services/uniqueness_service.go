package services

import (
	"strings"

	"meu_delivery/internal/document"
	"meu_delivery/internal/logger"
	"meu_delivery/internal/repositories"
	"meu_delivery/internal/services/dto"
	"meu_delivery/pkg/apperrors"

	"gorm.io/gorm"
)

type UniquenessService interface {
	// CheckAvailability returns nil when none of the given fields belongs to a
	// courier yet. On conflict the first field in the order document, phone,
	// email decides the error.
	CheckAvailability(db *gorm.DB, req *dto.CheckAvailabilityRequest) error
}

type UniquenessServiceImpl struct {
	courierRepo repositories.CourierRepository
}

func NewUniquenessService(courierRepo repositories.CourierRepository) UniquenessService {
	return &UniquenessServiceImpl{courierRepo: courierRepo}
}

type uniquenessCheck struct {
	field    string
	value    string
	exists   func(db *gorm.DB, value string) (bool, error)
	conflict *apperrors.AppError
}

func (s *UniquenessServiceImpl) CheckAvailability(db *gorm.DB, req *dto.CheckAvailabilityRequest) error {
	checks := []uniquenessCheck{
		{"cpfCnpj", document.Normalize(req.Document), s.courierRepo.ExistsByDocument, apperrors.ErrDocumentTaken},
		{"celular", strings.TrimSpace(req.Phone), s.courierRepo.ExistsByPhone, apperrors.ErrPhoneTaken},
		{"email", strings.TrimSpace(req.Email), s.courierRepo.ExistsByEmail, apperrors.ErrEmailTaken},
	}

	var (
		first    *apperrors.AppError
		provided int
		taken    []string
	)
	for _, check := range checks {
		if check.value == "" {
			continue
		}
		provided++

		exists, err := check.exists(db, check.value)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if exists {
			taken = append(taken, check.field)
			if first == nil {
				first = check.conflict
			}
		}
	}

	if provided == 0 {
		return apperrors.ErrNoFieldToCheck
	}
	if first != nil {
		logger.CtxInfo(db.Statement.Context, "Registration data already in use", "fields", taken)
		return first
	}
	return nil
}
