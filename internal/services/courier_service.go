package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"meu_delivery/internal/auth"
	"meu_delivery/internal/document"
	"meu_delivery/internal/logger"
	"meu_delivery/internal/models"
	"meu_delivery/internal/repositories"
	"meu_delivery/internal/services/dto"
	"meu_delivery/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Birth dates arrive as ISO dates from the form, RFC 3339 from other clients.
var birthDateLayouts = []string{dateLayout, time.RFC3339, "02/01/2006"}

type CourierService interface {
	ListCouriers(db *gorm.DB) ([]dto.CourierSummary, error)
	GetCourier(db *gorm.DB, courierID uint) (*dto.CourierDetail, error)

	// Register inserts a courier. Uniqueness is checked by UniquenessService
	// beforehand; the unique indexes reject a racing duplicate.
	Register(db *gorm.DB, req *dto.RegisterCourierRequest) (uint, error)

	SetAvailability(db *gorm.DB, courierID uint, availability int) error
}

type CourierServiceImpl struct {
	courierRepo    repositories.CourierRepository
	verifyDocument bool
	now            func() time.Time
}

func NewCourierService(courierRepo repositories.CourierRepository, verifyDocument bool) CourierService {
	return &CourierServiceImpl{
		courierRepo:    courierRepo,
		verifyDocument: verifyDocument,
		now:            time.Now,
	}
}

func (s *CourierServiceImpl) ListCouriers(db *gorm.DB) ([]dto.CourierSummary, error) {
	couriers, err := s.courierRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.CourierSummary, 0, len(couriers))
	for i := range couriers {
		out = append(out, toCourierSummary(&couriers[i]))
	}
	return out, nil
}

func (s *CourierServiceImpl) GetCourier(db *gorm.DB, courierID uint) (*dto.CourierDetail, error) {
	courier, err := s.courierRepo.FindByID(db, courierID)
	if err != nil {
		return nil, handleCourierError(err)
	}

	return &dto.CourierDetail{
		ID:                courier.ID,
		Name:              courier.Name,
		Email:             courier.Email,
		Photo:             encodePhoto(courier.Photo),
		Availability:      int(courier.Availability),
		ActiveVehicleType: vehicleTypePtr(courier.ActiveVehicleType),
	}, nil
}

func (s *CourierServiceImpl) Register(db *gorm.DB, req *dto.RegisterCourierRequest) (uint, error) {
	doc := document.Normalize(req.Document)
	if len(doc) != 11 && len(doc) != 14 {
		return 0, apperrors.ErrInvalidDocument
	}
	if s.verifyDocument && !document.Valid(doc) {
		return 0, apperrors.ErrInvalidDocument
	}

	birthDate, ok := parseBirthDate(req.BirthDate)
	if !ok {
		return 0, apperrors.ErrInvalidBirthDate
	}

	licensePhoto, ok := decodePhoto(req.LicensePhoto)
	if !ok {
		return 0, apperrors.ErrInvalidPhoto.WithDetails(map[string]string{"field": "imagemCNH"})
	}
	photo, ok := decodePhoto(req.Photo)
	if !ok {
		return 0, apperrors.ErrInvalidPhoto.WithDetails(map[string]string{"field": "imagemEntregador"})
	}

	days, err := json.Marshal([]string(req.AvailableDays))
	if err != nil {
		return 0, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}

	courier := &models.Courier{
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.TrimSpace(req.Email),
		PasswordHash:    hash,
		BirthDate:       birthDate,
		Phone:           strings.TrimSpace(req.Phone),
		Document:        doc,
		DocumentType:    document.Classify(doc),
		LicenseNumber:   strings.TrimSpace(req.LicenseNumber),
		LicenseRegistry: strings.TrimSpace(req.LicenseRegistry),
		PixKey:          strings.TrimSpace(req.PixKey),
		AvailableDays:   datatypes.JSON(days),
		OperatingHours:  strings.TrimSpace(req.OperatingHours),
		LicensePhoto:    licensePhoto,
		Photo:           photo,
		Status:          models.CourierStatusActive,
		CreatedAt:       s.now(),
		Availability:    models.Available,
	}

	if err := s.courierRepo.Create(db, courier); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			logger.CtxWarn(db.Statement.Context, "Courier insert hit a unique index", "error", err.Error())
			return 0, apperrors.ErrCourierConflict
		}
		return 0, apperrors.InternalError(err)
	}

	logger.CtxInfo(db.Statement.Context, "Courier registered",
		"courier_id", courier.ID,
		"document_type", courier.DocumentType.String(),
	)
	return courier.ID, nil
}

func (s *CourierServiceImpl) SetAvailability(db *gorm.DB, courierID uint, availability int) error {
	value := models.Availability(availability)
	if !value.Valid() {
		return apperrors.ErrInvalidAvailability
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.courierRepo.LockByID(tx, courierID); err != nil {
		return handleCourierError(err)
	}
	if err := s.courierRepo.UpdateAvailability(tx, courierID, value); err != nil {
		return apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func handleCourierError(err error) error {
	if errors.Is(err, repositories.ErrCourierNotFound) {
		return apperrors.ErrCourierNotFound
	}
	return apperrors.InternalError(err)
}

func parseBirthDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// decodeDays reads the stored list. Rows written by older versions may hold
// a plain comma separated string.
func decodeDays(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var days []string
	if err := json.Unmarshal(raw, &days); err == nil {
		return days
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = string(raw)
	}
	out := []string{}
	for _, day := range strings.Split(s, ",") {
		if day = strings.TrimSpace(day); day != "" {
			out = append(out, day)
		}
	}
	return out
}

func vehicleTypePtr(t *models.VehicleType) *int {
	if t == nil {
		return nil
	}
	v := int(*t)
	return &v
}

func toCourierSummary(c *models.Courier) dto.CourierSummary {
	return dto.CourierSummary{
		ID:                c.ID,
		Name:              c.Name,
		Email:             c.Email,
		BirthDate:         c.BirthDate.Format(dateLayout),
		Phone:             c.Phone,
		Document:          c.Document,
		LicenseNumber:     c.LicenseNumber,
		LicenseRegistry:   c.LicenseRegistry,
		PixKey:            c.PixKey,
		AvailableDays:     decodeDays(c.AvailableDays),
		OperatingHours:    c.OperatingHours,
		Status:            int(c.Status),
		Availability:      int(c.Availability),
		ActiveVehicleType: vehicleTypePtr(c.ActiveVehicleType),
		CreatedAt:         c.CreatedAt.Format(time.RFC3339),
	}
}
