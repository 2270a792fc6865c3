package services

import (
	"errors"

	"meu_delivery/internal/logger"
	"meu_delivery/internal/models"
	"meu_delivery/internal/repositories"
	"meu_delivery/internal/services/dto"
	"meu_delivery/pkg/apperrors"

	"gorm.io/gorm"
)

// VehicleService keeps at most one active vehicle per courier and mirrors the
// active vehicle's type onto the courier row. Each status change runs in one
// transaction holding a lock on the courier row.
type VehicleService interface {
	RegisterVehicle(db *gorm.DB, courierID uint, plate string, vehicleType models.VehicleType) (uint, error)
	SetActiveVehicle(db *gorm.DB, courierID, vehicleID uint) error
	ListVehicles(db *gorm.DB, plate string) ([]dto.VehicleListItem, error)
	ListCourierVehicles(db *gorm.DB, courierID uint) ([]dto.CourierVehicle, error)
}

type VehicleServiceImpl struct {
	vehicleRepo repositories.VehicleRepository
	courierRepo repositories.CourierRepository
	// Plates unique across all couriers instead of per courier
	globalPlates bool
}

func NewVehicleService(
	vehicleRepo repositories.VehicleRepository,
	courierRepo repositories.CourierRepository,
	globalPlates bool,
) VehicleService {
	return &VehicleServiceImpl{
		vehicleRepo:  vehicleRepo,
		courierRepo:  courierRepo,
		globalPlates: globalPlates,
	}
}

func (s *VehicleServiceImpl) RegisterVehicle(db *gorm.DB, courierID uint, plate string, vehicleType models.VehicleType) (uint, error) {
	plate = models.NormalizePlate(plate)
	if !models.ValidPlate(plate) {
		return 0, apperrors.ErrInvalidPlate
	}
	if !vehicleType.Valid() {
		return 0, apperrors.ErrInvalidVehicleType
	}

	tx := db.Begin()
	if tx.Error != nil {
		return 0, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.courierRepo.LockByID(tx, courierID); err != nil {
		return 0, handleCourierError(err)
	}

	if err := s.checkPlate(tx, courierID, plate); err != nil {
		return 0, err
	}

	if err := s.vehicleRepo.DeactivateAll(tx, courierID); err != nil {
		return 0, apperrors.InternalError(err)
	}

	vehicle := &models.Vehicle{
		CourierID: courierID,
		Plate:     plate,
		Type:      vehicleType,
		Status:    models.VehicleStatusActive,
	}
	if err := s.vehicleRepo.Create(tx, vehicle); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return 0, apperrors.ErrDuplicatePlate
		}
		return 0, apperrors.InternalError(err)
	}

	if err := s.courierRepo.UpdateActiveVehicleType(tx, courierID, vehicleType); err != nil {
		return 0, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return 0, apperrors.InternalError(err)
	}

	logger.CtxInfo(db.Statement.Context, "Vehicle registered",
		"courier_id", courierID,
		"vehicle_id", vehicle.ID,
		"type", vehicleType.Label(),
	)
	return vehicle.ID, nil
}

func (s *VehicleServiceImpl) checkPlate(tx *gorm.DB, courierID uint, plate string) error {
	if s.globalPlates {
		exists, err := s.vehicleRepo.PlateExists(tx, plate)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if exists {
			return apperrors.ErrPlateTaken
		}
		return nil
	}

	exists, err := s.vehicleRepo.PlateExistsForCourier(tx, courierID, plate)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if exists {
		return apperrors.ErrDuplicatePlate
	}
	return nil
}

func (s *VehicleServiceImpl) SetActiveVehicle(db *gorm.DB, courierID, vehicleID uint) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.courierRepo.LockByID(tx, courierID); err != nil {
		return handleCourierError(err)
	}

	if err := s.vehicleRepo.DeactivateAll(tx, courierID); err != nil {
		return apperrors.InternalError(err)
	}

	// The vehicle must belong to this courier. On a miss the deferred
	// rollback restores the previous active vehicle.
	vehicle, err := s.vehicleRepo.Activate(tx, courierID, vehicleID)
	if err != nil {
		if errors.Is(err, repositories.ErrVehicleNotFound) {
			logger.CtxWarn(db.Statement.Context, "Vehicle does not belong to courier",
				"courier_id", courierID,
				"vehicle_id", vehicleID,
			)
			return apperrors.ErrVehicleNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.courierRepo.UpdateActiveVehicleType(tx, courierID, vehicle.Type); err != nil {
		return apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *VehicleServiceImpl) ListVehicles(db *gorm.DB, plate string) ([]dto.VehicleListItem, error) {
	vehicles, err := s.vehicleRepo.FindAll(db, plate)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.VehicleListItem, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, dto.VehicleListItem{
			ID:    v.ID,
			Plate: v.Plate,
			Type:  int(v.Type),
		})
	}
	return out, nil
}

func (s *VehicleServiceImpl) ListCourierVehicles(db *gorm.DB, courierID uint) ([]dto.CourierVehicle, error) {
	vehicles, err := s.vehicleRepo.FindByCourier(db, courierID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(vehicles) == 0 {
		return nil, apperrors.ErrNoVehicles
	}

	out := make([]dto.CourierVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, dto.CourierVehicle{
			ID:     v.ID,
			Plate:  v.Plate,
			Type:   v.Type.Label(),
			Active: v.Active(),
		})
	}
	return out, nil
}
