package repositories

import (
	"meu_delivery/internal/models"

	"gorm.io/gorm"
)

type VehicleRepository interface {
	Create(db *gorm.DB, vehicle *models.Vehicle) error

	// FindAll lists vehicles, optionally filtered by plate (case-insensitive).
	FindAll(db *gorm.DB, plate string) ([]models.Vehicle, error)
	FindByCourier(db *gorm.DB, courierID uint) ([]models.Vehicle, error)

	PlateExistsForCourier(db *gorm.DB, courierID uint, plate string) (bool, error)
	PlateExists(db *gorm.DB, plate string) (bool, error)

	DeactivateAll(db *gorm.DB, courierID uint) error
	// Activate turns on one vehicle of the courier. ErrVehicleNotFound when
	// no vehicle matches both ids.
	Activate(db *gorm.DB, courierID, vehicleID uint) (*models.Vehicle, error)
}

type vehicleRepository struct{}

func NewVehicleRepository() VehicleRepository {
	return &vehicleRepository{}
}

func (r *vehicleRepository) Create(db *gorm.DB, vehicle *models.Vehicle) error {
	return translateWriteError(db.Create(vehicle).Error)
}

func (r *vehicleRepository) FindAll(db *gorm.DB, plate string) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	query := db.Model(&models.Vehicle{})
	if plate != "" {
		query = query.Where("UPPER(dsc_placa) = ?", models.NormalizePlate(plate))
	}
	err := query.Order("cod_id_veiculo").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepository) FindByCourier(db *gorm.DB, courierID uint) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := db.Where("cod_id_entregador = ?", courierID).
		Order("cod_id_veiculo").
		Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepository) PlateExistsForCourier(db *gorm.DB, courierID uint, plate string) (bool, error) {
	return r.plateExists(db.Where("cod_id_entregador = ?", courierID), plate)
}

func (r *vehicleRepository) PlateExists(db *gorm.DB, plate string) (bool, error) {
	return r.plateExists(db, plate)
}

func (r *vehicleRepository) plateExists(db *gorm.DB, plate string) (bool, error) {
	var ids []uint
	err := db.Model(&models.Vehicle{}).
		Where("UPPER(dsc_placa) = ?", models.NormalizePlate(plate)).
		Limit(1).
		Pluck("cod_id_veiculo", &ids).Error
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

func (r *vehicleRepository) DeactivateAll(db *gorm.DB, courierID uint) error {
	return db.Model(&models.Vehicle{}).
		Where("cod_id_entregador = ?", courierID).
		Update("num_status", models.VehicleStatusInactive).Error
}

func (r *vehicleRepository) Activate(db *gorm.DB, courierID, vehicleID uint) (*models.Vehicle, error) {
	result := db.Model(&models.Vehicle{}).
		Where("cod_id_veiculo = ? AND cod_id_entregador = ?", vehicleID, courierID).
		Update("num_status", models.VehicleStatusActive)
	if result.Error != nil {
		return nil, translateWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrVehicleNotFound
	}

	var vehicle models.Vehicle
	if err := db.Where("cod_id_veiculo = ?", vehicleID).Take(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}
