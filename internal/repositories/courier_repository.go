package repositories

import (
	"errors"

	"meu_delivery/internal/models"

	"gorm.io/gorm"
)

type CourierRepository interface {
	Create(db *gorm.DB, courier *models.Courier) error
	FindByID(db *gorm.DB, id uint) (*models.Courier, error)
	FindByEmail(db *gorm.DB, email string) (*models.Courier, error)

	// FindAll returns every courier without the password hash and photos.
	FindAll(db *gorm.DB) ([]models.Courier, error)

	ExistsByEmail(db *gorm.DB, email string) (bool, error)
	ExistsByPhone(db *gorm.DB, phone string) (bool, error)
	ExistsByDocument(db *gorm.DB, document string) (bool, error)

	// LockByID takes a row lock on the courier for the rest of the transaction.
	LockByID(db *gorm.DB, id uint) error

	UpdateAvailability(db *gorm.DB, id uint, availability models.Availability) error
	UpdateActiveVehicleType(db *gorm.DB, id uint, vehicleType models.VehicleType) error
}

type courierRepository struct{}

func NewCourierRepository() CourierRepository {
	return &courierRepository{}
}

func (r *courierRepository) Create(db *gorm.DB, courier *models.Courier) error {
	return translateWriteError(db.Create(courier).Error)
}

func (r *courierRepository) FindByID(db *gorm.DB, id uint) (*models.Courier, error) {
	var courier models.Courier
	if err := db.First(&courier, "cod_id_entregador = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourierNotFound
		}
		return nil, err
	}
	return &courier, nil
}

func (r *courierRepository) FindByEmail(db *gorm.DB, email string) (*models.Courier, error) {
	var courier models.Courier
	err := db.Select("cod_id_entregador", "dsc_nome", "dsc_email", "dsc_senha").
		Where("dsc_email = ?", email).
		Take(&courier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourierNotFound
		}
		return nil, err
	}
	return &courier, nil
}

func (r *courierRepository) FindAll(db *gorm.DB) ([]models.Courier, error) {
	var couriers []models.Courier
	err := db.Omit("dsc_senha", "img_cnh", "img_entregador").
		Order("cod_id_entregador").
		Find(&couriers).Error
	return couriers, err
}

func (r *courierRepository) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	return r.exists(db, "dsc_email", email)
}

func (r *courierRepository) ExistsByPhone(db *gorm.DB, phone string) (bool, error) {
	return r.exists(db, "dsc_celular", phone)
}

func (r *courierRepository) ExistsByDocument(db *gorm.DB, document string) (bool, error) {
	return r.exists(db, "dsc_cpf_cnpj", document)
}

func (r *courierRepository) exists(db *gorm.DB, column, value string) (bool, error) {
	var ids []uint
	err := db.Model(&models.Courier{}).
		Where(column+" = ?", value).
		Limit(1).
		Pluck("cod_id_entregador", &ids).Error
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

func (r *courierRepository) LockByID(db *gorm.DB, id uint) error {
	var courier models.Courier
	err := forUpdate(db).
		Select("cod_id_entregador").
		Where("cod_id_entregador = ?", id).
		Take(&courier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourierNotFound
		}
		return err
	}
	return nil
}

func (r *courierRepository) UpdateAvailability(db *gorm.DB, id uint, availability models.Availability) error {
	return db.Model(&models.Courier{}).
		Where("cod_id_entregador = ?", id).
		Update("num_disponivel", availability).Error
}

func (r *courierRepository) UpdateActiveVehicleType(db *gorm.DB, id uint, vehicleType models.VehicleType) error {
	return db.Model(&models.Courier{}).
		Where("cod_id_entregador = ?", id).
		Update("tipo_de_veiculo", vehicleType).Error
}
