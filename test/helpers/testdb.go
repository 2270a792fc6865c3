package helpers

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"meu_delivery/internal/app"
	"meu_delivery/internal/auth"
	"meu_delivery/internal/config"
	"meu_delivery/internal/document"
	"meu_delivery/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultPassword is the plain password of couriers made by CreateCourier.
const DefaultPassword = "senha123"

var (
	dbSeq      atomic.Int64
	fixtureSeq atomic.Int64
)

// TestConfig returns a valid configuration backed by an in-memory SQLite database.
func TestConfig(dsn string) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 3002
	cfg.Server.Env = "test"
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.DSN = dsn
	cfg.Database.AutoMigrate = true
	cfg.JWT.Secret = "test-secret"
	cfg.CORS.AllowedOrigins = []string{"*"}
	return cfg
}

// NewTestDB opens a private in-memory database with the schema migrated.
// It is closed when the test ends.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:meu_delivery_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := app.OpenDatabase(TestConfig(dsn))
	require.NoError(t, err, "open test database")
	require.NoError(t, app.Migrate(db), "migrate test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CreateCourier inserts a courier with unique email, phone and document.
// mods run before the insert.
func CreateCourier(t *testing.T, db *gorm.DB, mods ...func(*models.Courier)) *models.Courier {
	t.Helper()

	hash, err := auth.HashPassword(DefaultPassword)
	require.NoError(t, err)

	n := fixtureSeq.Add(1)
	courier := &models.Courier{
		Name:            fmt.Sprintf("Entregador %d", n),
		Email:           fmt.Sprintf("entregador%d@test.com", n),
		PasswordHash:    hash,
		BirthDate:       time.Date(1990, time.May, 10, 0, 0, 0, 0, time.UTC),
		Phone:           fmt.Sprintf("(11) 9%04d-0000", n),
		Document:        fmt.Sprintf("%011d", n),
		DocumentType:    document.TypeCPF,
		LicenseNumber:   "12345678900",
		LicenseRegistry: "98765432100",
		PixKey:          fmt.Sprintf("pix%d@test.com", n),
		AvailableDays:   datatypes.JSON(`["Seg","Ter"]`),
		OperatingHours:  "08:00 - 18:00;09:00 - 13:00",
		LicensePhoto:    []byte("cnh"),
		Photo:           []byte("foto"),
		Status:          models.CourierStatusActive,
		CreatedAt:       time.Now(),
		Availability:    models.Available,
	}
	for _, mod := range mods {
		mod(courier)
	}

	require.NoError(t, db.Create(courier).Error, "create courier fixture")
	return courier
}

// CreateVehicle inserts a vehicle as given, without touching the courier's
// other vehicles.
func CreateVehicle(t *testing.T, db *gorm.DB, courierID uint, plate string, vehicleType models.VehicleType, status models.VehicleStatus) *models.Vehicle {
	t.Helper()

	vehicle := &models.Vehicle{
		CourierID: courierID,
		Plate:     models.NormalizePlate(plate),
		Type:      vehicleType,
		Status:    status,
	}
	require.NoError(t, db.Create(vehicle).Error, "create vehicle fixture")
	return vehicle
}

// ReloadCourier reads the courier row back from the store.
func ReloadCourier(t *testing.T, db *gorm.DB, id uint) *models.Courier {
	t.Helper()

	var courier models.Courier
	require.NoError(t, db.First(&courier, "cod_id_entregador = ?", id).Error)
	return &courier
}

// CourierVehicles reads every vehicle of the courier ordered by id.
func CourierVehicles(t *testing.T, db *gorm.DB, courierID uint) []models.Vehicle {
	t.Helper()

	var vehicles []models.Vehicle
	require.NoError(t, db.Where("cod_id_entregador = ?", courierID).Order("cod_id_veiculo").Find(&vehicles).Error)
	return vehicles
}

// CountActive returns how many vehicles of the courier are active.
func CountActive(vehicles []models.Vehicle) int {
	n := 0
	for _, v := range vehicles {
		if v.Active() {
			n++
		}
	}
	return n
}
