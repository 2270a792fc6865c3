package app

import (
	"fmt"

	"meu_delivery/internal/config"
	"meu_delivery/internal/logger"
	"meu_delivery/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// At most one active vehicle per courier. MySQL has no partial indexes, there
// the row lock taken by the vehicle service is the only guard.
const activeVehicleIndexSQL = `CREATE UNIQUE INDEX IF NOT EXISTS uq_veiculo_ativo
	ON entregador_veiculo (cod_id_entregador) WHERE num_status = 1`

// OpenDatabase opens the pool for the configured driver.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Database.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get *sql.DB from GORM: %w", err)
	}
	if cfg.Database.Driver == config.DriverSQLite {
		// One writer at a time; also keeps a shared in-memory database alive.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}

	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverMySQL:
		return mysql.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Migrate creates or updates the courier and vehicle tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Courier{}, &models.Vehicle{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	switch name := db.Dialector.Name(); name {
	case config.DriverPostgres, config.DriverSQLite:
		if err := db.Exec(activeVehicleIndexSQL).Error; err != nil {
			return fmt.Errorf("create active vehicle index: %w", err)
		}
	default:
		logger.Warn("Partial unique index not supported, skipping", "dialect", name)
	}
	return nil
}
