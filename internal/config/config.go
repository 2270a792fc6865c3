package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver       string `yaml:"driver"`
		DSN          string `yaml:"url"`
		MaxOpenConns int    `yaml:"max_open_conns"`
		MaxIdleConns int    `yaml:"max_idle_conns"`
		AutoMigrate  bool   `yaml:"auto_migrate"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`

	Auth struct {
		// Require a bearer token on the courier PATCH routes
		ProtectCourierRoutes bool `yaml:"protect_courier_routes"`
	} `yaml:"auth"`

	Registration struct {
		// Check CPF/CNPJ verification digits on registration
		VerifyDocument bool `yaml:"verify_document"`
	} `yaml:"registration"`

	Vehicles struct {
		// Plates unique across all couriers instead of per courier
		GlobalPlateUniqueness bool `yaml:"global_plate_uniqueness"`
	} `yaml:"vehicles"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

var AppConfig *Config

// LoadConfig fills AppConfig. DATABASE_URL in the environment (or in .env)
// selects env mode, otherwise the YAML file at CONFIG_PATH is read.
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// Load reads the configuration without touching AppConfig.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := defaults()

	if os.Getenv("DATABASE_URL") == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}
		log.Printf("Loading config from %s", configPath)
		if err := loadFile(cfg, configPath); err != nil {
			return nil, err
		}
	} else {
		log.Println("Loading config from environment variables")
		if err := loadEnv(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	var cfg Config
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 3002
	cfg.Server.Env = "development"
	cfg.Database.Driver = DriverPostgres
	cfg.Database.MaxOpenConns = 10
	cfg.Database.MaxIdleConns = 5
	cfg.Database.AutoMigrate = true
	cfg.CORS.AllowedOrigins = []string{"*"}
	return &cfg
}

func loadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	setString(&cfg.Database.Driver, "DATABASE_DRIVER")
	setString(&cfg.Server.Host, "SERVER_HOST")
	setString(&cfg.Server.Env, "SERVER_ENV")
	setString(&cfg.JWT.Secret, "JWT_SECRET")

	ints := map[string]*int{
		"SERVER_PORT":             &cfg.Server.Port,
		"DATABASE_MAX_OPEN_CONNS": &cfg.Database.MaxOpenConns,
		"DATABASE_MAX_IDLE_CONNS": &cfg.Database.MaxIdleConns,
	}
	for key, dst := range ints {
		if err := setInt(dst, key); err != nil {
			return err
		}
	}

	bools := map[string]*bool{
		"DATABASE_AUTO_MIGRATE":            &cfg.Database.AutoMigrate,
		"AUTH_PROTECT_COURIER_ROUTES":      &cfg.Auth.ProtectCourierRoutes,
		"REGISTRATION_VERIFY_DOCUMENT":     &cfg.Registration.VerifyDocument,
		"VEHICLES_GLOBAL_PLATE_UNIQUENESS": &cfg.Vehicles.GlobalPlateUniqueness,
	}
	for key, dst := range bools {
		if err := setBool(dst, key); err != nil {
			return err
		}
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORS.AllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, o)
			}
		}
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("database.url is required"))
	}
	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unsupported database.driver %q", c.Database.Driver))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	}
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("invalid server.port %d", c.Server.Port))
	}
	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}
