package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"sheetcrm/internal/repository"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendSheets   = "sheets"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// DefaultConfigFiles are tried in order when no --config path is given
var DefaultConfigFiles = []string{"sheetcrm.yaml", ".sheetcrm.yaml"}

// Config holds process configuration
type Config struct {
	Server     ServerConfig    `yaml:"server"`
	Log        LogConfig       `yaml:"log"`
	Store      StoreConfig     `yaml:"store"`
	Sheets     SheetsConfig    `yaml:"sheets"`
	DB         DBConfig        `yaml:"db"`
	Worksheets WorksheetConfig `yaml:"worksheets"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Environment string `yaml:"environment"`
}

type StoreConfig struct {
	Backend        string `yaml:"backend"`
	InitEmptySheet bool   `yaml:"init_empty_worksheets"`
}

type SheetsConfig struct {
	SpreadsheetID   string `yaml:"spreadsheet_id"`
	CredentialsFile string `yaml:"credentials_file"`
}

type WorksheetConfig struct {
	Users     string `yaml:"users"`
	Customers string `yaml:"customers"`
	Products  string `yaml:"products"`
	Bills     string `yaml:"bills"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	ws := repository.DefaultWorksheets
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Log:    LogConfig{Level: "info", Environment: "development"},
		Store:  StoreConfig{Backend: BackendSheets},
		Worksheets: WorksheetConfig{
			Users:     ws.Users,
			Customers: ws.Customers,
			Products:  ws.Products,
			Bills:     ws.Bills,
		},
	}
}

// Load reads .env, then the YAML file at path (or a default file when path
// is empty), then environment overrides
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	explicit := path != ""
	candidates := []string{path}
	if !explicit {
		candidates = DefaultConfigFiles
	}

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if errors.Is(err, os.ErrNotExist) && !explicit {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read config file %s: %w", p, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", p, err)
		}
		return nil
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Server.Port, "SERVER_PORT")
	setString(&c.Log.Environment, "APP_ENV")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Store.Backend, "STORE_BACKEND")
	setString(&c.Sheets.SpreadsheetID, "SPREADSHEET_ID")
	setString(&c.Sheets.CredentialsFile, "GOOGLE_CREDENTIALS_FILE")
	setString(&c.DB.Host, "DB_HOST")
	setString(&c.DB.Port, "DB_PORT")
	setString(&c.DB.User, "DB_USER")
	setString(&c.DB.Password, "DB_PASSWORD")
	setString(&c.DB.Name, "DB_NAME")
	setString(&c.Worksheets.Users, "WORKSHEET_USERS")
	setString(&c.Worksheets.Customers, "WORKSHEET_CUSTOMERS")
	setString(&c.Worksheets.Products, "WORKSHEET_PRODUCTS")
	setString(&c.Worksheets.Bills, "WORKSHEET_BILLS")

	if v := os.Getenv("INIT_EMPTY_WORKSHEETS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid INIT_EMPTY_WORKSHEETS %q: %w", v, err)
		}
		c.Store.InitEmptySheet = b
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate checks that the selected backend has what it needs
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendSheets:
		if c.Sheets.SpreadsheetID == "" {
			return errors.New("SPREADSHEET_ID is required for the sheets backend")
		}
		if c.Sheets.CredentialsFile == "" {
			return errors.New("GOOGLE_CREDENTIALS_FILE is required for the sheets backend")
		}
	case BackendPostgres:
		if _, err := c.DB.DSN(); err != nil {
			return err
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q (want sheets, postgres or memory)", c.Store.Backend)
	}

	ws := c.WorksheetNames()
	if ws.Users == "" || ws.Customers == "" || ws.Products == "" || ws.Bills == "" {
		return errors.New("worksheet names must not be empty")
	}
	return nil
}

// WorksheetNames converts the configured tab names for the repository layer
func (c *Config) WorksheetNames() repository.Worksheets {
	return repository.Worksheets{
		Users:     c.Worksheets.Users,
		Customers: c.Worksheets.Customers,
		Products:  c.Worksheets.Products,
		Bills:     c.Worksheets.Bills,
	}
}
