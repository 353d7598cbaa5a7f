package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/username/punchlog/backend/src/parsers"
	"github.com/username/punchlog/backend/src/processors"
	"github.com/username/punchlog/backend/src/utils"
)

const (
	DefaultInputDirName  = "attendance_logs"
	DefaultOutputDirName = "attendance_output"

	ErrorLogFileName   = "error_log.txt"
	JSONReportFileName = "attendance_summary.json"
	XLSXReportFileName = "attendance_summary.xlsx"
)

type AppConfig struct {
	InputDir      string `validate:"required"`
	OutputDirName string `validate:"required,excludesall=/\\"`
	LogLevel      string `validate:"required,oneof=debug info warn error"`

	LateEntryCutoff string `validate:"required,clock"`
	EarlyExitCutoff string `validate:"required,clock"`

	BreakGapThreshold time.Duration `validate:"gt=0"`
	BreakDeduction    time.Duration `validate:"gte=0"`

	XLSXSheetName string `validate:"required,max=31"`

	// Delimiter strategies tried on each log file, in order.
	ParseStrategies []string `validate:"required,min=1,dive,oneof=whitespace comma"`
}

var Cfg *AppConfig

// LoadConfig populates Cfg and stops the process on invalid configuration.
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	Cfg = cfg
	log.Printf("Configuration loaded: InputDir=%s, OutputDir=%s, LogLevel=%s, LateEntryCutoff=%s, EarlyExitCutoff=%s",
		Cfg.InputDir, Cfg.OutputDirName, Cfg.LogLevel, Cfg.LateEntryCutoff, Cfg.EarlyExitCutoff)
}

// Load reads .env (if present) and the environment, then validates the result.
func Load() (*AppConfig, error) {
	if errEnv := godotenv.Load(); errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults.")
	} else {
		log.Println(".env file loaded successfully.")
	}

	inputDir, err := defaultInputDir()
	if err != nil {
		return nil, err
	}

	cfg := &AppConfig{
		InputDir:          getEnv("ATTENDANCE_LOG_DIR", inputDir),
		OutputDirName:     getEnv("ATTENDANCE_OUTPUT_DIR", DefaultOutputDirName),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LateEntryCutoff:   getEnv("LATE_ENTRY_CUTOFF", "09:30"),
		EarlyExitCutoff:   getEnv("EARLY_EXIT_CUTOFF", "17:00"),
		BreakGapThreshold: getEnvAsDuration("BREAK_GAP_THRESHOLD", time.Hour),
		BreakDeduction:    getEnvAsDuration("BREAK_DEDUCTION", time.Hour),
		XLSXSheetName:     getEnv("XLSX_SHEET_NAME", "Sheet1"),
		ParseStrategies:   getEnvAsList("PARSE_STRATEGIES", parsers.DefaultStrategyOrder),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct constraints and reports the first violation in plain words.
func (c *AppConfig) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return mapValidationError(err)
	}
	return nil
}

// Policy converts the cutoffs and break settings for the aggregator.
// Call it on a validated config.
func (c *AppConfig) Policy() processors.AttendancePolicy {
	return processors.AttendancePolicy{
		LateEntryCutoff:   utils.MustParseClock(c.LateEntryCutoff),
		EarlyExitCutoff:   utils.MustParseClock(c.EarlyExitCutoff),
		BreakGapThreshold: c.BreakGapThreshold,
		BreakDeduction:    c.BreakDeduction,
	}
}

func defaultInputDir() (string, error) {
	dir, err := utils.ExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultInputDirName), nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseClock(fl.Field().String())
		return err == nil
	})
	return v
}

var configKeys = map[string]string{
	"InputDir":          "ATTENDANCE_LOG_DIR",
	"OutputDirName":     "ATTENDANCE_OUTPUT_DIR",
	"LogLevel":          "LOG_LEVEL",
	"LateEntryCutoff":   "LATE_ENTRY_CUTOFF",
	"EarlyExitCutoff":   "EARLY_EXIT_CUTOFF",
	"BreakGapThreshold": "BREAK_GAP_THRESHOLD",
	"BreakDeduction":    "BREAK_DEDUCTION",
	"XLSXSheetName":     "XLSX_SHEET_NAME",
	"ParseStrategies":   "PARSE_STRATEGIES",
}

func mapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	e := errs[0]
	field, _, _ := strings.Cut(e.Field(), "[")
	key := configKeys[field]
	if key == "" {
		key = field
	}
	switch e.Tag() {
	case "required":
		return fmt.Errorf("invalid configuration: %s is required", key)
	case "clock":
		return fmt.Errorf("invalid configuration: %s must be a HH:MM time, got '%v'", key, e.Value())
	case "oneof":
		return fmt.Errorf("invalid configuration: %s must be one of [%s], got '%v'", key, e.Param(), e.Value())
	default:
		return fmt.Errorf("invalid configuration: %s is invalid (%s), got '%v'", key, e.Tag(), e.Value())
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	valueStr := getEnv(key, strings.Join(fallback, ","))
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Duration value for %s not set or empty, using default: %s", key, fallback.String())
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}
