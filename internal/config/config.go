// Package config contains utilities for loading configs
package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/go-playground/validator/v10"
)

const (
	configPathEnv      = "RECIPEBOX_CONFIG"
	configFilePath     = "/data/recipebox.yaml"
	appSecretBytes     = 32
	appSecretFilePerms = 0o600
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

const (
	defaultHostOrigin   = "http://localhost:8080"
	defaultListenAddr   = ":8080"
	defaultLogLevel     = "info"
	defaultSecretPath   = "/data/secret"
	defaultDBHost       = "localhost"
	defaultDBPort       = 5432
	defaultImagesVolume = "/data/media"
	defaultImagesPrefix = "/media"
)

type AppSecretValue string

func (a *AppSecretValue) Validate() error {
	if a == nil {
		return errors.New("secret should not be nil")
	}
	if len([]byte(*a)) < appSecretBytes {
		return errors.New("secret should be at least 32 bytes")
	}
	return nil
}

func splitFieldList(param string) []string {
	// "A,B,C" or "A B C"
	param = strings.ReplaceAll(param, " ", ",")
	parts := strings.Split(param, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// allOrNothing implements a cross-field validator for go-playground/validator.
//
// The validator succeeds only if all listed fields are zero or all listed
// fields are non-zero. It is attached to a placeholder field and reads the
// field names from its parameter (e.g. `validate:"allOrNothing=A B C"`).
// Nil pointers and interfaces count as zero; non-nil ones are dereferenced.
//
// A non-struct parent, an unknown field name or an empty list fails
// validation to surface misconfiguration.
func allOrNothing(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return true
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	names := splitFieldList(fl.Param())
	if len(names) == 0 {
		return false
	}

	hasZero := false
	hasNonZero := false

	for _, name := range names {
		f := parent.FieldByName(name)
		if !f.IsValid() {
			return false
		}

		for (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) && !f.IsNil() {
			f = f.Elem()
		}

		if f.IsZero() {
			hasZero = true
		} else {
			hasNonZero = true
		}

		if hasZero && hasNonZero {
			return false
		}
	}

	return true
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("allOrNothing", allOrNothing)
	return v
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		if e.Tag() != "allOrNothing" {
			continue
		}
		// "Config.Images.S3.Validate" -> "S3"
		parts := strings.Split(e.Namespace(), ".")
		var structName string
		//nolint:mnd
		if len(parts) >= 2 {
			structName = parts[len(parts)-2]
		}

		var fields string
		switch structName {
		case "Database":
			fields = "Port, Host, Database, User, and Password"
		case "S3":
			fields = "Endpoint, Bucket, AccessKey, and SecretKey"
		default:
			fields = "all related fields"
		}

		return fmt.Errorf(
			"%s configuration is incomplete: either all fields must be set (%s) or all must be empty",
			structName, fields)
	}

	return err
}

type AppSecret struct {
	Value   *AppSecretValue `yaml:"value" validate:"omitempty,validateFn"`
	Path    string          `yaml:"path" validate:"omitempty,filepath"`
	Version string          `yaml:"version"`
}

type Database struct {
	Port     uint16 `yaml:"port"`
	Host     string `yaml:"host" validate:"omitempty,hostname_rfc1123"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Port Host Database User Password"`
}

// URL returns the pgx connection string for the database.
func (d Database) URL() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s", d.User, d.Password, d.Host, d.Port, d.Database)
}

// S3 configures an S3 compatible bucket for uploaded images. When unset,
// images are written to the local volume.
type S3 struct {
	Endpoint  string `yaml:"endpoint" validate:"omitempty,hostname_port"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Region    string `yaml:"region"`
	UseSSL    bool   `yaml:"use_ssl"`
	// PublicURL is the base URL images are served from, defaulting to the
	// endpoint and bucket.
	PublicURL string `yaml:"public_url" validate:"omitempty,url"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Endpoint Bucket AccessKey SecretKey"`
}

func (s S3) Enabled() bool {
	return s.Endpoint != ""
}

type Images struct {
	Volume    string `yaml:"volume"`
	URLPrefix string `yaml:"url_prefix"`
	S3        S3     `yaml:"s3"`
}

type Config struct {
	AppSecret  AppSecret `yaml:"app_secret"`
	Images     Images    `yaml:"images"`
	Database   Database  `yaml:"database"`
	HostOrigin string    `yaml:"host_origin" validate:"url"`
	ListenAddr string    `yaml:"listen_addr" validate:"hostname_port"`
	LogLevel   string    `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Env        string    `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
}

func (c Config) IsProd() bool {
	return c.Env == EnvProd
}

func newAppSecret() (string, error) {
	token := make([]byte, appSecretBytes)
	if _, err := rand.Reader.Read(token); err != nil {
		return "", fmt.Errorf("creating app secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(token), nil
}

func loadAppSecret(config *Config) error {
	if config.AppSecret.Value != nil {
		return nil
	}

	var secret string
	if f1, err := os.Lstat(config.AppSecret.Path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking secret path: %w", err)
		}

		file, err := os.OpenFile(config.AppSecret.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, appSecretFilePerms)
		if err != nil {
			return fmt.Errorf("creating secret file: %w", err)
		}
		defer func() { _ = file.Close() }()

		secret, err = newAppSecret()
		if err != nil {
			return fmt.Errorf("generating new app secret: %w", err)
		}

		if _, err := file.WriteString(secret); err != nil {
			return fmt.Errorf("writing secret file: %w", err)
		}
	} else {
		if f1.IsDir() {
			return fmt.Errorf("expected file, got directory at %q", config.AppSecret.Path)
		}
		data, err := os.ReadFile(config.AppSecret.Path)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		secret = string(data)
	}
	val := AppSecretValue(secret)
	if err := val.Validate(); err != nil {
		return fmt.Errorf("secret at %q: %w", config.AppSecret.Path, err)
	}
	config.AppSecret.Value = &val
	return nil
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func loadConfigFromEnv() (Config, error) {
	conf := Config{
		Env:        loadWithDefault("ENV", EnvDev),
		HostOrigin: loadWithDefault("HOST_ORIGIN", defaultHostOrigin),
		ListenAddr: loadWithDefault("LISTEN_ADDR", defaultListenAddr),
		LogLevel:   loadWithDefault("LOG_LEVEL", defaultLogLevel),
	}

	// AppSecret
	conf.AppSecret = AppSecret{
		Path:    loadWithDefault("APP_SECRET_PATH", defaultSecretPath),
		Version: loadWithDefault("APP_SECRET_VERSION", "1"),
	}
	if v := AppSecretValue(loadWithDefault("APP_SECRET", "")); v != "" {
		conf.AppSecret.Value = &v
	}

	// Database
	conf.Database = Database{
		Host:     loadWithDefault("DATABASE_HOST", defaultDBHost),
		Database: loadWithDefault("DATABASE", ""),
		User:     loadWithDefault("DATABASE_USER", ""),
		Password: loadWithDefault("DATABASE_PASSWORD", ""),
	}
	databasePort := loadWithDefault("DATABASE_PORT", strconv.Itoa(defaultDBPort))
	port, err := strconv.ParseUint(databasePort, 10, 16)
	if err != nil {
		return conf, fmt.Errorf("invalid DATABASE_PORT (%q): %w", databasePort, err)
	}
	conf.Database.Port = uint16(port)

	// Images
	conf.Images = Images{
		Volume:    loadWithDefault("IMAGES_VOLUME", defaultImagesVolume),
		URLPrefix: loadWithDefault("IMAGES_URL_PREFIX", defaultImagesPrefix),
		S3: S3{
			Endpoint:  loadWithDefault("S3_ENDPOINT", ""),
			Bucket:    loadWithDefault("S3_BUCKET", ""),
			AccessKey: loadWithDefault("S3_ACCESS_KEY", ""),
			SecretKey: loadWithDefault("S3_SECRET_KEY", ""),
			Region:    loadWithDefault("S3_REGION", ""),
			PublicURL: loadWithDefault("S3_PUBLIC_URL", ""),
		},
	}
	useSSL := loadWithDefault("S3_USE_SSL", "false")
	b, err := strconv.ParseBool(useSSL)
	if err != nil {
		return conf, fmt.Errorf("invalid S3_USE_SSL (%q): %w", useSSL, err)
	}
	conf.Images.S3.UseSSL = b

	if err := newValidator().Struct(conf); err != nil {
		return conf, formatValidationError(err)
	}

	if err := loadAppSecret(&conf); err != nil {
		return conf, fmt.Errorf("loading app secret: %w", err)
	}

	return conf, nil
}

func loadConfigFromFile(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Set defaults
	if config.AppSecret.Path == "" {
		config.AppSecret.Path = defaultSecretPath
	}
	if config.AppSecret.Version == "" {
		config.AppSecret.Version = "1"
	}
	if config.Env == "" {
		config.Env = EnvDev
	}
	if config.HostOrigin == "" {
		config.HostOrigin = defaultHostOrigin
	}
	if config.ListenAddr == "" {
		config.ListenAddr = defaultListenAddr
	}
	if config.LogLevel == "" {
		config.LogLevel = defaultLogLevel
	}
	if config.Database.Host == "" {
		config.Database.Host = defaultDBHost
	}
	if config.Database.Port == 0 {
		config.Database.Port = defaultDBPort
	}
	if config.Images.Volume == "" {
		config.Images.Volume = defaultImagesVolume
	}
	if config.Images.URLPrefix == "" {
		config.Images.URLPrefix = defaultImagesPrefix
	}

	if err := newValidator().Struct(config); err != nil {
		return Config{}, formatValidationError(err)
	}

	if err := loadAppSecret(&config); err != nil {
		return Config{}, fmt.Errorf("loading app secret: %w", err)
	}

	return config, nil
}

func configFileExists(path string) bool {
	f, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return !f.IsDir()
}

// LoadConfig reads the YAML file named by RECIPEBOX_CONFIG (or the default
// path) when it exists, and the environment otherwise.
func LoadConfig() (Config, error) {
	path := loadWithDefault(configPathEnv, configFilePath)
	if configFileExists(path) {
		return loadConfigFromFile(path)
	}

	return loadConfigFromEnv()
}
