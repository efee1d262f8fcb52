package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"diarykeeper/internal/domain/note"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

const (
	defaultEnv          = EnvLocal
	defaultDataDir      = ".diary"
	defaultDBFile       = "diary.db"
	defaultDriver       = DriverSQLite
	defaultWelcomeDwell = 2 * time.Second
	defaultBackupFile   = "diary-backup.json"
	defaultMaxImage     = 5 << 20
	defaultTitlePolicy  = string(note.TitleExplicit)
)

type Config struct {
	Env           string        `mapstructure:"app_env"`
	LogLevel      string        `mapstructure:"log_level"`
	DataDir       string        `mapstructure:"data_dir"`
	DataPath      string        `mapstructure:"data_path"`
	StorageDriver string        `mapstructure:"storage_driver"`
	WelcomeDwell  time.Duration `mapstructure:"welcome_dwell"`
	BackupFile    string        `mapstructure:"backup_file"`
	MaxImageBytes int64         `mapstructure:"max_image_bytes"`
	TitlePolicy   string        `mapstructure:"note_title_policy"`
	Pin           string        `mapstructure:"diary_pin"`
}

// MustLoad загружает конфигурацию и паникует при ошибке.
func MustLoad(configFile string) *Config {
	cfg, err := Load(viper.New(), configFile)
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает .env (если есть), переменные окружения и YAML-файл конфигурации.
// Пустой configFile означает <DATA_DIR>/config.yaml, если такой файл существует.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("DATA_DIR", "")
	v.SetDefault("DATA_PATH", "")
	v.SetDefault("STORAGE_DRIVER", defaultDriver)
	v.SetDefault("WELCOME_DWELL", defaultWelcomeDwell)
	v.SetDefault("BACKUP_FILE", defaultBackupFile)
	v.SetDefault("MAX_IMAGE_BYTES", defaultMaxImage)
	v.SetDefault("NOTE_TITLE_POLICY", defaultTitlePolicy)
	v.SetDefault("DIARY_PIN", "")

	dataDir, err := resolveDataDir(v.GetString("DATA_DIR"))
	if err != nil {
		return nil, err
	}

	if err := readConfigFile(v, configFile, dataDir); err != nil {
		return nil, err
	}

	// файл конфигурации может переопределить каталог данных
	if dir := v.GetString("DATA_DIR"); dir != "" {
		if dataDir, err = resolveDataDir(dir); err != nil {
			return nil, err
		}
	}

	dataPath := expandHome(v.GetString("DATA_PATH"))
	if dataPath == "" {
		dataPath = filepath.Join(dataDir, defaultDBFile)
	}

	cfg := &Config{
		Env:           strings.ToLower(v.GetString("APP_ENV")),
		LogLevel:      v.GetString("LOG_LEVEL"),
		DataDir:       dataDir,
		DataPath:      dataPath,
		StorageDriver: strings.ToLower(v.GetString("STORAGE_DRIVER")),
		WelcomeDwell:  v.GetDuration("WELCOME_DWELL"),
		BackupFile:    v.GetString("BACKUP_FILE"),
		MaxImageBytes: v.GetInt64("MAX_IMAGE_BYTES"),
		TitlePolicy:   strings.ToLower(v.GetString("NOTE_TITLE_POLICY")),
		Pin:           v.GetString("DIARY_PIN"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func readConfigFile(v *viper.Viper, configFile, dataDir string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("ошибка чтения файла конфигурации %s: %w", configFile, err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
	}
	return nil
}

func resolveDataDir(dir string) (string, error) {
	if dir != "" {
		return expandHome(dir), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, defaultDataDir), nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("app_env должен быть local, dev или prod, получено %q", c.Env)
	}

	switch c.StorageDriver {
	case DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("storage_driver должен быть sqlite или memory, получено %q", c.StorageDriver)
	}

	if _, err := note.ParseTitlePolicy(c.TitlePolicy); err != nil {
		return fmt.Errorf("note_title_policy: %w", err)
	}
	if c.MaxImageBytes <= 0 {
		return fmt.Errorf("max_image_bytes должен быть положительным")
	}
	if c.WelcomeDwell < 0 {
		return fmt.Errorf("welcome_dwell не может быть отрицательным")
	}
	if c.BackupFile == "" {
		return fmt.Errorf("backup_file не может быть пустым")
	}
	return nil
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal
}
