package config

import (
	env_utils "logweave/internal/util/env"
	"logweave/internal/util/logger"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting   bool
	AppRootPath string

	EnvMode env_utils.EnvMode `env:"ENV_MODE" required:"false"`
	Port    string            `env:"PORT"     required:"false"`
	// sessions
	JwtSecretKey      string `env:"JWT_SECRET_KEY"      required:"false"`
	SessionTTLMinutes int    `env:"SESSION_TTL_MINUTES" required:"false"`
	// uploads
	MaxUploadSizeMb    int64 `env:"MAX_UPLOAD_SIZE_MB"   required:"false"`
	MaxUploadFiles     int   `env:"MAX_UPLOAD_FILES"     required:"false"`
	MemoryLimitPercent int   `env:"MEMORY_LIMIT_PERCENT" required:"false"`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	appRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(appRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(appRoot)
		if parent == appRoot {
			break
		}

		appRoot = parent
	}

	env.AppRootPath = appRoot

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(appRoot, ".env"),
	}

	var loaded bool
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			loaded = true
			break
		}
	}

	if !loaded {
		// Everything runs in-process, so a missing .env is fine:
		// process environment and defaults cover every variable.
		log.Info("No .env file found, using process environment")
	}

	err = cleanenv.ReadEnv(&env)
	if err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.EnvMode == "" {
		env.EnvMode = env_utils.EnvModeDevelopment
	}
	if env.EnvMode != env_utils.EnvModeDevelopment && env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}
	log.Info("ENV_MODE loaded", "mode", env.EnvMode)

	if env.Port == "" {
		env.Port = "4010"
	}

	// sessions
	if env.SessionTTLMinutes <= 0 {
		env.SessionTTLMinutes = 240
	}

	// uploads
	if env.MaxUploadSizeMb <= 0 {
		env.MaxUploadSizeMb = 100
	}
	if env.MaxUploadFiles <= 0 {
		env.MaxUploadFiles = 10
	}
	if env.MemoryLimitPercent <= 0 || env.MemoryLimitPercent > 100 {
		env.MemoryLimitPercent = 90
	}

	log.Info("Environment variables loaded successfully!")
}
