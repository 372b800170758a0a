package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/ini.v1"
)

// Runtime configuration. Populated by LoadConfig; tests set these directly.
var (
	Port          = 4000
	JWTSecret     = ""
	UploadPath    = "data/uploads"
	UsersFile     = "data/users.json"
	StorageFile   = "data/storage.json"
	ServerAddress = "" // when empty, URLs are derived from the incoming request
)

const defaultConfigTemplate = "PORT=4000\nJWT_SECRET=%s\nUPLOAD_DIR=data/uploads\nUSERS_FILE=data/users.json\nSTORAGE_FILE=data/storage.json\nSERVER_ADDRESS=\n"

// LoadConfig reads the ini config at configPath, creating it with a fresh
// random JWT secret on first run, then applies environment overrides.
func LoadConfig(configPath string) error {
	if err := ensureConfigFile(configPath); err != nil {
		return err
	}

	configMap, err := parseIniConfig(configPath)
	if err != nil {
		return err
	}

	for _, key := range []string{"PORT", "JWT_SECRET", "UPLOAD_DIR", "USERS_FILE", "STORAGE_FILE", "SERVER_ADDRESS"} {
		if value := os.Getenv(key); value != "" {
			configMap[key] = value
		}
	}

	if err := applyConfigMap(configMap); err != nil {
		return fmt.Errorf("apply config file %s: %w", configPath, err)
	}

	return nil
}

func ensureConfigFile(configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory %s: %w", configDir, err)
	}

	configFile, err := os.OpenFile(configPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("create config file %s: %w", configPath, err)
	}
	defer configFile.Close()

	if _, err := configFile.WriteString(fmt.Sprintf(defaultConfigTemplate, uuid.New().String())); err != nil {
		return fmt.Errorf("write default config file %s: %w", configPath, err)
	}

	return nil
}

func parseIniConfig(path string) (map[string]string, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parse ini config %s: %w", path, err)
	}

	configMap := make(map[string]string)
	for _, section := range cfg.Sections() {
		for _, key := range section.Keys() {
			configKey := strings.ToUpper(strings.TrimSpace(key.Name()))
			if configKey == "" {
				continue
			}
			configMap[configKey] = strings.TrimSpace(key.Value())
		}
	}

	return configMap, nil
}

func applyConfigMap(configMap map[string]string) error {
	for key, value := range configMap {
		if value == "" {
			continue
		}
		switch key {
		case "PORT":
			port, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid PORT %q: %w", value, err)
			}
			Port = port
		case "JWT_SECRET":
			JWTSecret = value
		case "UPLOAD_DIR":
			UploadPath = value
		case "USERS_FILE":
			UsersFile = value
		case "STORAGE_FILE":
			StorageFile = value
		case "SERVER_ADDRESS":
			ServerAddress = strings.TrimSuffix(value, "/")
		}
	}

	if JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}

	return nil
}
