package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kestrelvision/kestreld/pkg/log"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	vendorName     = "kestrelvision"
	appName        = "kestreld"
	configFileName = "config.json"

	// fallback FOV for sources which do not specify one, a typical
	// webcam diagonal in degrees
	defaultFOV = 70.0
)

var fs afero.Fs = afero.NewOsFs()

// Load resolves, reads and validates the daemon's config file.
func Load() (Values, error) {
	var values Values

	configPath, err := resolveConfigPath()
	if err != nil {
		return Values{}, err
	}

	log.Info("Resolved config file location: %s", configPath)
	file, err := readConfigFile(configPath)
	if err != nil {
		return Values{}, err
	}

	if err := unmarshal(file, &values); err != nil {
		return Values{}, err
	}

	if err = values.RunValidate(); err != nil {
		return Values{}, err
	}

	applyDefaultSourceSettings(values.Sources)

	return values, nil
}

func applyDefaultSourceSettings(sources []Source) {
	for i := range sources {
		if sources[i].FOV == 0 {
			sources[i].FOV = defaultFOV
		}
	}
}

var readConfigFile = func(path string) ([]byte, error) {
	return afero.ReadFile(fs, path)
}

func unmarshal(content []byte, values *Values) error {
	err := json.Unmarshal(content, values)
	if err != nil {
		return errors.Errorf("parsing configuration error: %v", err)
	}
	return nil
}

func resolveConfigPath() (string, error) {
	configPath := os.Getenv("KESTREL_CONFIG")
	if len(configPath) > 0 {
		return configPath, nil
	}

	configParentDir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to resolve %s config file location: %w", configFileName, err)
	}

	return filepath.Join(
		configParentDir,
		vendorName,
		appName,
		configFileName), nil
}

var userConfigDir = func() (string, error) {
	return os.UserConfigDir()
}
