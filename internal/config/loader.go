package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	pkgerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "SHOWCASE_"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load resolves settings from defaults, then the file at path (if any), then
// SHOWCASE_* environment variables. The result is validated.
func Load(path string) (Settings, error) {
	return load(path, env.Options{Prefix: EnvPrefix})
}

// LoadWithEnv is Load with an explicit environment instead of the process one.
func LoadWithEnv(path string, environ map[string]string) (Settings, error) {
	return load(path, env.Options{Prefix: EnvPrefix, Environment: environ})
}

func load(path string, opts env.Options) (Settings, error) {
	s := Default()

	if path != "" {
		if err := decodeFile(path, &s); err != nil {
			return Settings{}, err
		}
	}

	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}

	if err := Validate(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func decodeFile(path string, s *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgerrors.NewParseError(path, 0, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, s); err != nil {
			return pkgerrors.NewParseError(path, extractLine(err), err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, s); err != nil {
			return pkgerrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		return pkgerrors.NewParseError(path, 0, fmt.Errorf("unsupported settings format %q", filepath.Ext(path)))
	}
	return nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
