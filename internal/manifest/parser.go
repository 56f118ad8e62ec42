package manifest

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	pkgerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

// DefaultPath is the pseudo path reported for the embedded manifest.
const DefaultPath = "<embedded>"

//go:embed default.yaml
var defaultManifest []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Default returns the embedded manifest. It panics only if the embedded file is broken.
func Default() *Manifest {
	m, err := Parse(DefaultPath, defaultManifest)
	if err != nil {
		panic(fmt.Sprintf("embedded manifest: %v", err))
	}
	return m
}

// Load reads a manifest file from disk, validates it, and returns it.
// An empty path yields the embedded manifest.
func Load(path string) (*Manifest, error) {
	if path == "" {
		return Parse(DefaultPath, defaultManifest)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates manifest bytes. path is only used in error messages.
func Parse(path string, data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, pkgerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

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
