package fixtures

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of the fixtures seed file.
type Loader struct {
	filePath string
}

// NewLoader creates a fixtures loader.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the seed YAML.
func (l *Loader) Load() (*SeedFile, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures file: %w", err)
	}

	// Strip environment template placeholders ({{DOCVERSE_VAR_...}})
	// left over from the deployment tooling.
	data = stripTemplateVariables(data)

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures yaml: %w", err)
	}

	return &seed, nil
}

// stripTemplateVariables replaces {{...}} placeholders with empty strings.
func stripTemplateVariables(data []byte) []byte {
	re := regexp.MustCompile(`\{\{[^}]+\}\}`)
	return re.ReplaceAll(data, []byte(`""`))
}
