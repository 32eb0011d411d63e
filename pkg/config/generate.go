package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/linkgen/pkg/errors"
)

const header = `# linkgen configuration
#
# Every value below is a default. Uncomment a line to change it.
# Flags and LINKGEN_* environment variables take precedence over this file.

`

// Marshal encodes cfg as TOML
func Marshal(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode config")
	}
	return data, nil
}

// GenerateConfigContent returns the default config file with its values
// commented out
func GenerateConfigContent() (string, error) {
	data, err := Marshal(Default())
	if err != nil {
		return "", err
	}
	return header + commentOutConfigValues(string(data)), nil
}

// commentOutConfigValues comments out every assignment line, keeping blank
// lines, comments and section headers
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "",
			strings.HasPrefix(trimmed, "#"),
			strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
