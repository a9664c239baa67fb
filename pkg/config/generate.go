package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/appin/pkg/errors"
)

// GenerateConfigContent renders the resolved default settings as a TOML
// document with every value commented out, ready to be saved as a user
// config file and edited selectively.
func GenerateConfigContent() (string, error) {
	data, err := toml.Marshal(Default())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal default settings")
	}

	header := "# appin configuration. Uncomment and edit the values you want\n" +
		"# to override; everything else keeps its default.\n\n"
	return header + commentOutConfigValues(string(data)), nil
}

// commentOutConfigValues comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
