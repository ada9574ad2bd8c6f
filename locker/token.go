package locker

import (
	"fmt"
	"os"
	"strings"
)

// LoadToken reads the API bearer token from a plain text file. The entire
// stripped file content is the token.
func LoadToken(tokenFilePath string) (string, error) {
	content, err := os.ReadFile(tokenFilePath)
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}

	token := strings.TrimSpace(string(content))
	if token == "" {
		return "", fmt.Errorf("token file '%s' is empty", tokenFilePath)
	}

	return token, nil
}
