package glsteps

import (
	"fmt"
	"os"
	"strings"
)

// LoadSource reads the shader source at path.
//
// A file that cannot be read yields "" and an error wrapping the os error.
// A file that contains only whitespace yields "" and ErrEmptySource.
func LoadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader source: %w", err)
	}
	src := string(data)
	if strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("load shader source %s: %w", path, ErrEmptySource)
	}
	return src, nil
}
