package glsteps_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	validVertex = `#version 410 core
layout (location = 0) in vec3 aPos;
void main() {
    gl_Position = vec4(aPos, 1.0);
}
`
	validFragment = `#version 410 core
out vec4 FragColor;
void main() {
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`
	brokenFragment = `#version 410 core
#error broken on purpose
void main() {}
`
)

// testLogger returns a debug-level logger writing into the returned buffer.
func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// writeShaders creates a shader directory holding files and returns its path.
func writeShaders(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	return dir
}

// allShaders is a complete, valid shader directory for every lesson.
func allShaders() map[string]string {
	return map[string]string{
		"shader.vert":    validVertex,
		"shader.frag":    validFragment,
		"shader_t1.frag": validFragment,
		"shader_t2.frag": validFragment,
	}
}

// nopLogger discards everything.
func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
