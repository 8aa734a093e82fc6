// Package testutils holds helpers shared by package tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"

	"github.com/nfrund/cardforge/internal/config"
)

// ConfigForTests builds a Config from the project's .env.test file with
// overrides applied on top. The process environment is never read, so a
// developer's GEMINI_API_KEY cannot reach the tests.
func ConfigForTests(t *testing.T, overrides map[string]string) *config.Config {
	t.Helper()

	env, err := godotenv.Read(filepath.Join(projectRoot(t), ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}
	for k, v := range overrides {
		env[k] = v
	}
	return config.Load(func(key string) string { return env[key] })
}

// projectRoot walks up from the working directory to the go.mod.
func projectRoot(t *testing.T) string {
	t.Helper()

	path, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}
}
