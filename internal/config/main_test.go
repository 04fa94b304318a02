package config

import (
	"os"
	"strings"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Unset all PLAYPROFILE vars to ensure clean test environment
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "PLAYPROFILE_") {
			kv := strings.SplitN(e, "=", 2)
			if err := os.Unsetenv(kv[0]); err != nil {
				panic("failed to unset env: " + err.Error())
			}
		}
	}

	// The watcher owns a goroutine; every test must stop it.
	goleak.VerifyTestMain(m)
}
