// Package testutil holds shared helpers for gating slow test tiers.
package testutil

import (
	"os"
	"testing"
)

// SkipIfShort skips tests that need real backends when -short is set.
func SkipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
}

// RequireIntegration gates container-backed tests. They always skip in short
// mode, and on CI they additionally require INTEGRATION_TESTS=1 so that
// docker-less runners stay green.
func RequireIntegration(t *testing.T) {
	t.Helper()
	SkipIfShort(t)
	if os.Getenv("CI") != "" && os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("skipping integration test (set INTEGRATION_TESTS=1 to run)")
	}
}
