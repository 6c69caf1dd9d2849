package app

import "os"

// TestModeEnv, when set to "1", makes the binaries return before dialing
// Postgres or Redis so `go test ./...` can build and run every main package.
const TestModeEnv = "VENDORDESK_TEST_MODE"

// InTestMode reports whether the application should skip runtime side effects.
func InTestMode() bool {
	return os.Getenv(TestModeEnv) == "1"
}
