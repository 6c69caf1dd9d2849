// Package testing is imported for its side effect: it flips the binaries into
// test mode before any test in the importing package runs.
package testing

import (
	"os"

	"github.com/vendordesk/vendordesk/internal/app"
)

func init() {
	_ = os.Setenv(app.TestModeEnv, "1")
}
