//go:build !integration_test && !all_tests

package fitness_test

import (
	"testing"

	"go.uber.org/goleak"
)

// leak checks cover unit runs only, dockertest keeps goroutines alive
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
