// Package testutil builds fixture trees and asserts on generated trees in tests.
package testutil

const (
	testDirPermissions  = 0o755
	testFilePermissions = 0o644
)
