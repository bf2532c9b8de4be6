// Package testutil provides test helpers for toolcheck (e.g. MockRegistry).
package testutil

import (
	"github.com/skosovsky/toolcheck"
)

// MockRegistry is a configurable Registry implementation for tests.
type MockRegistry struct {
	GetFn  func(name string) (*toolcheck.Definition, bool)
	ListFn func() []*toolcheck.Definition
}

// GetDefinition runs GetFn if set, otherwise reports not found.
func (m *MockRegistry) GetDefinition(name string) (*toolcheck.Definition, bool) {
	if m.GetFn != nil {
		return m.GetFn(name)
	}
	return nil, false
}

// GetDefinitions runs ListFn if set, otherwise returns nil.
func (m *MockRegistry) GetDefinitions() []*toolcheck.Definition {
	if m.ListFn != nil {
		return m.ListFn()
	}
	return nil
}

// Ensure MockRegistry implements Registry.
var _ toolcheck.Registry = (*MockRegistry)(nil)
