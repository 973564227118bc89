// Package mocks provides in-memory implementations of the port interfaces
// for testing. Controllers depend on the ports, so swapping the real
// Redis store or REST gateway for these mocks is a constructor argument.
package mocks

import (
	"context"
	"sync"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

// MockKeyValueStore implements ports.KeyValueStore in memory. Delete is
// atomic under the same mutex the readers take, matching the contract of
// the Redis adapter.
type MockKeyValueStore struct {
	mu   sync.RWMutex
	data map[string]string

	// Call tracking for verification
	SetCalls    int
	DeleteCalls [][]string
}

var _ ports.KeyValueStore = (*MockKeyValueStore)(nil)

func NewMockKeyValueStore() *MockKeyValueStore {
	return &MockKeyValueStore{data: make(map[string]string)}
}

func (m *MockKeyValueStore) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	return value, ok
}

func (m *MockKeyValueStore) Set(_ context.Context, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.SetCalls++
}

func (m *MockKeyValueStore) Delete(_ context.Context, keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	m.DeleteCalls = append(m.DeleteCalls, keys)
}

// Len reports how many keys currently hold a value.
func (m *MockKeyValueStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
