package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"fuelform/internal/domain"
)

// MockBridge is a recording implementation of webapp.Bridge.
type MockBridge struct {
	mu   sync.Mutex
	sent []string

	// Counters for verification
	ExpandCallCount int32

	// Error injection
	ExpandError   error
	SendDataError error
}

// NewMockBridge creates a new mock bridge.
func NewMockBridge() *MockBridge {
	return &MockBridge{}
}

func (m *MockBridge) Expand(ctx context.Context) error {
	atomic.AddInt32(&m.ExpandCallCount, 1)
	return m.ExpandError
}

func (m *MockBridge) SendData(ctx context.Context, data string) error {
	if m.SendDataError != nil {
		return m.SendDataError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, data)
	return nil
}

// Sent returns the dispatched payloads.
func (m *MockBridge) Sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent...)
}

// MockRegistry is a VehicleRegistry with injectable results.
type MockRegistry struct {
	Vehicles  []domain.Vehicle
	ListError error
}

func (m *MockRegistry) List(ctx context.Context) ([]domain.Vehicle, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Vehicles, nil
}

// FailingContainer rejects every append.
type FailingContainer struct{}

func (FailingContainer) Append(ctx context.Context, text string) error {
	return ErrMockContainer
}

var (
	ErrMockBridgeDown = errors.New("mock: bridge unavailable")
	ErrMockRegistry   = errors.New("mock: registry unavailable")
	ErrMockContainer  = errors.New("mock: container detached")
)
