package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"actionsense/internal/actionsense/detector"
	"actionsense/internal/actionsense/repository/memory"
	"actionsense/pkg/datemath"
	"actionsense/pkg/gemini"
)

// Mock logger for testing
type mockLogger struct {
	mu    sync.Mutex
	warns int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     { m.warned() }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   { m.warned() }
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func (m *mockLogger) warned() {
	m.mu.Lock()
	m.warns++
	m.mu.Unlock()
}

// Mock LLM extractor for testing
type mockExtractor struct {
	items []gemini.ActionItem
	err   error
	calls int
}

func (m *mockExtractor) ExtractActionItems(ctx context.Context, text string) ([]gemini.ActionItem, error) {
	m.calls++
	return m.items, m.err
}

func strPtr(s string) *string { return &s }

// Thursday 2025-11-13, 10:00 UTC.
var testNow = time.Date(2025, 11, 13, 10, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, extractor *mockExtractor, opts Options) (*implUseCase, *mockLogger) {
	t.Helper()

	resolver, err := datemath.NewResolverIn(time.UTC, datemath.DefaultRuleSet())
	if err != nil {
		t.Fatalf("NewResolverIn: %v", err)
	}
	det, err := detector.New(resolver, detector.DefaultRules())
	if err != nil {
		t.Fatalf("detector.New: %v", err)
	}

	l := &mockLogger{}
	repo, err := memory.New(l, 100, func() time.Time { return testNow })
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}

	uc := New(l, repo, det, resolver, nil, opts, func() time.Time { return testNow })
	if extractor != nil {
		uc.extractor = extractor
	}
	return uc, l
}
