package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/noah-isme/scholarship-match-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-match-api/pkg/errors"
)

type fakeExplainer struct {
	calls    int32
	inFlight int32
	peak     int32
	delay    time.Duration
	failures map[string]error
	panics   map[string]bool
	text     func(scholarship *models.Scholarship) string
}

func (f *fakeExplainer) GenerateExplanation(_ context.Context, _ *models.Student, scholarship *models.Scholarship) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	current := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		peak := atomic.LoadInt32(&f.peak)
		if current <= peak || atomic.CompareAndSwapInt32(&f.peak, peak, current) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	if f.panics[scholarship.ID] {
		panic("provider exploded on " + scholarship.ID)
	}
	if err, ok := f.failures[scholarship.ID]; ok {
		return "", err
	}
	if f.text != nil {
		return f.text(scholarship), nil
	}
	return "Great fit for " + scholarship.Name, nil
}

func (f *fakeExplainer) Peak() int {
	return int(atomic.LoadInt32(&f.peak))
}

func (f *fakeExplainer) Calls() int {
	return int(atomic.LoadInt32(&f.calls))
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]string
	deleted []string
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]string{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return m.getErr
	}
	value, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	*dest.(*string) = value
	return nil
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value.(string)
	return nil
}

func (m *memoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, pattern)
	return nil
}

func (m *memoryCache) value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok
}

func ptr[T any](v T) *T {
	return &v
}

func catalogEntry(id, name string, amount int64) models.Scholarship {
	return models.Scholarship{
		ID:                  id,
		Name:                name,
		Amount:              amount,
		Provider:            "Community Foundation",
		Deadline:            time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		GPAMinimum:          3.0,
		EnrollmentStatuses:  models.NewMandatoryAllowlist("full_time"),
		CitizenshipStatuses: models.NewMandatoryAllowlist("us_citizen"),
	}
}

func sampleStudent() *models.Student {
	return &models.Student{
		ID:                "stu_001",
		Name:              "Maya Chen",
		Email:             "maya@example.com",
		GPA:               3.8,
		EnrollmentStatus:  "full_time",
		CitizenshipStatus: "us_citizen",
		Major:             ptr("Computer Science"),
		FirstGeneration:   true,
	}
}
