package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-match-api/internal/ai"
	"github.com/noah-isme/scholarship-match-api/internal/models"
)

func threeMatches() []models.Scholarship {
	return []models.Scholarship{
		catalogEntry("sch_001", "STEM Excellence", 5000),
		catalogEntry("sch_002", "First Gen Futures", 2500),
		catalogEntry("sch_003", "Community Builders", 1000),
	}
}

func TestExplainKeepsOrderAndDegradesSingleFailure(t *testing.T) {
	provider := &fakeExplainer{failures: map[string]error{"sch_002": ai.ErrRateLimited}}
	svc := NewExplanationService(provider, nil, NewMetricsService(), zap.NewNop())

	got := svc.Explain(context.Background(), sampleStudent(), threeMatches())

	assert.Equal(t, []string{
		"Great fit for STEM Excellence",
		FailedExplanation,
		"Great fit for Community Builders",
	}, got)
	assert.Equal(t, 3, provider.Calls())
}

func TestExplainCallsProviderForEveryMatchAtOnce(t *testing.T) {
	previous := runtime.GOMAXPROCS(1)
	defer runtime.GOMAXPROCS(previous)

	catalog := make([]models.Scholarship, 5)
	for i := range catalog {
		catalog[i] = catalogEntry(fmt.Sprintf("sch_%03d", i+1), fmt.Sprintf("Award %d", i+1), 1000)
	}
	provider := &fakeExplainer{delay: 50 * time.Millisecond}
	svc := NewExplanationService(provider, nil, nil, nil)

	got := svc.Explain(context.Background(), sampleStudent(), catalog)

	assert.Len(t, got, len(catalog))
	assert.Equal(t, "Great fit for Award 5", got[4])
	assert.Equal(t, len(catalog), provider.Calls())
	assert.Equal(t, len(catalog), provider.Peak())
}

func TestExplainContainsProviderPanic(t *testing.T) {
	provider := &fakeExplainer{panics: map[string]bool{"sch_003": true}}
	metrics := NewMetricsService()
	svc := NewExplanationService(provider, nil, metrics, zap.NewNop())

	var got []string
	assert.NotPanics(t, func() {
		got = svc.Explain(context.Background(), sampleStudent(), threeMatches())
	})

	assert.Equal(t, []string{
		"Great fit for STEM Excellence",
		"Great fit for First Gen Futures",
		FailedExplanation,
	}, got)
}

func TestExplainAllFailuresStillReturnsEveryMatch(t *testing.T) {
	boom := &ai.ProviderError{Status: 500, Err: errors.New("boom")}
	provider := &fakeExplainer{failures: map[string]error{"sch_001": boom, "sch_002": ai.ErrUnavailable, "sch_003": ai.ErrUnauthorized}}
	svc := NewExplanationService(provider, nil, nil, nil)

	got := svc.Explain(context.Background(), sampleStudent(), threeMatches())

	assert.Equal(t, []string{FailedExplanation, FailedExplanation, FailedExplanation}, got)
}

func TestExplainUnconfiguredMakesNoCalls(t *testing.T) {
	svc := NewExplanationService(nil, nil, nil, nil)

	got := svc.Explain(context.Background(), sampleStudent(), threeMatches())

	assert.False(t, svc.Configured())
	assert.Equal(t, []string{UnconfiguredExplanation, UnconfiguredExplanation, UnconfiguredExplanation}, got)
}

func TestExplainEmptyMatchListReturnsEmptySlice(t *testing.T) {
	provider := &fakeExplainer{}
	svc := NewExplanationService(provider, nil, nil, nil)

	got := svc.Explain(context.Background(), sampleStudent(), nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Zero(t, provider.Calls())
}

func TestExplainServesCachedExplanations(t *testing.T) {
	store := newMemoryCache()
	store.entries["explain:stu_001:sch_001"] = "Cached explanation"
	cache := NewExplanationCache(store, nil, 0, zap.NewNop())
	provider := &fakeExplainer{}
	svc := NewExplanationService(provider, cache, nil, nil)

	got := svc.Explain(context.Background(), sampleStudent(), threeMatches()[:2])

	assert.Equal(t, []string{"Cached explanation", "Great fit for First Gen Futures"}, got)
	assert.Equal(t, 1, provider.Calls())
	stored, ok := store.value("explain:stu_001:sch_002")
	assert.True(t, ok)
	assert.Equal(t, "Great fit for First Gen Futures", stored)
}

func TestExplainDoesNotCacheFailuresOrEmptyResponses(t *testing.T) {
	store := newMemoryCache()
	cache := NewExplanationCache(store, nil, 0, zap.NewNop())
	provider := &fakeExplainer{
		failures: map[string]error{"sch_001": ai.ErrUnavailable},
		text:     func(*models.Scholarship) string { return ai.EmptyResponseExplanation },
	}
	svc := NewExplanationService(provider, cache, nil, nil)

	got := svc.Explain(context.Background(), sampleStudent(), threeMatches()[:2])

	assert.Equal(t, []string{FailedExplanation, ai.EmptyResponseExplanation}, got)
	_, ok := store.value("explain:stu_001:sch_001")
	assert.False(t, ok)
	_, ok = store.value("explain:stu_001:sch_002")
	assert.False(t, ok)
}

func TestPurgeScopesPatternToStudent(t *testing.T) {
	store := newMemoryCache()
	cache := NewExplanationCache(store, nil, 0, zap.NewNop())
	svc := NewExplanationService(&fakeExplainer{}, cache, nil, nil)

	assert.NoError(t, svc.Purge(context.Background(), "stu_007"))
	assert.NoError(t, svc.Purge(context.Background(), ""))
	assert.Equal(t, []string{"explain:stu_007:*", "explain:*"}, store.deleted)
}
