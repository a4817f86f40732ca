package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/scholarship-match-api/internal/models"
)

func TestNewScholarshipSummaryFormatsDeadlineAndKeepsNullURL(t *testing.T) {
	summary := NewScholarshipSummary(models.Scholarship{
		ID:       "sch_001",
		Name:     "STEM Excellence",
		Amount:   5000,
		Provider: "Tech Foundation",
		Deadline: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
	})

	raw, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"sch_001","name":"STEM Excellence","amount":5000,"provider":"Tech Foundation","deadline":"2025-03-15","url":null}`, string(raw))
}
