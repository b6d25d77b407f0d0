package adapters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gyounis-TX/explify/pkg/models/domain"
)

func TestMapDomainSummaryToAPI(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	got := MapDomainSummaryToAPI(domain.ReportSummary{
		ID:              "r1",
		TestType:        "echo",
		TestTypeDisplay: "Echocardiogram",
		Filename:        "echo_june.pdf",
		Summary:         "Normal study.",
		Liked:           true,
		CreatedAt:       created,
	})

	assert.Equal(t, "r1", got.ID)
	assert.Equal(t, "echo", got.TestType)
	assert.Equal(t, "Echocardiogram", got.TestTypeDisplay)
	assert.Equal(t, "echo_june.pdf", got.Filename)
	assert.Equal(t, "Normal study.", got.Summary)
	assert.True(t, got.Liked)
	assert.Equal(t, created, got.CreatedAt)
}
