package formatter_test

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"backlog-sim/formatter"
	"backlog-sim/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResponse() *models.BacklogPropagationResponse {
	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	return &models.BacklogPropagationResponse{
		OrganizationID: "acme",
		StartDate:      day1,
		EndDate:        day2,
		DailySnapshots: []models.BacklogSnapshot{
			{Date: day1, TotalItems: 5, ItemsCreated: 3, ItemsResolved: 1, SLAComplianceRate: 1.0, CapacityUtilization: 0.75, CustomerSatisfactionScore: 100},
			{Date: day2, TotalItems: 6, ItemsCreated: 3, ItemsResolved: 1, ItemsRejected: 1, NewSLABreaches: 2, SLAComplianceRate: 0.6, CapacityUtilization: 0.5, FinancialImpact: 300, CustomerSatisfactionScore: 96},
		},
		FinalBacklogCount: 6,
		SummaryStats: models.BacklogSummaryStats{
			FinalBacklogSize:          6,
			InitialBacklogSize:        3,
			NetBacklogChange:          3,
			PeakBacklogSize:           6,
			PeakBacklogDate:           day2,
			TotalItemsCreated:         6,
			TotalItemsResolved:        2,
			TotalItemsRejected:        1,
			TotalSLABreaches:          2,
			AverageSLAComplianceRate:  0.8,
			TotalFinancialImpact:      300,
			FinalCustomerSatisfaction: 96,
			EstimatedRecoveryDays:     4.2,
		},
		InputErrors: []string{`initial backlog item 2: field "priority": unknown priority: "urgent"`},
		SeedUsed:    42,
	}
}

func TestFormatText(t *testing.T) {
	out := formatter.FormatText(sampleResponse())

	assert.Contains(t, out, "acme")
	assert.Contains(t, out, "2026-03-01")
	assert.Contains(t, out, "seed 42")
	assert.Contains(t, out, "Final backlog: 6 (net +3, peak 6 on 2026-03-02)")
	assert.Contains(t, out, "OVERFLOW: rejected=1")
	assert.Contains(t, out, "2 new breach(es)")
	assert.Contains(t, out, "input filtered")
}

func TestFormatJSON_RoundTrips(t *testing.T) {
	out := formatter.FormatJSON(sampleResponse())

	var decoded models.BacklogPropagationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "acme", decoded.OrganizationID)
	assert.Equal(t, 6, decoded.FinalBacklogCount)
	assert.Len(t, decoded.DailySnapshots, 2)
	assert.Equal(t, int64(42), decoded.SeedUsed)
}

func TestFormatCSV(t *testing.T) {
	out := formatter.FormatCSV(sampleResponse())

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per day")
	assert.Equal(t, "Date", records[0][0])
	assert.Equal(t, "2026-03-01", records[1][0])
	assert.Equal(t, "5", records[1][1])
	assert.Equal(t, "1", records[2][4], "rejected column on day two")
}

func sampleScenarios() *models.QuickBacklogScenariosResponse {
	return &models.QuickBacklogScenariosResponse{
		OrganizationID: "acme",
		StartDate:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Days:           14,
		ScenarioSummaries: map[string]models.ScenarioSummary{
			"baseline":   {ScenarioName: "baseline", FinalBacklogCount: 9, NetBacklogChange: 2, ItemsResolved: 40, SLAComplianceRate: 0.92, TotalFinancialImpact: 1200, EstimatedRecoveryDays: 3.1},
			"optimistic": {ScenarioName: "optimistic", FinalBacklogCount: 1, NetBacklogChange: -6, ItemsResolved: 48, SLAComplianceRate: 0.99, EstimatedRecoveryDays: 0.4},
		},
		Recommendations: []string{"Current capacity clears the backlog within the simulated window."},
		SeedUsed:        7,
	}
}

func TestFormatScenariosText(t *testing.T) {
	out := formatter.FormatScenariosText(sampleScenarios())

	assert.Contains(t, out, "Quick scenarios: acme, 14 days")
	assert.Contains(t, out, "Recommendations:")
	assert.Contains(t, out, "clears the backlog")

	// Stable alphabetical scenario order.
	baselineIdx := strings.Index(out, "baseline")
	optimisticIdx := strings.Index(out, "optimistic")
	assert.Greater(t, optimisticIdx, baselineIdx)
}

func TestFormatScenariosCSV(t *testing.T) {
	out := formatter.FormatScenariosCSV(sampleScenarios())

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "baseline", records[1][0])
	assert.Equal(t, "optimistic", records[2][0])
	assert.Equal(t, "9", records[1][1])
}
