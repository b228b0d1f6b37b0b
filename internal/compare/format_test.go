package compare

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
)

func testComparisonSet(t *testing.T) *ComparisonSet {
	t.Helper()

	engine := newTestEngine()
	strict := domain.DefaultPolicySettings()
	strict.AffordabilityPeriodYears = 30

	config := &domain.Configuration{
		Project:   domain.DefaultProjectParams(),
		Policy:    domain.DefaultPolicySettings(),
		Scenarios: []domain.NamedScenario{{Name: "30-year term", Policy: strict}},
	}
	set, err := engine.Compare(config, "current draft")
	require.NoError(t, err)
	return set
}

func TestTableFormatter(t *testing.T) {
	set := testComparisonSet(t)

	out := (&TableFormatter{}).Format(set)

	assert.Contains(t, out, "FAST TRACK SCENARIO COMPARISON")
	assert.Contains(t, out, "current draft (base)")
	assert.Contains(t, out, "30-year term")
	assert.Contains(t, out, "COMPARISON TO BASE")
}

func TestTableFormatterDecimals(t *testing.T) {
	tf := &TableFormatter{}

	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"1234567", "1,234,567"},
		{"-85000", "-85,000"},
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, tf.formatDecimal(d))
	}
}

func TestCSVFormatter(t *testing.T) {
	set := testComparisonSet(t)

	out, err := (&CSVFormatter{}).Format(set)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)

	// Header plus base plus one alternative.
	require.Len(t, records, 3)
	assert.Equal(t, "Scenario", records[0][0])
	assert.Equal(t, "base", records[1][1])
	assert.Equal(t, "alternative", records[2][1])
	for _, record := range records {
		assert.Len(t, record, len(records[0]))
	}
}

func TestJSONFormatter(t *testing.T) {
	set := testComparisonSet(t)

	out, err := (&JSONFormatter{Pretty: true}).Format(set)
	require.NoError(t, err)

	var decoded ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, set.BaseScenarioName, decoded.BaseScenarioName)
	require.NotNil(t, decoded.BaseResult)
	assert.Equal(t, set.BaseResult.ProForma.TotalUnits, decoded.BaseResult.ProForma.TotalUnits)
	assert.Len(t, decoded.AlternativeResults, 1)
}

func TestFormatWorksheet(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Worksheet(domain.DefaultProjectParams())
	require.NoError(t, err)

	out := (&TableFormatter{}).FormatWorksheet(result)
	assert.Contains(t, out, "FAST TRACK DECISION WORKSHEET")
	assert.Contains(t, out, "No Fast Track")
	assert.Contains(t, out, "Maximum Commitment")
	assert.Contains(t, out, "N/A")

	jsonOut, err := (&JSONFormatter{}).FormatWorksheet(result)
	require.NoError(t, err)

	var decoded WorksheetResult
	require.NoError(t, json.Unmarshal([]byte(jsonOut), &decoded))
	assert.Len(t, decoded.Cards, 4)
}
