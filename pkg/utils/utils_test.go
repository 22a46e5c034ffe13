package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	expected := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{"2025-03-07", "2025/03/07", "03/07/2025", "3/7/2025", "2025-03-07T15:04:05Z", "2025-03-07 10:00:00", " 2025-03-07 "} {
		t.Run(input, func(t *testing.T) {
			got, err := ParseCalendarDate(input)
			require.NoError(t, err)
			assert.True(t, expected.Equal(got), "got %s", got)
		})
	}

	_, err := ParseCalendarDate("07.03.2025")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseDate("2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31", FormatDate(*date))

	_, err = ParseDate("31/01/2025")
	assert.Error(t, err)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"1,234.50", 1234.5, true},
		{"$99", 99, true},
		{" 42 ", 42, true},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"+Inf", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseNumber(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 3.33, RoundWithTwoDecimalPlace(10.0/3))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(math.NaN()))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(math.Inf(1)))
}

func TestRoundWithTwoDecimalPlace_HugeValues(t *testing.T) {
	for _, v := range []float64{1e307, -1e307, math.MaxFloat64, -math.MaxFloat64} {
		got := RoundWithTwoDecimalPlace(v)
		assert.False(t, math.IsInf(got, 0), "RoundWithTwoDecimalPlace(%v) = %v", v, got)
		assert.Equal(t, v, got)
	}
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson(map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"b\": true\n}", PrettyJson([]byte(`{"b":true}`)))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, defaultIDSize)
}
