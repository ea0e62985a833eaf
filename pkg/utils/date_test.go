package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitReportDay(t *testing.T) {
	t.Run("Data completa", func(t *testing.T) {
		day, month, year := SplitReportDay("10-10-2025")
		require.NotNil(t, day)
		require.NotNil(t, month)
		require.NotNil(t, year)
		assert.Equal(t, "10", *day)
		assert.Equal(t, "10", *month)
		assert.Equal(t, 2025, *year)
	})

	t.Run("Ano inválido vira nil", func(t *testing.T) {
		day, month, year := SplitReportDay("01-02-20X5")
		require.NotNil(t, day)
		require.NotNil(t, month)
		assert.Equal(t, "01", *day)
		assert.Equal(t, "02", *month)
		assert.Nil(t, year)
	})

	t.Run("Sem separadores", func(t *testing.T) {
		day, month, year := SplitReportDay("hoje")
		require.NotNil(t, day)
		assert.Equal(t, "hoje", *day)
		assert.Nil(t, month)
		assert.Nil(t, year)
	})

	t.Run("Vazio", func(t *testing.T) {
		day, month, year := SplitReportDay("")
		assert.Nil(t, day)
		assert.Nil(t, month)
		assert.Nil(t, year)
	})
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-10-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("10-10-2025")
	assert.Error(t, err)

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}
