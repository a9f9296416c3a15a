package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgeteur/backend/internal/domain/entity"
	"github.com/budgeteur/backend/internal/domain/valueobject"
)

func TestAggregateByMonth(t *testing.T) {
	txs := []*entity.Transaction{
		newTx(1, day(2024, 9, 3), "-30"),
		newTx(2, day(2024, 8, 3), "1000"),
		newTx(3, day(2024, 8, 4), "-200"),
		newTx(4, day(2024, 9, 30), "50"),
	}

	months := AggregateByMonth(txs)
	require.Len(t, months, 2)
	assert.True(t, months[0].Month.Equal(day(2024, 8, 1)))
	assert.True(t, months[0].Income.Equal(dec("1000")))
	assert.True(t, months[0].Expenses.Equal(dec("200")))
	assert.True(t, months[0].NetIncome.Equal(dec("800")))
	assert.True(t, months[1].NetIncome.Equal(dec("20")))

	stats := CalculateSummaryStatistics(months)
	assert.Equal(t, 2, stats.Months)
	assert.True(t, stats.Income.Total.Equal(dec("1050")))
	assert.True(t, stats.Income.MonthlyAverage.Equal(dec("525")))
	assert.True(t, stats.Expenses.WeeklyAverage.Equal(dec("115").Mul(dec("12")).Div(dec("52"))))
	assert.True(t, stats.NetIncome.Total.Equal(dec("820")))
}

func TestCalculateSummaryStatistics_NoMonths(t *testing.T) {
	stats := CalculateSummaryStatistics(nil)
	assert.True(t, stats.Income.MonthlyAverage.IsZero())
	assert.True(t, stats.Expenses.WeeklyAverage.IsZero())
}

func TestExpenseSeriesByTag(t *testing.T) {
	window := valueobject.DateRange{Start: day(2024, 7, 1), End: day(2024, 10, 1)}
	months := MonthSeries(window)
	require.Len(t, months, 3)

	txs := []*entity.Transaction{
		newTx(1, day(2024, 7, 2), "-5"),
		tagged(newTx(2, day(2024, 7, 3), "-10"), 2, "Zoo"),
		tagged(newTx(3, day(2024, 9, 3), "-20"), 1, "Food"),
		tagged(newTx(4, day(2024, 9, 4), "-5"), 1, "Food"),
		tagged(newTx(5, day(2024, 8, 4), "500"), 1, "Food"),
	}

	series := ExpenseSeriesByTag(txs, months)
	require.Len(t, series, 3)
	assert.Equal(t, "Food", series[0].Label)
	assert.Equal(t, "Zoo", series[1].Label)
	assert.Equal(t, "Other", series[2].Label)

	food := series[0].Values
	assert.Nil(t, food[0])
	assert.Nil(t, food[1])
	require.NotNil(t, food[2])
	assert.True(t, food[2].Equal(dec("25")))
}
