package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRanking = OfficeRanking{
	"Москва":          3,
	"Уфа":             2,
	"Нижний Новгород": 1,
}

func rec(id int64, name string, officeID int64, office string) Record {
	return Record{
		EmployeeID:       id,
		EmployeeFullName: name,
		OfficeID:         officeID,
		OfficeName:       office,
		EntranceAt:       day,
		ExitAt:           day.Add(time.Hour),
	}
}

func TestComposeSummaryRows_OrderByRankThenName(t *testing.T) {
	records := []Record{
		rec(1, "Сидоров", 10, "Москва"),
		rec(2, "Петров", 30, "Нижний Новгород"),
		rec(3, "Абрамов", 10, "Москва"),
		rec(4, "Борисов", 30, "Нижний Новгород"),
		rec(1, "Сидоров", 10, "Москва"),
	}

	rows, err := ComposeSummaryRows(records, AggregateHours(records), 2020, testRanking)
	require.NoError(t, err)

	var names []string
	for _, r := range rows {
		names = append(names, r.EmployeeFullName)
	}
	assert.Equal(t, []string{"Борисов", "Петров", "Абрамов", "Сидоров"}, names)
}

func TestComposeSummaryRows_OneRowPerEmployee(t *testing.T) {
	records := []Record{
		rec(1, "Сидоров", 10, "Москва"),
		rec(1, "Сидоров", 10, "Москва"),
		rec(1, "Сидоров", 10, "Москва"),
		rec(2, "Петров", 20, "Уфа"),
	}

	rows, err := ComposeSummaryRows(records, AggregateHours(records), 2020, testRanking)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, MonthlySummary{
		EmployeeID:       2,
		EmployeeFullName: "Петров",
		OfficeName:       "Уфа",
		TotalHours:       1,
		Year:             2020,
		officeRank:       2,
	}, rows[0])
	assert.Equal(t, int64(1), rows[1].EmployeeID)
	assert.Equal(t, 3, rows[1].TotalHours)
}

func TestComposeSummaryRows_NamesakesKeepSeparateRows(t *testing.T) {
	records := []Record{
		rec(8, "Иванов Иван", 10, "Москва"),
		rec(7, "Иванов Иван", 10, "Москва"),
	}

	rows, err := ComposeSummaryRows(records, AggregateHours(records), 2020, testRanking)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(7), rows[0].EmployeeID)
	assert.Equal(t, int64(8), rows[1].EmployeeID)
}

func TestComposeSummaryRows_UnknownOffice(t *testing.T) {
	records := []Record{
		rec(1, "Сидоров", 10, "Москва"),
		rec(2, "Петров", 40, "Казань"),
	}

	rows, err := ComposeSummaryRows(records, AggregateHours(records), 2020, testRanking)
	assert.Nil(t, rows)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownOffice))

	var unknown *UnknownOfficeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Казань", unknown.Office)
}

func TestComposeSummaryRows_Empty(t *testing.T) {
	rows, err := ComposeSummaryRows(nil, nil, 2020, testRanking)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDistinctOffices(t *testing.T) {
	records := []Record{
		rec(1, "Сидоров", 10, "Москва"),
		rec(2, "Петров", 30, "Нижний Новгород"),
		rec(3, "Абрамов", 10, "Москва"),
		rec(4, "Борисов", 20, "Уфа"),
	}

	assert.Equal(t, []Office{
		{ID: 10, Name: "Москва"},
		{ID: 20, Name: "Уфа"},
		{ID: 30, Name: "Нижний Новгород"},
	}, DistinctOffices(records))
}
