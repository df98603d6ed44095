package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerejaku_backend/internals/features/ibadah/model"
	"gerejaku_backend/internals/helpers/apperr"
	"gerejaku_backend/internals/helpers/dbtime"
)

func date(s string) time.Time {
	d, err := dbtime.ParseDateKey(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestExpandRecurrence_Once(t *testing.T) {
	start := date("2025-03-14")
	dates, err := ExpandRecurrence(start, nil, model.RecurrenceOnce)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.True(t, dates[0].Equal(start))

	// end_date diabaikan untuk Once
	end := date("2025-12-31")
	dates, err = ExpandRecurrence(start, &end, model.RecurrenceOnce)
	require.NoError(t, err)
	require.Len(t, dates, 1)
}

func TestExpandRecurrence_WeeklyBounded(t *testing.T) {
	start := date("2025-01-05") // Minggu
	end := date("2025-01-26")   // 21 hari kemudian

	dates, err := ExpandRecurrence(start, &end, model.RecurrenceWeekly)
	require.NoError(t, err)
	require.Len(t, dates, 4) // hari 0, 7, 14, 21

	for i, d := range dates {
		diff := d.Sub(start)
		assert.Zero(t, int(diff.Hours())%(7*24), "selisih harus kelipatan 7 hari")
		assert.False(t, d.After(end))
		if i > 0 {
			assert.True(t, d.After(dates[i-1]), "tanggal harus naik ketat")
		}
	}
}

func TestExpandRecurrence_WeeklyOpenEnded(t *testing.T) {
	dates, err := ExpandRecurrence(date("2025-01-05"), nil, model.RecurrenceWeekly)
	require.NoError(t, err)
	assert.Len(t, dates, MaxWeeklyOccurrences)
}

func TestExpandRecurrence_WeeklyEndBeforeCapWins(t *testing.T) {
	start := date("2025-01-05")
	end := date("2025-01-05") // end == start → hanya 1

	dates, err := ExpandRecurrence(start, &end, model.RecurrenceWeekly)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.True(t, dates[0].Equal(start))
}

func TestExpandRecurrence_MonthlyOpenEndedClamped(t *testing.T) {
	start := date("2025-01-31")
	dates, err := ExpandRecurrence(start, nil, model.RecurrenceMonthly)
	require.NoError(t, err)
	require.Len(t, dates, MaxMonthlyOccurrences)

	// Hari jangkar 31 dijepit ke akhir bulan pendek, kembali 31 di bulan
	// panjang (bukan normalisasi AddDate yang meluap ke bulan berikutnya).
	assert.Equal(t, "2025-01-31", dbtime.DateKey(dates[0]))
	assert.Equal(t, "2025-02-28", dbtime.DateKey(dates[1]))
	assert.Equal(t, "2025-03-31", dbtime.DateKey(dates[2]))
	assert.Equal(t, "2025-04-30", dbtime.DateKey(dates[3]))

	for _, d := range dates {
		max := dbtime.DaysInMonth(d.Year(), d.Month())
		if max >= 31 {
			assert.Equal(t, 31, d.Day())
		} else {
			assert.Equal(t, max, d.Day(), "bulan pendek dijepit ke hari terakhir")
		}
	}
}

func TestExpandRecurrence_MonthlyBounded(t *testing.T) {
	start := date("2025-01-15")
	end := date("2025-04-15")

	dates, err := ExpandRecurrence(start, &end, model.RecurrenceMonthly)
	require.NoError(t, err)
	require.Len(t, dates, 4)
	for _, d := range dates {
		assert.Equal(t, 15, d.Day())
	}
}

func TestExpandRecurrence_InvalidKind(t *testing.T) {
	dates, err := ExpandRecurrence(date("2025-01-01"), nil, model.RecurrenceKind("Daily"))
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Validation))
	// gagal sebelum menghasilkan tanggal apa pun
	assert.Nil(t, dates)
}
