// Package service berisi logika murni penjadwalan ibadah.
package service

import (
	"time"

	"gerejaku_backend/internals/features/ibadah/model"
	"gerejaku_backend/internals/helpers/apperr"
	"gerejaku_backend/internals/helpers/dbtime"
)

// Batas generate untuk rule open-ended (end_date null):
// 520 minggu ≈ 10 tahun, 120 bulan = 10 tahun.
const (
	MaxWeeklyOccurrences  = 520
	MaxMonthlyOccurrences = 120
)

// ExpandRecurrence mengubah rule {start, end|nil, kind} menjadi deretan
// tanggal konkret terurut naik.
//
//   - Once    → tepat [start].
//   - Weekly  → start, start+7h, start+14h, … selama tanggal <= end (atau
//     tanpa batas bila end nil) DAN jumlah < 520; batas mana pun yang
//     tercapai duluan menghentikan generate.
//   - Monthly → tanggal dengan hari-bulan yang sama dengan start, maju satu
//     bulan kalender per langkah, kebijakan batas ganda yang sama, cap 120.
//
// Overflow hari-bulan (mis. tanggal 31 di bulan 30 hari) DIJEPIT ke akhir
// bulan: hari jangkar dari start dipertahankan antar langkah, jadi
// 31 Jan → 28/29 Feb → 31 Mar. Deterministik.
//
// Kind tidak dikenal → ValidationError tanpa menghasilkan tanggal apa pun;
// fungsi ini tidak pernah menghasilkan deret parsial.
func ExpandRecurrence(start time.Time, end *time.Time, kind model.RecurrenceKind) ([]time.Time, error) {
	if !kind.Valid() {
		return nil, apperr.Newf(apperr.Validation, "repetition_type tidak dikenal: %q", string(kind))
	}

	start = dbtime.AtMidnight(start)
	var until *time.Time
	if end != nil {
		u := dbtime.AtMidnight(*end)
		until = &u
	}

	switch kind {
	case model.RecurrenceOnce:
		return []time.Time{start}, nil

	case model.RecurrenceWeekly:
		dates := make([]time.Time, 0, 8)
		for i := 0; i < MaxWeeklyOccurrences; i++ {
			d := start.AddDate(0, 0, 7*i)
			if until != nil && d.After(*until) {
				break
			}
			dates = append(dates, d)
		}
		return dates, nil

	default: // Monthly
		anchorDay := start.Day()
		dates := make([]time.Time, 0, 8)
		for i := 0; i < MaxMonthlyOccurrences; i++ {
			d := monthlyDate(start, anchorDay, i)
			if until != nil && d.After(*until) {
				break
			}
			dates = append(dates, d)
		}
		return dates, nil
	}
}

// monthlyDate: tanggal ke-i (0-based) dari rule bulanan. Hari jangkar
// dijepit ke panjang bulan target, tidak pakai normalisasi AddDate yang
// membuat 31 Jan + 1 bulan meluap jadi 3 Mar.
func monthlyDate(start time.Time, anchorDay, i int) time.Time {
	year, month, _ := start.Date()
	m := time.Date(year, month+time.Month(i), 1, 0, 0, 0, 0, start.Location())
	day := anchorDay
	if max := dbtime.DaysInMonth(m.Year(), m.Month()); day > max {
		day = max
	}
	return time.Date(m.Year(), m.Month(), day, 0, 0, 0, 0, start.Location())
}
