package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// today referensi untuk seluruh test seleksi: Senin 30 Juni 2025.
// Juni 2025: Minggu = 1, 8, 15, 22, 29; Sabtu = 7, 14, 21, 28.
func newTestSelection() *Selection {
	return NewSelection(date("2025-06-30"))
}

func TestSelection_StartsIdle(t *testing.T) {
	s := newTestSelection()
	assert.Equal(t, StateIdle, s.State())
	assert.Empty(t, s.Pairs())
}

func TestSelection_ToggleDateAutoSelectsAll(t *testing.T) {
	s := newTestSelection()
	s.ToggleDate(date("2025-06-08"))

	assert.Equal(t, StatePerEventSelecting, s.State())
	pairs := s.Pairs()
	require.Len(t, pairs, 1)
	assert.Equal(t, "2025-06-08", pairs[0].DateKey)
	assert.Equal(t, SesiSemua, pairs[0].Session)
}

func TestSelection_ToggleDateOffRemoves(t *testing.T) {
	s := newTestSelection()
	d := date("2025-06-08")
	s.ToggleDate(d)
	s.ToggleDate(d)

	assert.Equal(t, StateIdle, s.State())
	assert.Empty(t, s.Pairs())
}

func TestSelection_ToggleSession(t *testing.T) {
	s := newTestSelection()
	d := date("2025-06-08")
	s.ToggleDate(d)
	s.ToggleSession(d, "Kebaktian I : 07:00")

	pairs := s.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, SesiSemua, pairs[0].Session)
	assert.Equal(t, "Kebaktian I : 07:00", pairs[1].Session)

	// toggle lagi → hilang
	s.ToggleSession(d, "Kebaktian I : 07:00")
	assert.Len(t, s.Pairs(), 1)
}

func TestSelection_IncompleteDateNeverRendered(t *testing.T) {
	s := newTestSelection()
	d := date("2025-06-08")
	s.ToggleDate(d)
	s.ToggleSession(d, SesiSemua) // matikan satu-satunya sesi

	// tanggal tetap terpilih tapi di-flag incomplete
	assert.Equal(t, StatePerEventSelecting, s.State())
	assert.Equal(t, []string{"2025-06-08"}, s.IncompleteDates())
	// dan tidak pernah muncul di daftar render
	assert.Empty(t, s.Pairs())
}

func TestSelection_MonthSummaryPopulatesQualifyingDates(t *testing.T) {
	s := newTestSelection()
	s.ToggleMonth(2025, time.June)

	assert.Equal(t, StateMonthlySummary, s.State())
	// 5 Minggu + 4 Sabtu, semua <= today (30 Juni)
	pairs := s.Pairs()
	require.Len(t, pairs, 9)
	for _, p := range pairs {
		assert.Equal(t, SesiSemua, p.Session, "pre-select selalu pseudo-sesi")
	}
	assert.Empty(t, s.IncompleteDates())
}

func TestSelection_MonthSummarySkipsFutureDates(t *testing.T) {
	// today di tengah bulan: hanya tanggal <= today yang masuk
	s := NewSelection(date("2025-06-15"))
	s.ToggleMonth(2025, time.June)

	// Minggu 1, 8, 15 + Sabtu 7, 14
	assert.Len(t, s.Pairs(), 5)
}

func TestSelection_SameMonthToggleBackToIdle(t *testing.T) {
	s := newTestSelection()
	s.ToggleMonth(2025, time.June)
	require.Equal(t, StateMonthlySummary, s.State())

	// klik bulan yang sama lagi → shortcut UX kembali Idle
	s.ToggleMonth(2025, time.June)
	assert.Equal(t, StateIdle, s.State())
	assert.Empty(t, s.Pairs())
}

func TestSelection_SummaryFollowsNavigation(t *testing.T) {
	s := newTestSelection()
	s.ToggleMonth(2025, time.June)

	s.NavigateMonth(2025, time.May)
	assert.Equal(t, StateMonthlySummary, s.State())
	year, month := s.SummaryMonth()
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.May, month)
	// Mei 2025: Minggu 4, 11, 18, 25 + Sabtu 3, 10, 17, 24, 31
	assert.Len(t, s.Pairs(), 9)
}

func TestSelection_NavigateIgnoredOutsideSummary(t *testing.T) {
	s := newTestSelection()
	s.ToggleDate(date("2025-06-08"))

	s.NavigateMonth(2025, time.May)
	// browsing bulan lain tidak menyentuh seleksi per-event
	assert.Equal(t, StatePerEventSelecting, s.State())
	assert.Len(t, s.Pairs(), 1)
}

func TestSelection_DayClickLeavesSummaryMode(t *testing.T) {
	s := newTestSelection()
	s.ToggleMonth(2025, time.June)

	// klik hari memaksa mode event_per_table
	s.ToggleDate(date("2025-06-02")) // Senin, katalog kosong
	assert.Equal(t, StatePerEventSelecting, s.State())
}

func TestSelection_CustomSessionRules(t *testing.T) {
	s := newTestSelection()
	d := date("2025-06-08")
	s.ToggleDate(d)

	// katalog & pseudo-sesi dilindungi: no-op
	assert.False(t, s.AddCustomSession(d, "Kebaktian I : 07:00"))
	assert.False(t, s.AddCustomSession(d, SesiSemua))

	// sesi custom boleh ditambah, diedit, dihapus
	assert.True(t, s.AddCustomSession(d, "Kebaktian Pemuda Gabungan"))
	assert.False(t, s.AddCustomSession(d, "Kebaktian Pemuda Gabungan"), "duplikat no-op")
	assert.True(t, s.RenameCustomSession(d, "Kebaktian Pemuda Gabungan", "Kebaktian Gabungan"))

	// edit sesi katalog tetap no-op walau lewat jalur rename
	assert.False(t, s.RenameCustomSession(d, "Kebaktian I : 07:00", "Apa Saja"))
	// rename ke nama katalog juga ditolak
	assert.False(t, s.RenameCustomSession(d, "Kebaktian Gabungan", "Kebaktian II : 09:00"))

	assert.True(t, s.RemoveCustomSession(d, "Kebaktian Gabungan"))
	assert.False(t, s.RemoveCustomSession(d, "Kebaktian Gabungan"))

	// tinggal SesiSemua
	assert.Len(t, s.Pairs(), 1)
}

func TestSelection_ExportImportRoundTrip(t *testing.T) {
	s := newTestSelection()
	d1 := date("2025-06-08")
	d2 := date("2025-06-07")
	s.ToggleDate(d1)
	s.ToggleSession(d1, "Kebaktian II : 09:00")
	s.ToggleDate(d2)
	s.AddCustomSession(d2, "Doa Puasa")

	restored := ImportSelection(s.Export(), s.Mode(), date("2025-06-30"))

	assert.Equal(t, s.State(), restored.State())
	assert.Equal(t, s.Pairs(), restored.Pairs())
	// sesi custom tetap bisa dihapus setelah restore
	assert.True(t, restored.RemoveCustomSession(d2, "Doa Puasa"))
}

func TestSelection_ImportMonthlyDerivesSummaryMonth(t *testing.T) {
	s := newTestSelection()
	s.ToggleMonth(2025, time.June)

	restored := ImportSelection(s.Export(), s.Mode(), date("2025-06-30"))
	require.Equal(t, StateMonthlySummary, restored.State())

	// toggle-back bulan sama harus tetap bekerja setelah restore
	restored.ToggleMonth(2025, time.June)
	assert.Equal(t, StateIdle, restored.State())
}
