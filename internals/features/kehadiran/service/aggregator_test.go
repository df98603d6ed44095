package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerejaku_backend/internals/constants"
	jemaatModel "gerejaku_backend/internals/features/jemaat/model"
)

func jemaat(nama, status, jabatan, sesi string) jemaatModel.JemaatModel {
	return jemaatModel.JemaatModel{
		JemaatID:              uuid.New(),
		JemaatNama:            nama,
		JemaatStatusKehadiran: status,
		JemaatJabatan:         jabatan,
		JemaatKehadiranSesi:   sesi,
	}
}

// roster campuran: sesi Minggu, sesi Sabtu, dan satu tanpa sesi terdaftar.
func testRoster() []jemaatModel.JemaatModel {
	return []jemaatModel.JemaatModel{
		jemaat("Andreas", constants.StatusAktif, "Pendeta", "Kebaktian I : 07:00"),
		jemaat("Budi", constants.StatusAktif, "Majelis", "Kebaktian II : 09:00"),
		jemaat("Citra", constants.StatusJarangHadir, "Anggota", "Kebaktian II : 09:00"),
		jemaat("Dewi", constants.StatusAktif, "Anggota", "Kebaktian Pemuda : 17:00"),
		jemaat("Eka", constants.StatusTidakAktif, "Anggota", "Kebaktian Pemuda : 17:00"),
		jemaat("Fani", constants.StatusAktif, "Diaken", ""),
	}
}

func TestAggregate_IdleProducesNothing(t *testing.T) {
	sel := newTestSelection()
	tables := Aggregate(testRoster(), sel, Filters{}, Paging{})
	assert.Empty(t, tables)
}

func TestAggregate_AllSessionUsesDateCatalog(t *testing.T) {
	roster := testRoster()
	sel := newTestSelection()
	sel.ToggleDate(date("2025-06-08")) // Minggu → SesiSemua otomatis

	tables := Aggregate(roster, sel, Filters{}, Paging{})
	require.Len(t, tables, 1)
	assert.Equal(t, "2025-06-08 | "+SesiSemua, tables[0].Label)

	// KESELURUHAN = semua sesi katalog hari Minggu; sesi Sabtu & sesi kosong
	// tidak ikut.
	names := rowNames(tables[0])
	assert.Equal(t, []string{"Andreas", "Budi", "Citra"}, names)
	assert.Equal(t, 3, tables[0].Count)
}

func TestAggregate_NamedSessionMatchesExactly(t *testing.T) {
	roster := testRoster()
	sel := newTestSelection()
	d := date("2025-06-08")
	sel.ToggleDate(d)
	sel.ToggleSession(d, SesiSemua) // matikan pseudo-sesi
	sel.ToggleSession(d, "Kebaktian II : 09:00")

	tables := Aggregate(roster, sel, Filters{}, Paging{})
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Budi", "Citra"}, rowNames(tables[0]))
}

func TestAggregate_GenericFiltersAreConjunctive(t *testing.T) {
	roster := testRoster()
	sel := newTestSelection()
	sel.ToggleDate(date("2025-06-08"))

	tables := Aggregate(roster, sel, Filters{Status: constants.StatusAktif, Jabatan: "Anggota"}, Paging{})
	require.Len(t, tables, 1)
	// Dewi Aktif+Anggota tapi sesinya Sabtu; tidak ada yang lolos semua syarat
	assert.Empty(t, tables[0].Rows)
	assert.Equal(t, 0, tables[0].Count)
}

func TestAggregate_MonthlySummarySingleTable(t *testing.T) {
	roster := testRoster()
	sel := newTestSelection()
	sel.ToggleMonth(2025, time.June)

	tables := Aggregate(roster, sel, Filters{}, Paging{})
	require.Len(t, tables, 1, "rangkuman bulanan selalu tepat satu tabel")
	assert.Equal(t, "Rekap Bulanan 2025-06", tables[0].Label)
	// rekap tidak menyempitkan per tanggal: seluruh roster masuk
	assert.Equal(t, 6, tables[0].Count)
}

func TestAggregate_MonthlySummarySesiTypeFilter(t *testing.T) {
	roster := testRoster()
	sel := newTestSelection()
	sel.ToggleMonth(2025, time.June)

	tables := Aggregate(roster, sel, Filters{SesiType: "Kebaktian Pemuda : 17:00"}, Paging{})
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Dewi", "Eka"}, rowNames(tables[0]))
}

func TestAggregate_FilterNarrowsMonotonically(t *testing.T) {
	roster := testRoster()
	sel := newTestSelection()
	sel.ToggleMonth(2025, time.June)

	unfiltered := Aggregate(roster, sel, Filters{}, Paging{})
	filtered := Aggregate(roster, sel, Filters{Status: constants.StatusAktif}, Paging{})
	assert.LessOrEqual(t, filtered[0].Count, unfiltered[0].Count)
}

func TestAggregate_Deterministic(t *testing.T) {
	roster := testRoster()
	sel := newTestSelection()
	d1 := date("2025-06-08")
	d2 := date("2025-06-07")
	sel.ToggleDate(d1)
	sel.ToggleDate(d2)
	sel.ToggleSession(d2, "Kebaktian Pemuda : 17:00")

	first := Aggregate(roster, sel, Filters{}, Paging{})
	second := Aggregate(roster, sel, Filters{}, Paging{})
	require.Equal(t, first, second)

	// urutan tabel mengikuti urutan pemilihan, bukan urutan kronologis
	require.Len(t, first, 3)
	assert.Equal(t, "2025-06-08 | "+SesiSemua, first[0].Label)
	assert.Equal(t, "2025-06-07 | "+SesiSemua, first[1].Label)
	assert.Equal(t, "2025-06-07 | Kebaktian Pemuda : 17:00", first[2].Label)
}

func TestAggregate_FullRosterSundayScenario(t *testing.T) {
	// 8 jemaat, 6 jabatan berbeda, 2 Tidak Aktif — semua terikat sesi Minggu
	tagged := []jemaatModel.JemaatModel{
		jemaat("Andreas", constants.StatusAktif, "Pendeta", "Kebaktian I : 07:00"),
		jemaat("Budi", constants.StatusAktif, "Majelis", "Kebaktian II : 09:00"),
		jemaat("Citra", constants.StatusAktif, "Diaken", "Kebaktian Anak : 09:00"),
		jemaat("Dewi", constants.StatusAktif, "Pemusik", "Kebaktian Remaja : 09:00"),
		jemaat("Eka", constants.StatusAktif, "Usher", "Kebaktian III : 11:00"),
		jemaat("Fani", constants.StatusAktif, "Anggota", "Kebaktian IV : 17:00"),
		jemaat("Gading", constants.StatusTidakAktif, "Anggota", "Kebaktian I : 07:00"),
		jemaat("Hana", constants.StatusTidakAktif, "Anggota", "Kebaktian II : 09:00"),
	}

	sel := newTestSelection()
	sel.ToggleDate(date("2025-06-08"))

	tables := Aggregate(tagged, sel, Filters{}, Paging{})
	require.Len(t, tables, 1)
	assert.Equal(t, 8, tables[0].Count, "semua terikat sesi Minggu → semua masuk")

	// roster yang sama tapi tidak ada yang terikat sesi Minggu → nol baris
	untagged := make([]jemaatModel.JemaatModel, len(tagged))
	copy(untagged, tagged)
	for i := range untagged {
		untagged[i].JemaatKehadiranSesi = "Kebaktian Pemuda : 17:00"
	}
	tables = Aggregate(untagged, sel, Filters{}, Paging{})
	require.Len(t, tables, 1)
	assert.Empty(t, tables[0].Rows)
}

func TestAggregate_PaginationOnlyTruncatesFirstTable(t *testing.T) {
	roster := testRoster()
	sel := newTestSelection()
	sel.ToggleDate(date("2025-06-08")) // 3 baris
	sel.ToggleDate(date("2025-06-07")) // 2 baris

	tables := Aggregate(roster, sel, Filters{}, Paging{Page: 1, PerPage: 1})
	require.Len(t, tables, 2)

	assert.Len(t, tables[0].Rows, 1)
	assert.Equal(t, 3, tables[0].Count, "Count tetap total sebelum truncation")
	// tabel kedua dan seterusnya tidak ikut terpotong
	assert.Len(t, tables[1].Rows, 2)
}

func TestAggregate_PaginationPastEnd(t *testing.T) {
	roster := testRoster()
	sel := newTestSelection()
	sel.ToggleDate(date("2025-06-08"))

	tables := Aggregate(roster, sel, Filters{}, Paging{Page: 9, PerPage: 10})
	require.Len(t, tables, 1)
	assert.Empty(t, tables[0].Rows)
	assert.Equal(t, 3, tables[0].Count)
}

func rowNames(t Table) []string {
	out := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		out = append(out, r.Nama)
	}
	return out
}
