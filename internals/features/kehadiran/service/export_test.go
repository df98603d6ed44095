package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerejaku_backend/internals/helpers/apperr"
)

func sampleTables() []Table {
	return []Table{
		{
			Label: "2025-06-08 | " + SesiSemua,
			Rows: []Row{
				{ID: "a1", Nama: "Andreas", Status: "Aktif", Jabatan: "Pendeta", Sesi: "Kebaktian I : 07:00"},
				{ID: "b2", Nama: "Budi", Status: "Aktif", Jabatan: "Majelis", Sesi: "Kebaktian II : 09:00", Email: "budi@gereja.id"},
			},
			Count: 2,
		},
		{
			Label: "2025-06-07 | Kebaktian Pemuda : 17:00",
			Rows: []Row{
				{ID: "c3", Nama: "Dewi", Status: "Aktif", Jabatan: "Anggota", Sesi: "Kebaktian Pemuda : 17:00"},
			},
			Count: 1,
		},
	}
}

func TestExportCSV_Layout(t *testing.T) {
	out, err := ExportCSV(sampleTables())
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(out))
	r.FieldsPerRecord = -1 // jumlah kolom per baris memang tidak seragam
	records, err := r.ReadAll()
	require.NoError(t, err, "output harus CSV valid")

	// tabel 1: label, header, 2 data; pemisah; tabel 2: label, header, 1 data
	require.Len(t, records, 8)
	assert.Equal(t, "2025-06-08 | "+SesiSemua, records[0][0])
	assert.Equal(t, exportHeader, records[1])
	assert.Equal(t, "Andreas", records[2][1])
	assert.Equal(t, "Budi", records[3][1])
	assert.Equal(t, []string{""}, records[4])
	assert.Equal(t, "2025-06-07 | Kebaktian Pemuda : 17:00", records[5][0])
	assert.Equal(t, exportHeader, records[6])
	assert.Equal(t, "Dewi", records[7][1])
}

func TestExportCSV_EmptySelectionRejected(t *testing.T) {
	out, err := ExportCSV(nil)
	assert.Nil(t, out, "tidak boleh ada artefak parsial")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Validation))
}

func TestExportCSV_TablesWithoutRowsRejected(t *testing.T) {
	tables := []Table{{Label: "2025-06-08 | Kebaktian I : 07:00", Rows: []Row{}, Count: 0}}
	out, err := ExportCSV(tables)
	assert.Nil(t, out)
	assert.True(t, apperr.Is(err, apperr.Validation))
}

func TestExportPDF_ProducesDocument(t *testing.T) {
	out, err := ExportPDF(sampleTables())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestExportPDF_EmptySelectionRejected(t *testing.T) {
	out, err := ExportPDF(nil)
	assert.Nil(t, out)
	assert.True(t, apperr.Is(err, apperr.Validation))
}

func TestExportFilename(t *testing.T) {
	first := ExportFilename("csv")
	second := ExportFilename("csv")

	assert.True(t, strings.HasPrefix(first, "kehadiran_"))
	assert.True(t, strings.HasSuffix(first, ".csv"))
	assert.True(t, strings.HasSuffix(ExportFilename("pdf"), ".pdf"))
	assert.NotEqual(t, first, second, "nama file unik per pemanggilan")
}
