package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"gerejaku_backend/internals/helpers/apperr"
)

var exportHeader = []string{"ID", "Nama", "Status", "Jabatan", "Sesi", "Email", "Telepon"}

// totalRows: jumlah seluruh baris ter-render lintas tabel.
func totalRows(tables []Table) int {
	n := 0
	for _, t := range tables {
		n += len(t.Rows)
	}
	return n
}

// ExportCSV men-serialisasi tabel hasil Aggregate ke CSV UTF-8: satu baris
// label per tabel logis, lalu header kolom, lalu baris data. Seleksi kosong
// (tanpa tabel atau tanpa baris) ditolak dengan ValidationError — tidak
// pernah ada artefak parsial.
func ExportCSV(tables []Table) ([]byte, error) {
	if len(tables) == 0 || totalRows(tables) == 0 {
		return nil, apperr.New(apperr.Validation, "Tidak ada data untuk diexport. Pilih tanggal dan sesi terlebih dahulu.")
	}

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	for ti, t := range tables {
		if ti > 0 {
			// pemisah antar tabel
			if err := w.Write([]string{""}); err != nil {
				return nil, apperr.Wrap(apperr.Upstream, "gagal menulis CSV", err)
			}
		}
		if err := w.Write([]string{t.Label}); err != nil {
			return nil, apperr.Wrap(apperr.Upstream, "gagal menulis CSV", err)
		}
		if err := w.Write(exportHeader); err != nil {
			return nil, apperr.Wrap(apperr.Upstream, "gagal menulis CSV", err)
		}
		for _, r := range t.Rows {
			rec := []string{r.ID, r.Nama, r.Status, r.Jabatan, r.Sesi, r.Email, r.Telepon}
			if err := w.Write(rec); err != nil {
				return nil, apperr.Wrap(apperr.Upstream, "gagal menulis CSV", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "gagal menulis CSV", err)
	}
	return buf.Bytes(), nil
}

// ExportPDF menghasilkan dokumen paralel dengan CSV: satu heading + section
// tabel per tabel logis, paginasi halaman otomatis oleh library.
func ExportPDF(tables []Table) ([]byte, error) {
	if len(tables) == 0 || totalRows(tables) == 0 {
		return nil, apperr.New(apperr.Validation, "Tidak ada data untuk diexport. Pilih tanggal dan sesi terlebih dahulu.")
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	colWidths := []float64{55, 45, 25, 30, 45, 45, 30}

	for _, t := range tables {
		pdf.AddPage()

		pdf.SetFont("Arial", "B", 13)
		pdf.CellFormat(0, 9, t.Label, "", 1, "L", false, 0, "")
		pdf.Ln(1)

		pdf.SetFont("Arial", "B", 9)
		for i, h := range exportHeader {
			pdf.CellFormat(colWidths[i], 7, h, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 8)
		for _, r := range t.Rows {
			cells := []string{r.ID, r.Nama, r.Status, r.Jabatan, r.Sesi, r.Email, r.Telepon}
			for i, cell := range cells {
				pdf.CellFormat(colWidths[i], 6, cell, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}

		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 7, fmt.Sprintf("Total: %d jemaat", t.Count), "", 1, "L", false, 0, "")
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "gagal menulis PDF", err)
	}
	return buf.Bytes(), nil
}

// ExportFilename: nama file turunan timestamp (bukan content-addressed).
func ExportFilename(ext string) string {
	ts := time.Now().Format("20060102-150405")
	return fmt.Sprintf("kehadiran_%s_%s.%s", ts, uuid.New().String()[:8], ext)
}
