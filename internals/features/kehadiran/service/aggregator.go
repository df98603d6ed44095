package service

import (
	"fmt"

	jemaatModel "gerejaku_backend/internals/features/jemaat/model"
	"gerejaku_backend/internals/helpers/dbtime"
)

// Filters = filter generik atas roster; string kosong = tanpa batasan.
// Status + jabatan digabung AND. SesiType hanya dipakai mode rangkuman
// bulanan.
type Filters struct {
	Status   string
	Jabatan  string
	SesiType string
}

type Row struct {
	ID      string `json:"id"`
	Nama    string `json:"nama"`
	Status  string `json:"status"`
	Jabatan string `json:"jabatan"`
	Sesi    string `json:"sesi"`
	Email   string `json:"email"`
	Telepon string `json:"telepon"`
}

// Table = satu tabel render. Count = total baris lolos filter, SEBELUM
// truncation paginasi (Rows bisa lebih pendek dari Count di tabel pertama).
type Table struct {
	Label string `json:"label"`
	Rows  []Row  `json:"rows"`
	Count int    `json:"count"`
}

// Paging untuk tabel pertama. Zero value = tanpa paginasi.
type Paging struct {
	Page    int
	PerPage int
}

// Aggregate merender seleksi + roster menjadi deretan tabel. Fungsi murni:
// input sama selalu menghasilkan output identik byte-per-byte.
//
// Mode event_per_table: satu tabel per pasangan {tanggal, sesi} terpilih,
// urut sesuai urutan pemilihan. Keanggotaan baris:
//   - sesi == SesiSemua: lolos filter generik DAN sesi terdaftar member ada
//     di katalog tanggal tsb;
//   - sesi bernama: lolos filter generik DAN sesi terdaftar == nama persis.
//
// Mode monthly_summary: tepat satu tabel rekap; filter generik (+ filter
// jenis sesi bila diisi) atas seluruh roster, tanpa penyempitan per tanggal.
//
// Paginasi hanya berlaku untuk tabel PERTAMA; tabel lain dirender penuh.
// Perilaku asimetris ini diwarisi dari sumber dan kemungkinan besar
// oversight di sana, tapi dipertahankan sampai intent produk dikonfirmasi.
func Aggregate(members []jemaatModel.JemaatModel, sel *Selection, f Filters, pg Paging) []Table {
	var tables []Table

	switch sel.State() {
	case StateIdle:
		return tables

	case StateMonthlySummary:
		year, month := sel.SummaryMonth()
		rows := make([]Row, 0)
		for i := range members {
			m := &members[i]
			if !passesGeneric(m, f) {
				continue
			}
			if f.SesiType != "" && m.JemaatKehadiranSesi != f.SesiType {
				continue
			}
			rows = append(rows, toRow(m))
		}
		tables = append(tables, Table{
			Label: fmt.Sprintf("Rekap Bulanan %04d-%02d", year, int(month)),
			Rows:  rows,
			Count: len(rows),
		})

	default: // StatePerEventSelecting
		for _, pair := range sel.Pairs() {
			date, err := dbtime.ParseDateKey(pair.DateKey)
			if err != nil {
				continue
			}
			rows := make([]Row, 0)
			for i := range members {
				m := &members[i]
				if !passesGeneric(m, f) {
					continue
				}
				if pair.Session == SesiSemua {
					if !IsCatalogSession(date, m.JemaatKehadiranSesi) {
						continue
					}
				} else if m.JemaatKehadiranSesi != pair.Session {
					continue
				}
				rows = append(rows, toRow(m))
			}
			tables = append(tables, Table{
				Label: pair.DateKey + " | " + pair.Session,
				Rows:  rows,
				Count: len(rows),
			})
		}
	}

	paginateFirst(tables, pg)
	return tables
}

func passesGeneric(m *jemaatModel.JemaatModel, f Filters) bool {
	if f.Status != "" && m.JemaatStatusKehadiran != f.Status {
		return false
	}
	if f.Jabatan != "" && m.JemaatJabatan != f.Jabatan {
		return false
	}
	return true
}

func toRow(m *jemaatModel.JemaatModel) Row {
	r := Row{
		ID:      m.JemaatID.String(),
		Nama:    m.JemaatNama,
		Status:  m.JemaatStatusKehadiran,
		Jabatan: m.JemaatJabatan,
		Sesi:    m.JemaatKehadiranSesi,
	}
	if m.JemaatEmail != nil {
		r.Email = *m.JemaatEmail
	}
	if m.JemaatTelepon != nil {
		r.Telepon = *m.JemaatTelepon
	}
	return r
}

func paginateFirst(tables []Table, pg Paging) {
	if len(tables) == 0 || pg.PerPage <= 0 {
		return
	}
	page := pg.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pg.PerPage
	rows := tables[0].Rows
	if start >= len(rows) {
		tables[0].Rows = []Row{}
		return
	}
	end := start + pg.PerPage
	if end > len(rows) {
		end = len(rows)
	}
	tables[0].Rows = rows[start:end]
}
