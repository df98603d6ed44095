package service

import (
	"time"

	"gerejaku_backend/internals/helpers/dbtime"
)

type ViewMode string

const (
	ModeEventPerTable  ViewMode = "event_per_table"
	ModeMonthlySummary ViewMode = "monthly_summary"
)

type SelectionState string

const (
	StateIdle              SelectionState = "idle"
	StatePerEventSelecting SelectionState = "per_event_selecting"
	StateMonthlySummary    SelectionState = "monthly_summary"
)

// DateSelection = bentuk serialisasi seleksi satu tanggal.
type DateSelection struct {
	DateKey  string   `json:"date_key"`
	Sessions []string `json:"sessions"`
	Custom   []string `json:"custom,omitempty"`
}

// Pair = satu pasangan {tanggal, sesi} yang akan dirender jadi satu tabel.
type Pair struct {
	DateKey string
	Session string
}

// Selection memegang state mesin seleksi kalender.
// State hidup selama proses; durabilitas lintas restart lewat
// Export/ImportSelection ke selection_snapshots, bukan global modul.
type Selection struct {
	mode     ViewMode
	order    []string            // date key terurut sesuai urutan klik
	sessions map[string][]string // per tanggal, sesi terpilih urut klik
	custom   map[string]map[string]struct{}

	summaryYear  int
	summaryMonth time.Month

	today time.Time
}

func NewSelection(today time.Time) *Selection {
	return &Selection{
		mode:     ModeEventPerTable,
		sessions: make(map[string][]string),
		custom:   make(map[string]map[string]struct{}),
		today:    dbtime.AtMidnight(today),
	}
}

func (s *Selection) Mode() ViewMode { return s.mode }

func (s *Selection) State() SelectionState {
	if len(s.order) == 0 {
		return StateIdle
	}
	if s.mode == ModeMonthlySummary {
		return StateMonthlySummary
	}
	return StatePerEventSelecting
}

func (s *Selection) selected(key string) bool {
	_, ok := s.sessions[key]
	return ok
}

// ToggleDate: klik hari di kalender. Selalu memaksa mode event_per_table.
// Saat menyalakan tanggal, pseudo-sesi SesiSemua otomatis terpilih bila
// tersedia (katalog tidak kosong dan tanggal <= today).
func (s *Selection) ToggleDate(date time.Time) {
	s.mode = ModeEventPerTable
	s.summaryYear, s.summaryMonth = 0, 0

	key := dbtime.DateKey(date)
	if s.selected(key) {
		s.removeDate(key)
		return
	}

	s.order = append(s.order, key)
	sel := []string{}
	if avail := SessionsFor(date, s.today); len(avail) > 0 && avail[0] == SesiSemua {
		sel = append(sel, SesiSemua)
	}
	s.sessions[key] = sel
}

func (s *Selection) removeDate(key string) {
	delete(s.sessions, key)
	delete(s.custom, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// ToggleSession: klik chip sesi di bawah tanggal terpilih. Mode tetap
// event_per_table. Tanggal yang belum dipilih diabaikan.
func (s *Selection) ToggleSession(date time.Time, name string) {
	key := dbtime.DateKey(date)
	list, ok := s.sessions[key]
	if !ok {
		return
	}
	s.mode = ModeEventPerTable

	for i, sess := range list {
		if sess == name {
			s.sessions[key] = append(list[:i], list[i+1:]...)
			return
		}
	}
	s.sessions[key] = append(list, name)
}

// ToggleMonth: klik header bulan. Bulan yang sedang dirangkum di-klik lagi
// → kembali Idle (shortcut UX yang disengaja); selain itu → monthly_summary
// untuk bulan tsb.
func (s *Selection) ToggleMonth(year int, month time.Month) {
	if s.State() == StateMonthlySummary && s.summaryYear == year && s.summaryMonth == month {
		s.Clear()
		return
	}
	s.selectMonth(year, month)
}

// NavigateMonth: navigasi bulan aktif. Saat monthly_summary, rangkuman
// "mengikuti" navigasi: langsung re-trigger untuk bulan baru.
func (s *Selection) NavigateMonth(year int, month time.Month) {
	if s.State() == StateMonthlySummary {
		s.selectMonth(year, month)
	}
}

// selectMonth mengisi setiap tanggal kualifikasi (katalog tidak kosong,
// tidak di masa depan) dengan pseudo-sesi SesiSemua terpilih.
func (s *Selection) selectMonth(year int, month time.Month) {
	s.Clear()
	s.mode = ModeMonthlySummary
	s.summaryYear, s.summaryMonth = year, month

	days := dbtime.DaysInMonth(year, month)
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, dbtime.LocWIB)
		avail := SessionsFor(date, s.today)
		if len(avail) == 0 || avail[0] != SesiSemua {
			continue
		}
		key := dbtime.DateKey(date)
		s.order = append(s.order, key)
		s.sessions[key] = []string{SesiSemua}
	}
}

func (s *Selection) Clear() {
	s.mode = ModeEventPerTable
	s.order = nil
	s.sessions = make(map[string][]string)
	s.custom = make(map[string]map[string]struct{})
	s.summaryYear, s.summaryMonth = 0, 0
}

// SummaryMonth mengembalikan bulan yang sedang dirangkum (0,0 bila tidak).
func (s *Selection) SummaryMonth() (int, time.Month) {
	return s.summaryYear, s.summaryMonth
}

/* =======================================================
   Sesi custom (non-katalog)
   ======================================================= */

// AddCustomSession menempelkan sesi custom ke tanggal terpilih dan langsung
// memilihnya. Nama yang termasuk katalog tanggal tsb atau pseudo-sesi
// ditolak diam-diam (no-op, return false).
func (s *Selection) AddCustomSession(date time.Time, name string) bool {
	key := dbtime.DateKey(date)
	if !s.selected(key) || name == "" || name == SesiSemua || IsCatalogSession(date, name) {
		return false
	}
	if s.custom[key] == nil {
		s.custom[key] = make(map[string]struct{})
	}
	if _, dup := s.custom[key][name]; dup {
		return false
	}
	s.custom[key][name] = struct{}{}
	s.sessions[key] = append(s.sessions[key], name)
	return true
}

// RenameCustomSession: hanya sesi custom yang boleh diedit; target katalog
// atau pseudo-sesi no-op.
func (s *Selection) RenameCustomSession(date time.Time, oldName, newName string) bool {
	key := dbtime.DateKey(date)
	set, ok := s.custom[key]
	if !ok {
		return false
	}
	if _, isCustom := set[oldName]; !isCustom {
		return false
	}
	if newName == "" || newName == SesiSemua || IsCatalogSession(date, newName) {
		return false
	}

	delete(set, oldName)
	set[newName] = struct{}{}
	for i, sess := range s.sessions[key] {
		if sess == oldName {
			s.sessions[key][i] = newName
			break
		}
	}
	return true
}

// RemoveCustomSession: hapus sesi custom dari tanggal; katalog/"semua" no-op.
func (s *Selection) RemoveCustomSession(date time.Time, name string) bool {
	key := dbtime.DateKey(date)
	set, ok := s.custom[key]
	if !ok {
		return false
	}
	if _, isCustom := set[name]; !isCustom {
		return false
	}

	delete(set, name)
	for i, sess := range s.sessions[key] {
		if sess == name {
			s.sessions[key] = append(s.sessions[key][:i], s.sessions[key][i+1:]...)
			break
		}
	}
	return true
}

/* =======================================================
   Derivasi render & serialisasi
   ======================================================= */

// IncompleteDates: tanggal terpilih tanpa satu pun sesi. Tetap tersimpan
// (di-flag ke user) tapi tidak pernah muncul sebagai tabel.
func (s *Selection) IncompleteDates() []string {
	var out []string
	for _, key := range s.order {
		if len(s.sessions[key]) == 0 {
			out = append(out, key)
		}
	}
	return out
}

// Pairs: pasangan {tanggal, sesi} urut sesuai urutan pemilihan.
// Set sesi kosong tidak pernah menghasilkan pasangan.
func (s *Selection) Pairs() []Pair {
	var out []Pair
	for _, key := range s.order {
		for _, sess := range s.sessions[key] {
			out = append(out, Pair{DateKey: key, Session: sess})
		}
	}
	return out
}

// Export men-serialisasi seleksi untuk disimpan (selection_snapshots).
func (s *Selection) Export() []DateSelection {
	out := make([]DateSelection, 0, len(s.order))
	for _, key := range s.order {
		ds := DateSelection{
			DateKey:  key,
			Sessions: append([]string(nil), s.sessions[key]...),
		}
		for name := range s.custom[key] {
			ds.Custom = append(ds.Custom, name)
		}
		out = append(out, ds)
	}
	return out
}

// ImportSelection membangun ulang Selection dari bentuk serialisasinya.
// Bulan rangkuman diderivasi dari tanggal pertama saat mode monthly.
func ImportSelection(items []DateSelection, mode ViewMode, today time.Time) *Selection {
	s := NewSelection(today)
	s.mode = mode
	for _, it := range items {
		s.order = append(s.order, it.DateKey)
		s.sessions[it.DateKey] = append([]string(nil), it.Sessions...)
		if len(it.Custom) > 0 {
			set := make(map[string]struct{}, len(it.Custom))
			for _, name := range it.Custom {
				set[name] = struct{}{}
			}
			s.custom[it.DateKey] = set
		}
	}
	if mode == ModeMonthlySummary && len(items) > 0 {
		if d, err := dbtime.ParseDateKey(items[0].DateKey); err == nil {
			s.summaryYear, s.summaryMonth = d.Year(), d.Month()
		}
	}
	return s
}
