// Package service berisi inti pelaporan kehadiran: katalog sesi,
// state seleksi kalender, aggregator tabel, dan serialisasi export.
// Semuanya fungsi murni tanpa akses DB supaya bisa diuji tanpa server.
package service

import (
	"time"
)

// Pseudo-sesi gabungan seluruh sesi pada satu tanggal. Disintesis saat
// render, tidak pernah disimpan sebagai sesi sungguhan.
const SesiSemua = "KESELURUHAN DATA HARI INI"

// Katalog statis sesi per hari. Minggu penuh kebaktian, Sabtu dua sesi,
// hari lain kosong. Bisa dipindah ke konfigurasi tanpa mengubah kontrak.
var (
	sesiMinggu = []string{
		"Kebaktian I : 07:00",
		"Kebaktian II : 09:00",
		"Kebaktian Anak : 09:00",
		"Kebaktian Remaja : 09:00",
		"Kebaktian III : 11:00",
		"Kebaktian IV : 17:00",
	}
	sesiSabtu = []string{
		"Kebaktian Pemuda : 17:00",
		"Kebaktian Doa Malam : 19:00",
	}
)

// CatalogSessionsFor mengembalikan sesi riil (tanpa pseudo-sesi) untuk
// tanggal tsb, murni dari hari-minggunya. Hasil selalu salinan baru.
func CatalogSessionsFor(date time.Time) []string {
	switch date.Weekday() {
	case time.Sunday:
		return append([]string(nil), sesiMinggu...)
	case time.Saturday:
		return append([]string(nil), sesiSabtu...)
	default:
		return []string{}
	}
}

// SessionsFor = CatalogSessionsFor + pseudo-sesi "KESELURUHAN DATA HARI INI"
// di depan, HANYA bila katalognya tidak kosong dan tanggal tidak di masa
// depan (date <= today). Tanggal masa depan tidak pernah dapat pseudo-sesi;
// larangan memilih tanggal masa depan ditegakkan pemanggil, bukan di sini.
func SessionsFor(date, today time.Time) []string {
	real := CatalogSessionsFor(date)
	if len(real) == 0 {
		return real
	}
	if dateOnly(date).After(dateOnly(today)) {
		return real
	}
	return append([]string{SesiSemua}, real...)
}

// IsCatalogSession: apakah nama sesi termasuk katalog tanggal tsb.
func IsCatalogSession(date time.Time, name string) bool {
	for _, s := range CatalogSessionsFor(date) {
		if s == name {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
