package dbtime

import (
	"time"
)

// Zona waktu acuan laporan (WIB)
var LocWIB = time.FixedZone("WIB", 7*3600)

const DateKeyLayout = "2006-01-02"

// DateKey menghasilkan kunci tanggal ISO (YYYY-MM-DD).
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey membaca kunci tanggal ISO ke midnight WIB.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, key, LocWIB)
}

// Truncate ke midnight di zona waktu tanggal tsb.
func AtMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// TodayWIB = hari ini, midnight WIB.
func TodayWIB() time.Time {
	return AtMidnight(time.Now().In(LocWIB))
}

// DaysInMonth menghitung jumlah hari pada bulan tsb.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
