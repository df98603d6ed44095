package constants

// Klasifikasi status kehadiran jemaat
const (
	StatusAktif       = "Aktif"
	StatusJarangHadir = "Jarang Hadir"
	StatusTidakAktif  = "Tidak Aktif"
)

var StatusKehadiranValues = []string{
	StatusAktif,
	StatusJarangHadir,
	StatusTidakAktif,
}

// Status approval user portal
const (
	UserStatusJemaat   = "Jemaat" // default saat masuk lewat webhook identity
	UserStatusAccepted = "accepted"
	UserStatusRejected = "rejected"
)
