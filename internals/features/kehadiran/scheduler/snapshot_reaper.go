package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gerejaku_backend/internals/features/kehadiran/model"

	"gorm.io/gorm"
)

// StartSnapshotReaper membersihkan selection_snapshots yang sudah basi.
// Seleksi memang ephemeral; snapshot hanya jaring pengaman lintas restart.
func StartSnapshotReaper(db *gorm.DB) {
	go func() {
		// Ambil TTL dari env (default: 30 hari)
		ttlDays := 30
		if val := os.Getenv("SELECTION_SNAPSHOT_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Menjalankan pembersihan selection_snapshots...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			res := db.
				Where("snapshot_created_at < ?", deleteBefore).
				Delete(&model.SelectionSnapshotModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus snapshot basi: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d snapshot basi dihapus", res.RowsAffected)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
