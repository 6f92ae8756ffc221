package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"surveyku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler menjalankan pembersihan token_blacklist terjadwal.
// Schedule bisa dioverride via TOKEN_BLACKLIST_CRON (default: tiap hari jam 02:00).
func StartBlacklistCleanupScheduler(db *gorm.DB) *cron.Cron {
	ttlDays := 7
	if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			ttlDays = parsed
		}
	}

	schedule := os.Getenv("TOKEN_BLACKLIST_CRON")
	if schedule == "" {
		schedule = "0 2 * * *"
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		cleanupExpiredTokens(db, ttlDays)
	})
	if err != nil {
		log.Printf("[CLEANUP ERROR] Cron schedule tidak valid (%q): %v", schedule, err)
		return c
	}

	c.Start()
	log.Printf("[CLEANUP] Scheduler token_blacklist aktif (schedule=%q, ttl=%d hari)", schedule, ttlDays)
	return c
}

func cleanupExpiredTokens(db *gorm.DB, ttlDays int) {
	log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")

	deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

	var expiredTokens []model.TokenBlacklist
	if err := db.
		Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
		Limit(100).
		Find(&expiredTokens).Error; err != nil {
		log.Printf("[CLEANUP ERROR] Gagal ambil token kadaluarsa: %v", err)
		return
	}
	if len(expiredTokens) == 0 {
		log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
		return
	}

	if err := db.Delete(&expiredTokens).Error; err != nil {
		log.Printf("[CLEANUP ERROR] Gagal hapus token: %v", err)
		return
	}
	log.Printf("[CLEANUP] %d token kadaluarsa dihapus", len(expiredTokens))
}
