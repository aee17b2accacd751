package scheduler

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/users/auth/repository"
)

const cleanupBatchSize = 100

// StartBlacklistCleanup prunes expired blacklist rows once a day until ctx is
// cancelled.
func StartBlacklistCleanup(ctx context.Context, db *gorm.DB) {
	repo := repository.NewAuthRepository(db)
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			sweep(ctx, repo)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func sweep(ctx context.Context, repo *repository.AuthRepository) {
	total := int64(0)
	for {
		n, err := repo.DeleteExpired(ctx, time.Now().UTC(), cleanupBatchSize)
		if err != nil {
			log.Printf("[CLEANUP] token blacklist sweep failed: %v", err)
			return
		}
		total += n
		if n < cleanupBatchSize {
			break
		}
	}
	if total > 0 {
		log.Printf("[CLEANUP] token blacklist sweep removed %d rows", total)
	}
}
