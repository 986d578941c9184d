package scheduler

import (
	"time"

	"github.com/hcanhquan/royalvietnam-backend/internal/app/repository"
	"github.com/hcanhquan/royalvietnam-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// reminderWindow là khoảng thời gian cảnh báo trước khi token hết hạn.
const reminderWindow = 30 * 24 * time.Hour

// TokenExpiryScheduler quét hàng ngày các chữ ký số sắp hết hạn và ghi log
// nhắc gia hạn.
type TokenExpiryScheduler struct {
	cron        *cron.Cron
	accountRepo repository.AccountRepository
}

func NewTokenExpiryScheduler(accountRepo repository.AccountRepository) *TokenExpiryScheduler {
	return &TokenExpiryScheduler{
		cron:        cron.New(),
		accountRepo: accountRepo,
	}
}

// Start đăng ký job chạy 8 giờ sáng mỗi ngày.
func (s *TokenExpiryScheduler) Start() error {
	_, err := s.cron.AddFunc("0 8 * * *", s.Run)
	if err != nil {
		logger.Error("Failed to add cron job for token expiry scan", err)
		return err
	}

	s.cron.Start()
	logger.Info("Token expiry scheduler started (daily at 8:00 AM)", nil)
	return nil
}

// Run scans once for tokens expiring within the reminder window.
func (s *TokenExpiryScheduler) Run() {
	logger.Info("Starting scheduled token expiry scan", nil)

	cutoff := time.Now().Add(reminderWindow)
	accounts, err := s.accountRepo.FindExpiringTokens(cutoff)
	if err != nil {
		logger.Error("Token expiry scan failed", err)
		return
	}

	for _, account := range accounts {
		logger.Warn("Signing token expiring soon", map[string]interface{}{
			"business_id":     account.BusinessID,
			"token_provider":  account.TokenProvider,
			"expiration_date": account.TokenExpirationDate,
		})
	}

	logger.Info("Token expiry scan completed", map[string]interface{}{
		"expiring_count": len(accounts),
	})
}

func (s *TokenExpiryScheduler) Stop() {
	logger.Info("Stopping token expiry scheduler...", nil)
	s.cron.Stop()
}
