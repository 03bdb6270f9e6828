package service

import (
	"context"
	"fmt"
	"time"

	"cash-wallet-tracker/internal/core/domain"
	"cash-wallet-tracker/internal/core/ports"
	"cash-wallet-tracker/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Settings key recording the last month a limit reset ran, as "YYYY-MM".
const lastResetKey = "last_monthly_limit_reset"

// ResetServiceImpl implements ports.ResetService.
type ResetServiceImpl struct {
	walletRepo   ports.WalletRepository
	settingsRepo ports.SettingsRepository
	notifRepo    ports.NotificationRepository
	log          zerolog.Logger
}

// NewResetService creates a new ResetServiceImpl.
func NewResetService(
	walletRepo ports.WalletRepository,
	settingsRepo ports.SettingsRepository,
	notifRepo ports.NotificationRepository,
	log zerolog.Logger,
) *ResetServiceImpl {
	return &ResetServiceImpl{
		walletRepo:   walletRepo,
		settingsRepo: settingsRepo,
		notifRepo:    notifRepo,
		log:          log,
	}
}

// CheckAndReset restores every wallet's remaining limit to its monthly cap
// when called on the first day of a month that has not been reset yet.
// Running it twice in the same month is a no-op, as is any other day.
func (s *ResetServiceImpl) CheckAndReset(ctx context.Context, now time.Time) (*ports.ResetOutcome, error) {
	if now.Day() != 1 {
		return &ports.ResetOutcome{}, nil
	}

	month := now.Format("2006-01")
	last, err := s.settingsRepo.Get(ctx, lastResetKey)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("read last reset marker: %w", err))
	}
	if last != nil && *last == month {
		return &ports.ResetOutcome{}, nil
	}

	wallets, err := s.walletRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("list wallets: %w", err))
	}

	updated := 0
	for i := range wallets {
		w := wallets[i]
		w.RemainingLimit = w.MonthlyLimit
		w.LastUpdated = now
		if err := s.walletRepo.Put(ctx, &w); err != nil {
			return nil, apperror.ErrPersistence(fmt.Errorf("reset wallet %s: %w", w.ID, err))
		}
		updated++
	}

	if err := s.settingsRepo.Set(ctx, lastResetKey, month); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("write last reset marker: %w", err))
	}

	n := &domain.Notification{
		ID:      uuid.New(),
		Title:   "Monthly limits reset",
		Message: fmt.Sprintf("Sending limits restored for %d wallets.", updated),
		Type:    domain.NotificationTypeInfo,
		Date:    now,
	}
	if err := s.notifRepo.Create(ctx, n); err != nil {
		s.log.Warn().Err(err).Msg("reset notification insert failed")
	}

	s.log.Info().Str("month", month).Int("wallets", updated).Msg("monthly limits reset")
	return &ports.ResetOutcome{Performed: true, WalletsUpdated: updated}, nil
}
