package service

import (
	"context"
	"fmt"

	"cash-wallet-tracker/internal/core/domain"
	"cash-wallet-tracker/internal/core/ports"
	"cash-wallet-tracker/pkg/apperror"

	"github.com/rs/zerolog"
)

// BackupServiceImpl implements ports.BackupService.
type BackupServiceImpl struct {
	walletRepo   ports.WalletRepository
	txRepo       ports.TransactionRepository
	notifRepo    ports.NotificationRepository
	settingsRepo ports.SettingsRepository
	log          zerolog.Logger
}

// NewBackupService creates a new BackupServiceImpl.
func NewBackupService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	notifRepo ports.NotificationRepository,
	settingsRepo ports.SettingsRepository,
	log zerolog.Logger,
) *BackupServiceImpl {
	return &BackupServiceImpl{
		walletRepo:   walletRepo,
		txRepo:       txRepo,
		notifRepo:    notifRepo,
		settingsRepo: settingsRepo,
		log:          log,
	}
}

// Export snapshots the full application state into a portable document.
func (s *BackupServiceImpl) Export(ctx context.Context) (*domain.BackupDocument, error) {
	wallets, err := s.walletRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("export wallets: %w", err))
	}
	transactions, err := s.txRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("export transactions: %w", err))
	}
	notifications, err := s.notifRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("export notifications: %w", err))
	}
	settings, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("export settings: %w", err))
	}

	return &domain.BackupDocument{
		Wallets:       wallets,
		Transactions:  transactions,
		Notifications: notifications,
		Settings:      settings,
	}, nil
}

// Import restores application state from a backup document. Each collection
// present in the document replaces the stored one wholesale; collections
// absent from the document are left untouched.
func (s *BackupServiceImpl) Import(ctx context.Context, doc *domain.BackupDocument) error {
	if doc == nil {
		return apperror.Validation("backup document is empty")
	}

	if doc.Wallets != nil {
		if err := s.walletRepo.Clear(ctx); err != nil {
			return apperror.ErrPersistence(fmt.Errorf("clear wallets: %w", err))
		}
		for i := range doc.Wallets {
			if err := s.walletRepo.Put(ctx, &doc.Wallets[i]); err != nil {
				return apperror.ErrPersistence(fmt.Errorf("import wallet %s: %w", doc.Wallets[i].ID, err))
			}
		}
	}

	if doc.Transactions != nil {
		if err := s.txRepo.Clear(ctx); err != nil {
			return apperror.ErrPersistence(fmt.Errorf("clear transactions: %w", err))
		}
		for i := range doc.Transactions {
			if err := s.txRepo.Put(ctx, &doc.Transactions[i]); err != nil {
				return apperror.ErrPersistence(fmt.Errorf("import transaction %s: %w", doc.Transactions[i].ID, err))
			}
		}
	}

	if doc.Notifications != nil {
		if err := s.notifRepo.Clear(ctx); err != nil {
			return apperror.ErrPersistence(fmt.Errorf("clear notifications: %w", err))
		}
		for i := range doc.Notifications {
			if err := s.notifRepo.Create(ctx, &doc.Notifications[i]); err != nil {
				return apperror.ErrPersistence(fmt.Errorf("import notification %s: %w", doc.Notifications[i].ID, err))
			}
		}
	}

	if doc.Settings != nil {
		if err := s.settingsRepo.Clear(ctx); err != nil {
			return apperror.ErrPersistence(fmt.Errorf("clear settings: %w", err))
		}
		for key, value := range doc.Settings {
			if err := s.settingsRepo.Set(ctx, key, value); err != nil {
				return apperror.ErrPersistence(fmt.Errorf("import setting %s: %w", key, err))
			}
		}
	}

	s.log.Info().
		Int("wallets", len(doc.Wallets)).
		Int("transactions", len(doc.Transactions)).
		Int("notifications", len(doc.Notifications)).
		Int("settings", len(doc.Settings)).
		Msg("backup imported")
	return nil
}
