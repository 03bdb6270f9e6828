package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"cash-wallet-tracker/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) GetAll(ctx context.Context) ([]domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Wallet, 0, len(r.wallets))
	for _, w := range r.wallets {
		result = append(result, *w)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *inMemoryWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryWalletRepo) Update(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[w.ID]; !ok {
		return fmt.Errorf("wallet not found")
	}
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) Put(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.wallets, id)
	return nil
}

func (r *inMemoryWalletRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wallets = make(map[uuid.UUID]*domain.Wallet)
	return nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions map[uuid.UUID]*domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{transactions: make(map[uuid.UUID]*domain.Transaction)}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.transactions[t.ID] = &cp
	return nil
}

func (r *inMemoryTransactionRepo) Put(ctx context.Context, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.transactions[t.ID] = &cp
	return nil
}

func (r *inMemoryTransactionRepo) GetAll(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Transaction, 0, len(r.transactions))
	for _, t := range r.transactions {
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (r *inMemoryTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTransactionRepo) GetByWalletID(ctx context.Context, walletID uuid.UUID) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Transaction
	for _, t := range r.transactions {
		if t.WalletID == walletID {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (r *inMemoryTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.transactions, id)
	return nil
}

func (r *inMemoryTransactionRepo) DeleteByWalletID(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.transactions {
		if t.WalletID == walletID {
			delete(r.transactions, id)
		}
	}
	return nil
}

func (r *inMemoryTransactionRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = make(map[uuid.UUID]*domain.Transaction)
	return nil
}

// --- In-Memory Notification Repo ---

type inMemoryNotificationRepo struct {
	mu            sync.RWMutex
	notifications map[uuid.UUID]*domain.Notification
}

func newInMemoryNotificationRepo() *inMemoryNotificationRepo {
	return &inMemoryNotificationRepo{notifications: make(map[uuid.UUID]*domain.Notification)}
}

func (r *inMemoryNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *n
	r.notifications[n.ID] = &cp
	return nil
}

func (r *inMemoryNotificationRepo) GetAll(ctx context.Context) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		result = append(result, *n)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (r *inMemoryNotificationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.notifications[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *inMemoryNotificationRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok {
		return fmt.Errorf("notification not found")
	}
	n.IsRead = true
	return nil
}

func (r *inMemoryNotificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.notifications, id)
	return nil
}

func (r *inMemoryNotificationRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = make(map[uuid.UUID]*domain.Notification)
	return nil
}

// --- In-Memory Settings Repo ---

type inMemorySettingsRepo struct {
	mu       sync.RWMutex
	settings map[string]string
}

func newInMemorySettingsRepo() *inMemorySettingsRepo {
	return &inMemorySettingsRepo{settings: make(map[string]string)}
}

func (r *inMemorySettingsRepo) Get(ctx context.Context, key string) (*string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.settings[key]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *inMemorySettingsRepo) Set(ctx context.Context, key string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[key] = value
	return nil
}

func (r *inMemorySettingsRepo) GetAll(ctx context.Context) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make(map[string]string, len(r.settings))
	for k, v := range r.settings {
		result[k] = v
	}
	return result, nil
}

func (r *inMemorySettingsRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = make(map[string]string)
	return nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes ledger blocks with a single mutex so the
// row-lock semantics the real transactor gets from FOR UPDATE still hold.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	tx := &noopTx{}
	tx.release = func() { t.mu.Unlock() }
	return tx, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing. Commit and
// Rollback both release the transactor lock; callers defer Rollback after
// Commit, so the release must be idempotent.
type noopTx struct {
	once    sync.Once
	release func()
}

func (t *noopTx) done() {
	if t.release != nil {
		t.once.Do(t.release)
	}
}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { t.done(); return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { t.done(); return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
