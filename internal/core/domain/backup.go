package domain

// BackupDocument is the export/import format: a single JSON document holding
// every collection. On import, each present collection fully replaces the
// stored one (clear-then-insert); a nil collection leaves the store untouched.
type BackupDocument struct {
	Wallets       []Wallet          `json:"wallets,omitempty"`
	Transactions  []Transaction     `json:"transactions,omitempty"`
	Notifications []Notification    `json:"notifications,omitempty"`
	Settings      map[string]string `json:"settings,omitempty"`
}
