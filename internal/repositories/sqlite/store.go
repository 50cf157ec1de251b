// Package sqlite provides a single-file store implementing the investigator,
// wallet and daily repositories.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/rpg-storyteller/internal/entities"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	"github.com/KirkDiggler/rpg-storyteller/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/daily"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/investigator"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/sqlite/migrations"
	"github.com/KirkDiggler/rpg-storyteller/internal/repositories/wallet"
)

var (
	_ investigator.Repository = (*Store)(nil)
	_ wallet.Repository       = (*Store)(nil)
	_ daily.Repository        = (*Store)(nil)
)

// Config configures the store
type Config struct {
	// Path is the database file; ":memory:" keeps everything in process
	Path  string
	Clock clock.Clock
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c == nil || strings.TrimSpace(c.Path) == "" {
		vb.RequiredField("Path")
	}
	return vb.Build()
}

// Store persists storyteller state in SQLite
type Store struct {
	db    *sql.DB
	clock clock.Clock
}

// Open opens the database and applies the embedded migrations
func Open(ctx context.Context, cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	dsn := cfg.Path
	if dsn != ":memory:" {
		dsn = filepath.Clean(dsn) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	// modernc connections do not share an in-memory database
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping sqlite db")
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &Store{db: db, clock: c}, nil
}

// Close closes the database handle
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get retrieves the investigator of a player
func (s *Store) Get(ctx context.Context, input investigator.GetInput) (*investigator.GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("investigator ID cannot be empty")
	}

	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM investigators WHERE id = ?`, input.ID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("investigator %s not found", input.ID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get investigator")
	}

	var inv entities.Investigator
	if err := json.Unmarshal([]byte(data), &inv); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal investigator")
	}
	return &investigator.GetOutput{Investigator: &inv}, nil
}

// Save creates or replaces an investigator
func (s *Store) Save(ctx context.Context, input investigator.SaveInput) (*investigator.SaveOutput, error) {
	if input.Investigator == nil {
		return nil, errors.InvalidArgument("investigator cannot be nil")
	}
	if input.Investigator.ID == "" {
		return nil, errors.InvalidArgument("investigator ID cannot be empty")
	}

	inv := input.Investigator.Clone()
	now := s.clock.Now().Unix()
	if inv.CreatedAt == 0 {
		inv.CreatedAt = now
	}
	inv.UpdatedAt = now

	data, err := json.Marshal(inv)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal investigator")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO investigators (id, data, created_at, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		inv.ID, string(data), inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save investigator")
	}
	return &investigator.SaveOutput{Investigator: inv}, nil
}

// Delete removes an investigator
func (s *Store) Delete(ctx context.Context, input investigator.DeleteInput) (*investigator.DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("investigator ID cannot be empty")
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM investigators WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete investigator")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, errors.NotFoundf("investigator %s not found", input.ID)
	}
	return &investigator.DeleteOutput{}, nil
}

// Balance returns a player's gold; a missing wallet holds zero
func (s *Store) Balance(ctx context.Context, input wallet.BalanceInput) (*wallet.BalanceOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	gold, err := s.balance(ctx, s.db, input.PlayerID)
	if err != nil {
		return nil, err
	}
	return &wallet.BalanceOutput{Gold: gold}, nil
}

// Credit adds gold
func (s *Store) Credit(ctx context.Context, input wallet.CreditInput) (*wallet.CreditOutput, error) {
	if err := validateAmount(input.PlayerID, input.Amount); err != nil {
		return nil, err
	}

	var gold int
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO wallets (player_id, gold) VALUES (?, ?)
		 ON CONFLICT(player_id) DO UPDATE SET gold = gold + excluded.gold
		 RETURNING gold`,
		input.PlayerID, input.Amount).Scan(&gold)
	if err != nil {
		return nil, errors.Wrap(err, "failed to credit wallet")
	}
	return &wallet.CreditOutput{Gold: gold}, nil
}

// Debit removes gold inside a transaction so the balance never goes negative
func (s *Store) Debit(ctx context.Context, input wallet.DebitInput) (*wallet.DebitOutput, error) {
	if err := validateAmount(input.PlayerID, input.Amount); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin debit")
	}
	defer func() { _ = tx.Rollback() }()

	balance, err := s.balance(ctx, tx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if balance < input.Amount {
		return nil, errors.InsufficientResourcef("余额不足，当前只有 %d 乌帕", balance).
			WithMeta("balance", balance).
			WithMeta("amount", input.Amount)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE wallets SET gold = gold - ? WHERE player_id = ?`, input.Amount, input.PlayerID); err != nil {
		return nil, errors.Wrap(err, "failed to debit wallet")
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit debit")
	}
	return &wallet.DebitOutput{Gold: balance - input.Amount}, nil
}

// GetShop returns the shop for a date
func (s *Store) GetShop(ctx context.Context, input daily.GetShopInput) (*daily.GetShopOutput, error) {
	if input.Date == "" {
		return nil, errors.InvalidArgument("date cannot be empty")
	}

	shop, err := s.shop(ctx, input.Date)
	if err != nil {
		return nil, err
	}
	return &daily.GetShopOutput{Shop: shop}, nil
}

// SaveShop stores the shop unless its date already has one
func (s *Store) SaveShop(ctx context.Context, input daily.SaveShopInput) (*daily.SaveShopOutput, error) {
	if input.Shop == nil {
		return nil, errors.InvalidArgument("shop cannot be nil")
	}
	if input.Shop.Date == "" {
		return nil, errors.InvalidArgument("date cannot be empty")
	}

	data, err := json.Marshal(input.Shop)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal shop")
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO daily_shops (date, data) VALUES (?, ?) ON CONFLICT(date) DO NOTHING`,
		input.Shop.Date, string(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to save shop")
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return &daily.SaveShopOutput{Shop: input.Shop, Created: true}, nil
	}

	existing, err := s.shop(ctx, input.Shop.Date)
	if err != nil {
		return nil, err
	}
	return &daily.SaveShopOutput{Shop: existing}, nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) balance(ctx context.Context, q queryer, playerID string) (int, error) {
	var gold int
	err := q.QueryRowContext(ctx, `SELECT gold FROM wallets WHERE player_id = ?`, playerID).Scan(&gold)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to get balance")
	}
	return gold, nil
}

func (s *Store) shop(ctx context.Context, date string) (*entities.DailyShop, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM daily_shops WHERE date = ?`, date).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("no shop for %s", date)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get shop")
	}

	var shop entities.DailyShop
	if err := json.Unmarshal([]byte(data), &shop); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal shop")
	}
	return &shop, nil
}

func validateAmount(playerID string, amount int) error {
	if playerID == "" {
		return errors.InvalidArgument("player ID cannot be empty")
	}
	if amount < 0 {
		return errors.InvalidArgument("amount cannot be negative")
	}
	return nil
}

// migrate applies each embedded .sql file once, in name order
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (name TEXT PRIMARY KEY, applied_at INTEGER NOT NULL)`); err != nil {
		return errors.Wrap(err, "failed to ensure migration table")
	}

	names, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return errors.Wrap(err, "failed to list migrations")
	}
	sort.Strings(names)

	for _, name := range names {
		var applied int
		if err := db.QueryRowContext(ctx,
			`SELECT COUNT(1) FROM schema_migrations WHERE name = ?`, name).Scan(&applied); err != nil {
			return errors.Wrapf(err, "failed to check migration %s", name)
		}
		if applied > 0 {
			continue
		}

		body, err := fs.ReadFile(migrations.FS, name)
		if err != nil {
			return errors.Wrapf(err, "failed to read migration %s", name)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return errors.Wrap(err, "failed to begin migration")
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "failed to apply migration %s", name)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)`, name, time.Now().UnixMilli()); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "failed to record migration %s", name)
		}
		if err := tx.Commit(); err != nil {
			return errors.Wrapf(err, "failed to commit migration %s", name)
		}
	}
	return nil
}
