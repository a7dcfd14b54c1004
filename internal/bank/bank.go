package bank

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/ForecastLedger_Go/internal/domain"
)

// Account identifies a balance-holding principal. Caller identities map
// directly onto accounts; the ledger's own custody account is Custody.
type Account string

// Custody is the account holding collected entry fees until claimed.
const Custody Account = "ledger:custody"

// AccountFor maps a caller identity onto its bank account.
func AccountFor(caller domain.Caller) Account {
	return Account(caller)
}

// Bank is the external value-transfer primitive. Transfer is atomic: it
// either moves the full amount or fails with domain.ErrInsufficientFunds
// leaving both balances untouched.
type Bank interface {
	Transfer(ctx context.Context, from, to Account, amount uint64) error
	Balance(ctx context.Context, account Account) (uint64, error)
}

// Memory is an in-process Bank used by the default deployment and tests.
type Memory struct {
	mu       sync.Mutex
	balances map[Account]uint64
}

// NewMemory creates an empty in-memory bank.
func NewMemory() *Memory {
	return &Memory{balances: make(map[Account]uint64)}
}

// Deposit credits amount to account. Used for seeding balances; not part
// of the Bank interface the engine depends on.
func (m *Memory) Deposit(account Account, amount uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[account] += amount
}

// Transfer moves amount from one account to another.
func (m *Memory) Transfer(_ context.Context, from, to Account, amount uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if amount == 0 {
		return nil
	}
	if m.balances[from] < amount {
		return fmt.Errorf("%w: account %s has %d, needs %d", domain.ErrInsufficientFunds, from, m.balances[from], amount)
	}
	m.balances[from] -= amount
	m.balances[to] += amount
	return nil
}

// Balance returns the current balance of account, zero if unknown.
func (m *Memory) Balance(_ context.Context, account Account) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[account], nil
}
