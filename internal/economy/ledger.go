package economy

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/posevs/posevs/internal/bus"
	"github.com/posevs/posevs/internal/logging"
	"go.uber.org/zap"
)

// BalanceKey is the storage key of the gold balance. The suffix versions the
// stored layout.
const BalanceKey = "eco.gold.v1"

type Publisher interface {
	Publish(bus.Event)
}

func New(ctx context.Context, store Store, pub Publisher) *Ledger {
	return &Ledger{
		logger: logging.FromContext(ctx).Named("economy.ledger"),
		store:  store,
		pub:    pub,
	}
}

// Ledger holds the player's gold. The balance never goes negative.
type Ledger struct {
	mtx sync.Mutex

	logger  *zap.SugaredLogger
	store   Store
	pub     Publisher
	balance int
}

// Init loads the persisted balance, falling back to config.StartGold, and
// announces it.
func (l *Ledger) Init(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	balance, ok, err := l.store.LoadBalance(BalanceKey)
	if err != nil {
		return fmt.Errorf("load balance: %w", err)
	}

	if !ok || balance < 0 {
		balance = config.StartGold
		l.logger.Infof("no stored balance, starting with %d gold", balance)
	}

	l.mtx.Lock()
	l.balance = balance
	l.mtx.Unlock()

	l.notify(balance)
	return nil
}

func (l *Ledger) Balance() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.balance
}

// TrySpend takes amount from the balance if it is covered. Insufficient funds
// and negative amounts leave the balance untouched and return false.
func (l *Ledger) TrySpend(amount int) bool {
	if amount < 0 {
		l.logger.Warnf("rejecting spend of negative amount %d", amount)
		return false
	}

	l.mtx.Lock()
	if l.balance < amount {
		l.mtx.Unlock()
		return false
	}
	l.balance -= amount
	balance := l.balance
	l.mtx.Unlock()

	l.save(balance)
	l.notify(balance)
	return true
}

// Grant adds amount to the balance, saturating at math.MaxInt.
func (l *Ledger) Grant(amount int) {
	if amount < 0 {
		l.logger.Warnf("ignoring grant of negative amount %d", amount)
		return
	}

	l.mtx.Lock()
	if amount > math.MaxInt-l.balance {
		l.logger.Warnf("grant of %d overflows balance %d, capping at %d", amount, l.balance, math.MaxInt)
		l.balance = math.MaxInt
	} else {
		l.balance += amount
	}
	balance := l.balance
	l.mtx.Unlock()

	l.save(balance)
	l.notify(balance)
}

func (l *Ledger) save(balance int) {
	if err := l.store.SaveBalance(BalanceKey, balance); err != nil {
		l.logger.Errorf("save balance %d: %v", balance, err)
	}
}

func (l *Ledger) notify(balance int) {
	if l.pub != nil {
		l.pub.Publish(bus.BalanceUpdated{Balance: balance})
	}
}
