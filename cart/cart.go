// Package cart maintains the visitor's shopping cart: an ordered list
// of lines keyed by item id, persisted to the blob store after every
// mutation and rehydrated at construction.
package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/azgaming/storefront/catalog"
	inErrors "github.com/azgaming/storefront/internal/errors"
	"github.com/azgaming/storefront/internal/log"
	"github.com/azgaming/storefront/internal/storage"
	"github.com/azgaming/storefront/notify"
)

const storageKey = "azgaming-cart"

// Line is one catalog item plus the selected quantity. Quantity is
// always at least 1 while the line exists.
type Line struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Price    decimal.Decimal  `json:"price"`
	Image    string           `json:"image"`
	Platform catalog.Platform `json:"platform"`
	Quantity int              `json:"quantity"`
}

type Store struct {
	mu       sync.Mutex
	lines    []Line
	storage  storage.Store
	notifier notify.Notifier
	logger   zerolog.Logger
}

type Option func(s *Store)

func WithNotifier(n notify.Notifier) Option {
	return func(s *Store) {
		s.notifier = n
	}
}

// NewStore rehydrates the cart from the persisted snapshot. A missing
// or corrupt snapshot yields an empty cart; corruption is logged but
// never surfaced to the visitor.
func NewStore(st storage.Store, logger zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		lines:   []Line{},
		storage: st,
		logger:  logger.With().Str(log.KeyTag, "cart Store").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

func (s *Store) load() {
	logger := s.logger.With().
		Str(log.KeyProcess, "loading cart snapshot").
		Str(log.KeyStorageKey, storageKey).
		Logger()

	raw, err := s.storage.Get(storageKey)
	if err != nil {
		if errors.Is(err, inErrors.ErrNoItem) {
			logger.Debug().Msg("no cart snapshot found")
			return
		}
		err = fmt.Errorf("failed loading cart snapshot with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}

	lines := []Line{}
	if err = json.Unmarshal(raw, &lines); err != nil {
		err = fmt.Errorf("failed parsing cart snapshot with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	s.lines = lines
	logger.Info().Int(log.KeyCartCount, len(lines)).Msg("loaded cart snapshot")
}

// save persists the current line list. Persistence failures are logged
// and do not fail the mutation that triggered them: the in-memory cart
// stays authoritative for this session.
func (s *Store) save() {
	logger := s.logger.With().
		Str(log.KeyProcess, "saving cart snapshot").
		Str(log.KeyStorageKey, storageKey).
		Logger()

	raw, err := json.Marshal(s.lines)
	if err != nil {
		err = fmt.Errorf("failed marshaling cart snapshot with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	if err = s.storage.Set(storageKey, raw); err != nil {
		err = fmt.Errorf("failed saving cart snapshot with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
	}
}

func (s *Store) notify(level notify.Level, message string) {
	if s.notifier == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Str(log.KeyProcess, "delivering notification").
				Str(log.KeyNotification, message).
				Msgf("notifier panicked: %v", r)
		}
	}()
	s.notifier.Notify(notify.Notification{Level: level, Message: message})
}

func (s *Store) indexOf(id string) int {
	for i, line := range s.lines {
		if line.ID == id {
			return i
		}
	}
	return -1
}

// Add puts the item in the cart with quantity 1, or bumps the quantity
// of the existing line for the same id.
func (s *Store) Add(item catalog.Item) {
	logger := s.logger.With().
		Str(log.KeyProcess, "adding item to cart").
		Str(log.KeyItemID, item.ID).
		Str(log.KeyItemTitle, item.Title).
		Logger()

	s.mu.Lock()
	i := s.indexOf(item.ID)
	existing := i >= 0
	if existing {
		s.lines[i].Quantity++
		logger = logger.With().Int(log.KeyQuantity, s.lines[i].Quantity).Logger()
	} else {
		s.lines = append(s.lines, Line{
			ID:       item.ID,
			Title:    item.Title,
			Price:    item.Price,
			Image:    item.Image,
			Platform: item.Platform,
			Quantity: 1,
		})
		logger = logger.With().Int(log.KeyQuantity, 1).Logger()
	}
	s.save()
	s.mu.Unlock()

	logger.Info().Msg("added item to cart")
	if existing {
		s.notify(notify.LevelSuccess, fmt.Sprintf("Added another %s to cart", item.Title))
		return
	}
	s.notify(notify.LevelSuccess, fmt.Sprintf("%s added to cart", item.Title))
}

// Remove deletes the line for id. Removing an id that is not in the
// cart is a silent no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	title, removed := s.removeLine(id)
	s.mu.Unlock()

	if !removed {
		s.logger.Debug().
			Str(log.KeyProcess, "removing item from cart").
			Str(log.KeyItemID, id).
			Msg("no cart line for item")
		return
	}
	s.logger.Info().
		Str(log.KeyProcess, "removing item from cart").
		Str(log.KeyItemID, id).
		Str(log.KeyItemTitle, title).
		Msg("removed item from cart")
	s.notify(notify.LevelInfo, fmt.Sprintf("%s removed from cart", title))
}

// removeLine deletes the line and persists. Callers hold s.mu.
func (s *Store) removeLine(id string) (title string, removed bool) {
	i := s.indexOf(id)
	if i < 0 {
		return "", false
	}
	title = s.lines[i].Title
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.save()
	return title, true
}

// Increase bumps the quantity of an existing line by 1; no-op if the
// line does not exist. No upper bound is enforced.
func (s *Store) Increase(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug().
			Str(log.KeyProcess, "increasing quantity").
			Str(log.KeyItemID, id).
			Msg("no cart line for item")
		return
	}
	s.lines[i].Quantity++
	s.save()
	s.logger.Info().
		Str(log.KeyProcess, "increasing quantity").
		Str(log.KeyItemID, id).
		Int(log.KeyQuantity, s.lines[i].Quantity).
		Msg("increased quantity")
}

// Decrease lowers the quantity of an existing line by 1. At quantity 1
// it behaves exactly like Remove, notification included.
func (s *Store) Decrease(id string) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug().
			Str(log.KeyProcess, "decreasing quantity").
			Str(log.KeyItemID, id).
			Msg("no cart line for item")
		return
	}
	if s.lines[i].Quantity == 1 {
		title, _ := s.removeLine(id)
		s.mu.Unlock()
		s.logger.Info().
			Str(log.KeyProcess, "decreasing quantity").
			Str(log.KeyItemID, id).
			Str(log.KeyItemTitle, title).
			Msg("removed item from cart")
		s.notify(notify.LevelInfo, fmt.Sprintf("%s removed from cart", title))
		return
	}
	s.lines[i].Quantity--
	quantity := s.lines[i].Quantity
	s.save()
	s.mu.Unlock()

	s.logger.Info().
		Str(log.KeyProcess, "decreasing quantity").
		Str(log.KeyItemID, id).
		Int(log.KeyQuantity, quantity).
		Msg("decreased quantity")
}

// Clear empties the cart. The notification is emitted even when the
// cart was already empty.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = []Line{}
	s.save()
	s.mu.Unlock()

	s.logger.Info().Str(log.KeyProcess, "clearing cart").Msg("cleared cart")
	s.notify(notify.LevelInfo, "Cart cleared")
}

// Items returns the current lines in insertion order.
func (s *Store) Items() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]Line, len(s.lines))
	copy(cp, s.lines)
	return cp
}

// Total is the sum of price*quantity over all lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Count is the sum of all quantities, not the number of distinct lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}
