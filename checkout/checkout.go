// Package checkout validates the shipping form against the current
// cart and finalizes the (simulated) order.
package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/azgaming/storefront/cart"
	inErrors "github.com/azgaming/storefront/internal/errors"
	"github.com/azgaming/storefront/internal/log"
	"github.com/azgaming/storefront/notify"
)

type State string

const (
	StateEditing    State = "editing"
	StateProcessing State = "processing"
	StatePlaced     State = "placed"
)

const defaultProcessingDelay = 1500 * time.Millisecond

// Totals is the order summary shown on the checkout page. Shipping is
// always free.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// Flow runs one checkout attempt. Construct a new Flow per attempt; a
// placed flow stays placed so the confirmation view remains reachable
// after the cart has been emptied.
type Flow struct {
	mu       sync.Mutex
	state    State
	cart     *cart.Store
	delay    time.Duration
	taxRate  decimal.Decimal
	validate *validator.Validate
	notifier notify.Notifier
	logger   zerolog.Logger
}

type Option func(f *Flow)

func WithProcessingDelay(d time.Duration) Option {
	return func(f *Flow) {
		f.delay = d
	}
}

func WithTaxRate(rate decimal.Decimal) Option {
	return func(f *Flow) {
		f.taxRate = rate
	}
}

func WithNotifier(n notify.Notifier) Option {
	return func(f *Flow) {
		f.notifier = n
	}
}

func NewFlow(cartStore *cart.Store, logger zerolog.Logger, opts ...Option) *Flow {
	f := &Flow{
		state:    StateEditing,
		cart:     cartStore,
		delay:    defaultProcessingDelay,
		taxRate:  decimal.RequireFromString("0.1"),
		validate: newValidator(),
		logger:   logger.With().Str(log.KeyTag, "checkout Flow").Logger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// CanCheckout reports whether the checkout view is reachable: the cart
// has items, or an order was just placed (the confirmation must not be
// redirected away from).
func (f *Flow) CanCheckout() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == StatePlaced || f.cart.Count() > 0
}

// Totals computes subtotal, tax and total from the current cart. Tax is
// rounded half-up to cents before it is added, so the displayed lines
// always sum to the displayed total.
func (f *Flow) Totals() Totals {
	subtotal := f.cart.Total()
	tax := subtotal.Mul(f.taxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: decimal.Zero,
		Total:    subtotal.Add(tax),
	}
}

func (f *Flow) notify(level notify.Level, message string) {
	if f.notifier == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error().
				Str(log.KeyProcess, "delivering notification").
				Str(log.KeyNotification, message).
				Msgf("notifier panicked: %v", r)
		}
	}()
	f.notifier.Notify(notify.Notification{Level: level, Message: message})
}

// Submit validates the form and, when it passes, runs the simulated
// processing delay, clears the cart exactly once and transitions to
// StatePlaced. Validation failure returns FieldErrors and leaves the
// flow editing; the cart is never touched before validation succeeds.
// The processing delay is deliberately not cancellable.
func (f *Flow) Submit(c context.Context, form Form) error {
	logger := f.logger.With().
		Ctx(c).
		Str(log.KeyProcess, "submitting checkout").
		Logger()

	f.mu.Lock()
	switch f.state {
	case StateProcessing:
		f.mu.Unlock()
		logger.Warn().Str(log.KeyState, string(StateProcessing)).Msg("submission rejected")
		return inErrors.ErrCheckoutInProgress
	case StatePlaced:
		f.mu.Unlock()
		logger.Warn().Str(log.KeyState, string(StatePlaced)).Msg("submission rejected")
		return inErrors.ErrOrderPlaced
	}

	if f.cart.Count() == 0 {
		f.mu.Unlock()
		logger.Warn().Msg("submission rejected: cart is empty")
		f.notify(notify.LevelError, "Your cart is empty. Add some games first!")
		return inErrors.ErrEmptyCart
	}

	if fieldErrs := validateForm(f.validate, form); fieldErrs != nil {
		f.mu.Unlock()
		logger.Info().Int("invalidFields", len(fieldErrs)).Msg("form validation failed")
		f.notify(notify.LevelError, "Please fix the errors in the form")
		return fieldErrs
	}

	f.state = StateProcessing
	f.mu.Unlock()

	logger.Info().Str(log.KeyState, string(StateProcessing)).Msg("processing order")
	f.notify(notify.LevelSuccess, "Processing your order...")

	timer := time.NewTimer(f.delay)
	defer timer.Stop()
	<-timer.C

	f.cart.Clear()
	f.mu.Lock()
	f.state = StatePlaced
	f.mu.Unlock()
	logger.Info().Str(log.KeyState, string(StatePlaced)).Msg("order placed")

	return nil
}

// Validate checks the form without submitting, for UIs that validate
// before entering the processing step.
func (f *Flow) Validate(form Form) FieldErrors {
	return validateForm(f.validate, form)
}
