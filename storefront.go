// Package storefront assembles the catalog, cart, checkout and admin
// stores from configuration.
package storefront

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/azgaming/storefront/admin"
	"github.com/azgaming/storefront/cart"
	"github.com/azgaming/storefront/catalog"
	"github.com/azgaming/storefront/checkout"
	"github.com/azgaming/storefront/internal/config"
	"github.com/azgaming/storefront/internal/log"
	"github.com/azgaming/storefront/internal/storage"
	"github.com/azgaming/storefront/notify"
)

// App holds the fully wired stores backed by a shared storage backend.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Catalog  *catalog.Catalog
	Cart     *cart.Store
	Checkout *checkout.Flow
	Admin    *admin.Store
	Auth     *admin.Auth
}

type Option func(o *options)

type options struct {
	notifier notify.Notifier
}

// WithNotifier attaches a single notifier to every store in the app.
func WithNotifier(n notify.Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// NewApp reads the configuration named by filename, initializes logging
// and the storage backend it selects, and constructs every store from
// the configured values.
func NewApp(c context.Context, filename string, opts ...Option) (*App, error) {
	cfg := config.InitConfig(c, filename)
	logger := log.Get(cfg.Application.LogFile, cfg.Application).
		With().
		Str(log.KeyAppName, cfg.Application.Name).
		Str(log.KeyTag, "NewApp").
		Logger()

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	logger = logger.With().Str(log.KeyProcess, "opening storage").Logger()
	logger.Info().
		Str("driver", cfg.Storage.Driver).
		Str("path", cfg.Storage.Path).
		Msg("opening storage")
	st, err := newStorage(cfg.Storage)
	if err != nil {
		err = fmt.Errorf("failed opening storage with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("opened storage")

	logger = logger.With().Str(log.KeyProcess, "parsing tax rate").Logger()
	taxRate, err := decimal.NewFromString(cfg.Checkout.TaxRate)
	if err != nil {
		err = fmt.Errorf("failed parsing tax_rate=%s with error=%w", cfg.Checkout.TaxRate, err)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	cartOpts := []cart.Option{}
	checkoutOpts := []checkout.Option{
		checkout.WithProcessingDelay(cfg.Checkout.ProcessingDelay),
		checkout.WithTaxRate(taxRate),
	}
	adminOpts := []admin.Option{}
	authOpts := []admin.AuthOption{}
	if o.notifier != nil {
		cartOpts = append(cartOpts, cart.WithNotifier(o.notifier))
		checkoutOpts = append(checkoutOpts, checkout.WithNotifier(o.notifier))
		adminOpts = append(adminOpts, admin.WithNotifier(o.notifier))
		authOpts = append(authOpts, admin.WithAuthNotifier(o.notifier))
	}

	logger = logger.With().Str(log.KeyProcess, "constructing stores").Logger()
	cat := catalog.Default()
	cartStore := cart.NewStore(st, logger, cartOpts...)
	flow := checkout.NewFlow(cartStore, logger, checkoutOpts...)
	adminStore := admin.NewStore(st, cat, logger, adminOpts...)
	auth, err := admin.NewAuth(st, cfg.Admin.Username, cfg.Admin.Password, logger, authOpts...)
	if err != nil {
		err = fmt.Errorf("failed initiating admin auth with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("constructed stores")

	return &App{
		Config:   cfg,
		Logger:   logger,
		Catalog:  cat,
		Cart:     cartStore,
		Checkout: flow,
		Admin:    adminStore,
		Auth:     auth,
	}, nil
}

func newStorage(cfg config.Storage) (storage.Store, error) {
	switch cfg.Driver {
	case "file":
		return storage.NewFileStore(cfg.Path)
	case "sqlite":
		return storage.NewSQLiteStore(cfg.Path)
	case "memory":
		return storage.NewMemStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver=%s", cfg.Driver)
	}
}
