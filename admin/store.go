// Package admin holds the content-management side of the storefront:
// a single persisted blob of products, pages, posts, banners and
// homepage sections, plus the authentication flag and site settings.
// It is entirely independent of the visitor's cart.
package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/azgaming/storefront/catalog"
	inErrors "github.com/azgaming/storefront/internal/errors"
	"github.com/azgaming/storefront/internal/log"
	"github.com/azgaming/storefront/internal/storage"
	"github.com/azgaming/storefront/notify"
)

const dataKey = "azgaming-admin-data"

type Store struct {
	mu       sync.Mutex
	storage  storage.Store
	catalog  *catalog.Catalog
	notifier notify.Notifier
	logger   zerolog.Logger
	now      func() time.Time
}

type Option func(s *Store)

func WithNotifier(n notify.Notifier) Option {
	return func(s *Store) {
		s.notifier = n
	}
}

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(st storage.Store, cat *catalog.Catalog, logger zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		storage: st,
		catalog: cat,
		logger:  logger.With().Str(log.KeyTag, "admin Store").Logger(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// load reads the whole blob. A missing or corrupt blob is replaced
// with the seeded defaults; corruption is logged, never surfaced.
func (s *Store) load() (State, error) {
	logger := s.logger.With().
		Str(log.KeyProcess, "loading admin data").
		Str(log.KeyStorageKey, dataKey).
		Logger()

	raw, err := s.storage.Get(dataKey)
	if err != nil {
		if !errors.Is(err, inErrors.ErrNoItem) {
			return State{}, fmt.Errorf("failed loading admin data with error=%w", err)
		}
		logger.Info().Msg("no admin data found, seeding defaults")
		return s.seed()
	}

	state := State{}
	if err = json.Unmarshal(raw, &state); err != nil {
		err = fmt.Errorf("failed parsing admin data with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return s.seed()
	}
	return state, nil
}

func (s *Store) seed() (State, error) {
	state := defaultState(s.catalog, s.timestamp())
	if err := s.save(state); err != nil {
		return State{}, err
	}
	return state, nil
}

func (s *Store) save(state State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed marshaling admin data with error=%w", err)
	}
	if err = s.storage.Set(dataKey, raw); err != nil {
		return fmt.Errorf("failed saving admin data with error=%w", err)
	}
	return nil
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

func (s *Store) notFound(kind, id string) error {
	s.logger.Warn().
		Str(log.KeyEntityKind, kind).
		Str(log.KeyEntityID, id).
		Msg("entity not found")
	s.notify(notify.LevelError, kind+" not found")
	return fmt.Errorf("%s id=%s with error=%w", kind, id, inErrors.ErrNotFound)
}

func (s *Store) logMutation(kind, id, action string) {
	s.logger.Info().
		Str(log.KeyProcess, action).
		Str(log.KeyEntityKind, kind).
		Str(log.KeyEntityID, id).
		Msgf("%s %s", action, kind)
}

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

func patchString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func patchBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// Product operations

func (s *Store) Products() ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	return state.Products, nil
}

func (s *Store) Product(id string) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return Product{}, err
	}
	i := indexByID(state.Products, id, func(p Product) string { return p.ID })
	if i < 0 {
		return Product{}, s.notFound("Product", id)
	}
	return state.Products[i], nil
}

// AddProduct stores the product under a generated id; any id or
// timestamp on the argument is overwritten.
func (s *Store) AddProduct(p Product) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return Product{}, err
	}
	p.ID = newID("custom")
	p.UpdatedAt = s.timestamp()
	state.Products = append(state.Products, p)
	if err = s.save(state); err != nil {
		return Product{}, err
	}
	s.logMutation("Product", p.ID, "adding")
	s.notify(notify.LevelSuccess, "Product added successfully")
	return p, nil
}

func (s *Store) UpdateProduct(id string, patch ProductPatch) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return Product{}, err
	}
	i := indexByID(state.Products, id, func(p Product) string { return p.ID })
	if i < 0 {
		return Product{}, s.notFound("Product", id)
	}
	p := &state.Products[i]
	patchString(&p.Title, patch.Title)
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	patchString(&p.Image, patch.Image)
	if patch.Platform != nil {
		p.Platform = *patch.Platform
	}
	patchString(&p.Description, patch.Description)
	patchBool(&p.Featured, patch.Featured)
	patchString(&p.ReleaseDate, patch.ReleaseDate)
	patchString(&p.Publisher, patch.Publisher)
	patchString(&p.DeveloperStudio, patch.DeveloperStudio)
	p.UpdatedAt = s.timestamp()
	if err = s.save(state); err != nil {
		return Product{}, err
	}
	s.logMutation("Product", id, "updating")
	s.notify(notify.LevelSuccess, "Product updated successfully")
	return *p, nil
}

func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return err
	}
	i := indexByID(state.Products, id, func(p Product) string { return p.ID })
	if i < 0 {
		return s.notFound("Product", id)
	}
	state.Products = append(state.Products[:i], state.Products[i+1:]...)
	if err = s.save(state); err != nil {
		return err
	}
	s.logMutation("Product", id, "deleting")
	s.notify(notify.LevelSuccess, "Product deleted successfully")
	return nil
}

// Page operations

func (s *Store) Pages() ([]Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	return state.Pages, nil
}

func (s *Store) Page(id string) (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return Page{}, err
	}
	i := indexByID(state.Pages, id, func(p Page) string { return p.ID })
	if i < 0 {
		return Page{}, s.notFound("Page", id)
	}
	return state.Pages[i], nil
}

func (s *Store) AddPage(p Page) (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return Page{}, err
	}
	p.ID = newID("page")
	p.CreatedAt = s.timestamp()
	p.UpdatedAt = p.CreatedAt
	state.Pages = append(state.Pages, p)
	if err = s.save(state); err != nil {
		return Page{}, err
	}
	s.logMutation("Page", p.ID, "adding")
	s.notify(notify.LevelSuccess, "Page added successfully")
	return p, nil
}

func (s *Store) UpdatePage(id string, patch PagePatch) (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return Page{}, err
	}
	i := indexByID(state.Pages, id, func(p Page) string { return p.ID })
	if i < 0 {
		return Page{}, s.notFound("Page", id)
	}
	p := &state.Pages[i]
	patchString(&p.Title, patch.Title)
	patchString(&p.Slug, patch.Slug)
	patchString(&p.Content, patch.Content)
	patchBool(&p.IsPublished, patch.IsPublished)
	p.UpdatedAt = s.timestamp()
	if err = s.save(state); err != nil {
		return Page{}, err
	}
	s.logMutation("Page", id, "updating")
	s.notify(notify.LevelSuccess, "Page updated successfully")
	return *p, nil
}

func (s *Store) DeletePage(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return err
	}
	i := indexByID(state.Pages, id, func(p Page) string { return p.ID })
	if i < 0 {
		return s.notFound("Page", id)
	}
	state.Pages = append(state.Pages[:i], state.Pages[i+1:]...)
	if err = s.save(state); err != nil {
		return err
	}
	s.logMutation("Page", id, "deleting")
	s.notify(notify.LevelSuccess, "Page deleted successfully")
	return nil
}

// Post operations

func (s *Store) Posts() ([]Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	return state.Posts, nil
}

func (s *Store) Post(id string) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return Post{}, err
	}
	i := indexByID(state.Posts, id, func(p Post) string { return p.ID })
	if i < 0 {
		return Post{}, s.notFound("Post", id)
	}
	return state.Posts[i], nil
}

func (s *Store) AddPost(p Post) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return Post{}, err
	}
	p.ID = newID("post")
	p.CreatedAt = s.timestamp()
	p.UpdatedAt = p.CreatedAt
	state.Posts = append(state.Posts, p)
	if err = s.save(state); err != nil {
		return Post{}, err
	}
	s.logMutation("Post", p.ID, "adding")
	s.notify(notify.LevelSuccess, "Post added successfully")
	return p, nil
}

func (s *Store) UpdatePost(id string, patch PostPatch) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return Post{}, err
	}
	i := indexByID(state.Posts, id, func(p Post) string { return p.ID })
	if i < 0 {
		return Post{}, s.notFound("Post", id)
	}
	p := &state.Posts[i]
	patchString(&p.Title, patch.Title)
	patchString(&p.Slug, patch.Slug)
	patchString(&p.Excerpt, patch.Excerpt)
	patchString(&p.Content, patch.Content)
	patchString(&p.CoverImage, patch.CoverImage)
	patchBool(&p.IsPublished, patch.IsPublished)
	p.UpdatedAt = s.timestamp()
	if err = s.save(state); err != nil {
		return Post{}, err
	}
	s.logMutation("Post", id, "updating")
	s.notify(notify.LevelSuccess, "Post updated successfully")
	return *p, nil
}

func (s *Store) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return err
	}
	i := indexByID(state.Posts, id, func(p Post) string { return p.ID })
	if i < 0 {
		return s.notFound("Post", id)
	}
	state.Posts = append(state.Posts[:i], state.Posts[i+1:]...)
	if err = s.save(state); err != nil {
		return err
	}
	s.logMutation("Post", id, "deleting")
	s.notify(notify.LevelSuccess, "Post deleted successfully")
	return nil
}

// Banner operations

func (s *Store) Banners() ([]Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	return state.Banners, nil
}

func (s *Store) Banner(id string) (Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return Banner{}, err
	}
	i := indexByID(state.Banners, id, func(b Banner) string { return b.ID })
	if i < 0 {
		return Banner{}, s.notFound("Banner", id)
	}
	return state.Banners[i], nil
}

func (s *Store) AddBanner(b Banner) (Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return Banner{}, err
	}
	b.ID = newID("banner")
	b.CreatedAt = s.timestamp()
	b.UpdatedAt = b.CreatedAt
	state.Banners = append(state.Banners, b)
	if err = s.save(state); err != nil {
		return Banner{}, err
	}
	s.logMutation("Banner", b.ID, "adding")
	s.notify(notify.LevelSuccess, "Banner added successfully")
	return b, nil
}

func (s *Store) UpdateBanner(id string, patch BannerPatch) (Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return Banner{}, err
	}
	i := indexByID(state.Banners, id, func(b Banner) string { return b.ID })
	if i < 0 {
		return Banner{}, s.notFound("Banner", id)
	}
	b := &state.Banners[i]
	patchString(&b.Title, patch.Title)
	patchString(&b.Description, patch.Description)
	patchString(&b.ImageURL, patch.ImageURL)
	patchString(&b.Link, patch.Link)
	patchBool(&b.IsActive, patch.IsActive)
	if patch.Position != nil {
		b.Position = *patch.Position
	}
	b.UpdatedAt = s.timestamp()
	if err = s.save(state); err != nil {
		return Banner{}, err
	}
	s.logMutation("Banner", id, "updating")
	s.notify(notify.LevelSuccess, "Banner updated successfully")
	return *b, nil
}

func (s *Store) DeleteBanner(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return err
	}
	i := indexByID(state.Banners, id, func(b Banner) string { return b.ID })
	if i < 0 {
		return s.notFound("Banner", id)
	}
	state.Banners = append(state.Banners[:i], state.Banners[i+1:]...)
	if err = s.save(state); err != nil {
		return err
	}
	s.logMutation("Banner", id, "deleting")
	s.notify(notify.LevelSuccess, "Banner deleted successfully")
	return nil
}

// Homepage section operations

// HomepageSections returns the sections sorted by their display order.
func (s *Store) HomepageSections() ([]HomepageSection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	sections := state.HomepageSections
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
	return sections, nil
}

func (s *Store) HomepageSection(id string) (HomepageSection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return HomepageSection{}, err
	}
	i := indexByID(state.HomepageSections, id, func(h HomepageSection) string { return h.ID })
	if i < 0 {
		return HomepageSection{}, s.notFound("Homepage section", id)
	}
	return state.HomepageSections[i], nil
}

func (s *Store) AddHomepageSection(h HomepageSection) (HomepageSection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return HomepageSection{}, err
	}
	h.ID = newID("section")
	state.HomepageSections = append(state.HomepageSections, h)
	if err = s.save(state); err != nil {
		return HomepageSection{}, err
	}
	s.logMutation("Homepage section", h.ID, "adding")
	s.notify(notify.LevelSuccess, "Homepage section added successfully")
	return h, nil
}

func (s *Store) UpdateHomepageSection(id string, patch HomepageSectionPatch) (HomepageSection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return HomepageSection{}, err
	}
	i := indexByID(state.HomepageSections, id, func(h HomepageSection) string { return h.ID })
	if i < 0 {
		return HomepageSection{}, s.notFound("Homepage section", id)
	}
	h := &state.HomepageSections[i]
	patchString(&h.Title, patch.Title)
	if patch.Type != nil {
		h.Type = *patch.Type
	}
	patchString(&h.Content, patch.Content)
	if patch.Order != nil {
		h.Order = *patch.Order
	}
	patchBool(&h.IsActive, patch.IsActive)
	if err = s.save(state); err != nil {
		return HomepageSection{}, err
	}
	s.logMutation("Homepage section", id, "updating")
	s.notify(notify.LevelSuccess, "Homepage section updated successfully")
	return *h, nil
}

func (s *Store) DeleteHomepageSection(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return err
	}
	i := indexByID(state.HomepageSections, id, func(h HomepageSection) string { return h.ID })
	if i < 0 {
		return s.notFound("Homepage section", id)
	}
	state.HomepageSections = append(state.HomepageSections[:i], state.HomepageSections[i+1:]...)
	if err = s.save(state); err != nil {
		return err
	}
	s.logMutation("Homepage section", id, "deleting")
	s.notify(notify.LevelSuccess, "Homepage section deleted successfully")
	return nil
}
