package cart

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azgaming/storefront/catalog"
	"github.com/azgaming/storefront/internal/storage"
	"github.com/azgaming/storefront/notify"
)

type recorder struct {
	notes []notify.Notification
}

func (r *recorder) Notify(n notify.Notification) {
	r.notes = append(r.notes, n)
}

func (r *recorder) messages() []string {
	messages := make([]string, 0, len(r.notes))
	for _, n := range r.notes {
		messages = append(messages, n.Message)
	}
	return messages
}

func item(t *testing.T, id string) catalog.Item {
	t.Helper()
	it, ok := catalog.Default().FindByID(id)
	require.True(t, ok, "catalog item %s must exist", id)
	return it
}

func newTestStore(t *testing.T) (*Store, *storage.MemStore, *recorder) {
	t.Helper()
	mem := storage.NewMemStore()
	rec := &recorder{}
	return NewStore(mem, zerolog.Nop(), WithNotifier(rec)), mem, rec
}

func TestAddSameItemAccumulatesSingleLine(t *testing.T) {
	s, _, _ := newTestStore(t)
	game := item(t, "ps4-001")

	for i := 0; i < 3; i++ {
		s.Add(game)
	}

	lines := s.Items()
	require.Len(t, lines, 1)
	assert.Equal(t, "ps4-001", lines[0].ID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 3, s.Count())
}

func TestCountAndTotal(t *testing.T) {
	s, _, _ := newTestStore(t)

	assert.Equal(t, 0, s.Count())
	assert.True(t, s.Total().IsZero())

	s.Add(item(t, "ps4-001")) // 39.99
	assert.Equal(t, 1, s.Count())
	assert.True(t, s.Total().Equal(decimal.RequireFromString("39.99")), "got %s", s.Total())

	s.Add(item(t, "ps4-001"))
	assert.Equal(t, 2, s.Count())
	assert.True(t, s.Total().Equal(decimal.RequireFromString("79.98")), "got %s", s.Total())

	s.Add(item(t, "ps5-002")) // 49.99
	assert.Equal(t, 3, s.Count())
	assert.True(t, s.Total().Equal(decimal.RequireFromString("129.97")), "got %s", s.Total())

	s.Decrease("ps4-001")
	s.Decrease("ps4-001") // removes the line
	assert.Equal(t, 1, s.Count())
	assert.True(t, s.Total().Equal(decimal.RequireFromString("49.99")), "got %s", s.Total())
}

func TestFreeToPlayItemCounts(t *testing.T) {
	s, _, _ := newTestStore(t)

	s.Add(item(t, "pc-003")) // Valorant, price 0

	assert.Equal(t, 1, s.Count())
	assert.True(t, s.Total().IsZero())
}

func TestRemoveIsIdempotent(t *testing.T) {
	s, _, rec := newTestStore(t)
	s.Add(item(t, "ps4-001"))

	s.Remove("ps4-001")
	s.Remove("ps4-001")

	assert.Empty(t, s.Items())
	assert.Equal(t, []string{
		"The Last of Us Part II added to cart",
		"The Last of Us Part II removed from cart",
	}, rec.messages(), "second remove must not notify again")
}

func TestRemoveUnknownIDIsSilent(t *testing.T) {
	s, _, rec := newTestStore(t)

	s.Remove("no-such-id")
	s.Increase("no-such-id")
	s.Decrease("no-such-id")

	assert.Empty(t, s.Items())
	assert.Empty(t, rec.notes)
}

func TestDecreaseAtQuantityOneRemovesLine(t *testing.T) {
	s, _, rec := newTestStore(t)
	s.Add(item(t, "ps4-002"))

	s.Decrease("ps4-002")

	assert.Empty(t, s.Items(), "quantity must never reach 0 on a live line")
	assert.Contains(t, rec.messages(), "God of War removed from cart")
}

func TestIncreaseHasNoUpperBound(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.Add(item(t, "pc-001"))

	for i := 0; i < 99; i++ {
		s.Increase("pc-001")
	}

	assert.Equal(t, 100, s.Count())
}

func TestClearAlwaysNotifies(t *testing.T) {
	s, _, rec := newTestStore(t)

	s.Clear()
	s.Add(item(t, "ps4-001"))
	s.Clear()

	assert.Empty(t, s.Items())
	assert.Equal(t, 2, countOf(rec.messages(), "Cart cleared"))
}

func TestAddNotificationsDistinguishNewFromRepeat(t *testing.T) {
	s, _, rec := newTestStore(t)
	game := item(t, "ps5-001")

	s.Add(game)
	s.Add(game)

	assert.Equal(t, []string{
		"Demon's Souls added to cart",
		"Added another Demon's Souls to cart",
	}, rec.messages())
}

func TestSnapshotRoundTrip(t *testing.T) {
	mem := storage.NewMemStore()
	s := NewStore(mem, zerolog.Nop())

	s.Add(item(t, "ps4-001"))
	s.Add(item(t, "ps5-002"))
	s.Add(item(t, "ps4-001"))
	s.Add(item(t, "pc-010"))

	reloaded := NewStore(mem, zerolog.Nop())
	want := s.Items()
	got := reloaded.Items()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID, "insertion order must survive reload")
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.Equal(t, want[i].Platform, got[i].Platform)
		assert.Equal(t, want[i].Quantity, got[i].Quantity)
		assert.True(t, want[i].Price.Equal(got[i].Price))
	}
}

func TestCorruptSnapshotFallsBackToEmpty(t *testing.T) {
	mem := storage.NewMemStore()
	require.NoError(t, mem.Set("azgaming-cart", []byte("{not json")))

	s := NewStore(mem, zerolog.Nop())
	assert.Empty(t, s.Items())

	// the store keeps working and the next save repairs the snapshot
	s.Add(item(t, "ps4-001"))
	reloaded := NewStore(mem, zerolog.Nop())
	assert.Equal(t, 1, reloaded.Count())
}

func TestPanickingNotifierDoesNotAffectState(t *testing.T) {
	mem := storage.NewMemStore()
	s := NewStore(mem, zerolog.Nop(), WithNotifier(notify.Func(func(notify.Notification) {
		panic("broken subscriber")
	})))

	assert.NotPanics(t, func() {
		s.Add(item(t, "ps4-001"))
	})
	assert.Equal(t, 1, s.Count())
}

func countOf(messages []string, want string) int {
	n := 0
	for _, m := range messages {
		if m == want {
			n++
		}
	}
	return n
}
