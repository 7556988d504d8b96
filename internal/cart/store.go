package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"nexus-storefront/internal/domain"
	"nexus-storefront/internal/storage"
)

// Store owns the authoritative list of cart line items for one shopper
// session. Every mutation updates memory first and then mirrors the full
// state into the KV collaborator; mirror failures are logged and swallowed,
// so the in-memory cart stays usable even when persistence is down.
//
// The mirror is written but never re-read after Initialize. Two stores
// sharing a key will silently diverge; last writer wins. Callers that need
// shared state must route through one store.
type Store struct {
	mu          sync.Mutex
	items       []domain.CartItem
	kv          storage.KV
	key         string
	log         zerolog.Logger
	initialized bool
}

func New(kv storage.KV, key string, log zerolog.Logger) *Store {
	return &Store{
		kv:  kv,
		key: key,
		log: log.With().Str("cart_key", key).Logger(),
	}
}

// Initialize loads the persisted mirror once. A missing blob starts an empty
// cart; an unparseable or malformed blob is discarded and logged, never
// surfaced. The store always ends up initialized, which is what gates mirror
// writes (a write before the load would clobber saved state with an empty
// cart).
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return
	}
	s.initialized = true

	blob, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Warn().Err(err).Msg("cart mirror unavailable, starting empty")
		}
		return
	}

	items, err := decodeItems(blob)
	if err != nil {
		s.log.Warn().Err(err).Msg("discarding malformed cart mirror")
		if err := s.kv.Remove(ctx, s.key); err != nil {
			s.log.Warn().Err(err).Msg("failed to remove malformed cart mirror")
		}
		return
	}
	s.items = items
}

func decodeItems(blob string) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return nil, err
	}
	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, errors.New("line item quantity below 1")
		}
		if _, dup := seen[it.ProductID]; dup {
			return nil, errors.New("duplicate line item")
		}
		seen[it.ProductID] = struct{}{}
	}
	return items, nil
}

// Add inserts a line item or, when the product is already in the cart, bumps
// its quantity by qty. Quantities below 1 default to 1. No stock ceiling is
// enforced here; that is the caller's concern.
func (s *Store) Add(ctx context.Context, item domain.CartItem, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity += qty
			s.persist(ctx)
			return
		}
	}
	item.Quantity = qty
	s.items = append(s.items, item)
	s.persist(ctx)
}

// AddRaw normalizes an externally-sourced record before insertion.
func (s *Store) AddRaw(ctx context.Context, raw RawProduct, qty int) error {
	item, err := Normalize(raw)
	if err != nil {
		return err
	}
	s.Add(ctx, item, qty)
	return nil
}

// Remove deletes the line item for productID; absent ids are a no-op.
func (s *Store) Remove(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, productID)
}

func (s *Store) removeLocked(ctx context.Context, productID int) {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// UpdateQuantity sets the line item's quantity to exactly qty. A qty below 1
// removes the line instead; an absent product id is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if qty < 1 {
		s.removeLocked(ctx, productID)
		return
	}
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = qty
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist(ctx)
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of all line item quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// Subtotal is the sum of price times quantity over all lines. No rounding is
// applied here; formatting is a presentation concern.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// persist mirrors the current state. Caller holds s.mu, so every write is a
// consistent snapshot and rapid successive mutations degrade to
// last-write-wins, which is safe because writes carry full state, not deltas.
func (s *Store) persist(ctx context.Context) {
	if !s.initialized {
		return
	}
	items := s.items
	if items == nil {
		items = []domain.CartItem{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to encode cart mirror")
		return
	}
	if err := s.kv.Set(ctx, s.key, string(blob)); err != nil {
		s.log.Warn().Err(err).Msg("failed to write cart mirror")
	}
}
