// Package cart holds the shared cart state for one storefront context and
// keeps it in sync with the cart service and with other contexts attached to
// the same durable storage.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/minshop/storefront/internal/domain"
	"github.com/minshop/storefront/internal/port"
	"github.com/minshop/storefront/internal/storage"
)

const (
	// TokenKey is the durable storage key holding the cart token.
	TokenKey = "cartToken"

	// RevisionKey is the cross-context signalling key. Its value is a fresh
	// uuid per broadcast, so every broadcast observably changes the key even
	// when the token itself is stable. Subscribers watch only this key.
	RevisionKey = "cartRevision"
)

// FetchFailedMessage is the fixed user-facing message surfaced when the cart
// cannot be loaded. The previous snapshot stays available alongside it.
const FetchFailedMessage = "unable to load the cart, please try again later"

// ErrSuperseded reports that a response arrived after a newer operation had
// already been issued; the stale response was discarded instead of
// overwriting newer state.
var ErrSuperseded = errors.New("superseded by a newer cart operation")

// Store owns one context's cart snapshot. It is constructed explicitly and
// passed to whoever needs it; there is no package-level instance. All
// mutations reconcile authoritatively: a successful call replaces the
// snapshot wholesale with the server's cart, never a local patch.
type Store struct {
	svc port.CartService
	st  *storage.Handle

	mu      sync.Mutex
	cart    domain.Cart
	loading bool
	errMsg  string
	seq     uint64 // last issued snapshot-replacing operation
}

func NewStore(svc port.CartService, st *storage.Handle) (*Store, error) {
	if svc == nil {
		return nil, fmt.Errorf("cart service is nil")
	}
	if st == nil {
		return nil, fmt.Errorf("storage handle is nil")
	}

	return &Store{svc: svc, st: st, cart: domain.EmptyCart()}, nil
}

// Cart returns a copy of the current snapshot.
func (s *Store) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart
	c.Products = make([]domain.CartProduct, len(s.cart.Products))
	copy(c.Products, s.cart.Products)
	return c
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the user-facing message of the last failed load, or "".
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalPrice()
}

func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

// Token reads the durable cart token; "" means no cart exists yet.
func (s *Store) Token() string {
	v, _ := s.st.Get(TokenKey)
	return v
}

// Refresh loads the cart from the service. With no stored token it resets to
// the empty cart without any network call: an absent cart is not an error.
// On failure the previous snapshot stays available and a fixed user-facing
// message is recorded; the underlying error is also returned.
func (s *Store) Refresh(ctx context.Context) error {
	token := s.Token()
	if token == "" {
		s.mu.Lock()
		s.cart = domain.EmptyCart()
		s.errMsg = ""
		s.loading = false
		s.mu.Unlock()
		return nil
	}

	seq := s.issue()
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	remote, err := s.svc.GetCart(ctx, token)

	s.mu.Lock()
	s.loading = false
	if seq != s.seq {
		s.mu.Unlock()
		return ErrSuperseded
	}
	if err != nil {
		s.errMsg = FetchFailedMessage
		s.mu.Unlock()
		return fmt.Errorf("svc.GetCart: %w", err)
	}
	s.cart = remote.Clean()
	s.errMsg = ""
	s.mu.Unlock()

	// the service may rotate the token; keep storage in step
	if err := s.persistToken(remote.Token); err != nil {
		return fmt.Errorf("persistToken: %w", err)
	}

	return nil
}

// Add puts quantity units of a product into the cart. An empty stored token
// is fine: the service allocates a cart and returns its token, which is then
// persisted. Failures are returned to the caller without internal recovery
// so the UI can decide about retrying.
func (s *Store) Add(ctx context.Context, productID string, quantity int) error {
	token := s.Token()

	seq := s.issue()
	remote, err := s.svc.AddProduct(ctx, token, productID, quantity)
	if err != nil {
		return fmt.Errorf("svc.AddProduct: %w", err)
	}

	if !s.apply(seq, remote) {
		return ErrSuperseded
	}

	if err := s.persistToken(remote.Token); err != nil {
		return fmt.Errorf("persistToken: %w", err)
	}

	return s.broadcast()
}

// UpdateQuantity sets a line item's quantity; 0 removes the line item. With
// no stored token there is nothing to update. A failed write is never
// retried: the store falls back to Refresh so the snapshot reconciles to
// server truth.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	token := s.Token()
	if token == "" {
		return nil
	}

	seq := s.issue()
	remote, err := s.svc.UpdateProduct(ctx, token, productID, quantity)
	if err != nil {
		if refreshErr := s.Refresh(ctx); refreshErr != nil && !errors.Is(refreshErr, ErrSuperseded) {
			return errors.Join(fmt.Errorf("svc.UpdateProduct: %w", err), refreshErr)
		}
		return fmt.Errorf("svc.UpdateProduct: %w", err)
	}

	if !s.apply(seq, remote) {
		return ErrSuperseded
	}

	if err := s.persistToken(remote.Token); err != nil {
		return fmt.Errorf("persistToken: %w", err)
	}

	return s.broadcast()
}

// Remove drops a product from the cart.
func (s *Store) Remove(ctx context.Context, productID string) error {
	return s.UpdateQuantity(ctx, productID, 0)
}

// Subscribe resynchronizes this store whenever another context broadcasts a
// cart change. The writer's own context is never notified. The returned
// cancel must be called on teardown to release the listener.
func (s *Store) Subscribe(ctx context.Context) func() {
	return s.st.Watch(RevisionKey, func(storage.Event) {
		_ = s.Refresh(ctx)
	})
}

// issue hands out the sequence number for one snapshot-replacing operation.
func (s *Store) issue() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// apply installs a server cart unless a newer operation has been issued
// since seq was taken; stale responses are discarded untouched.
func (s *Store) apply(seq uint64, remote domain.Cart) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}
	s.cart = remote.Clean()
	s.errMsg = ""
	return true
}

// persistToken stores a non-empty token. An empty token in a response must
// never overwrite a previously stored one.
func (s *Store) persistToken(token string) error {
	if token == "" {
		return nil
	}
	return s.st.Set(TokenKey, token)
}

func (s *Store) broadcast() error {
	return s.st.Set(RevisionKey, uuid.NewString())
}
