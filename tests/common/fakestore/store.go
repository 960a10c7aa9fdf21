//go:build unit || e2e

// Package fakestore is an in-memory shared.UnitOfWork for use case tests.
// Writes made inside a failed Within are rolled back.
package fakestore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/itemrequest"
	"shareit/internal/domain/user"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/readmodel"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	errNotFound  = errs.NewKind(errs.ErrNotFound, "not found")
	errDuplicate = errs.NewKind(errs.ErrConflict, "duplicate key")
)

type state struct {
	users     map[uuid.UUID]*user.User
	items     map[uuid.UUID]*item.Item
	requests  map[uuid.UUID]*itemrequest.ItemRequest
	bookings  map[uuid.UUID]*booking.Booking
	versions  map[uuid.UUID]int32
	comments  map[uuid.UUID]*comment.Comment
	createSeq map[uuid.UUID]int
	seq       int
}

func newState() *state {
	return &state{
		users:     map[uuid.UUID]*user.User{},
		items:     map[uuid.UUID]*item.Item{},
		requests:  map[uuid.UUID]*itemrequest.ItemRequest{},
		bookings:  map[uuid.UUID]*booking.Booking{},
		versions:  map[uuid.UUID]int32{},
		comments:  map[uuid.UUID]*comment.Comment{},
		createSeq: map[uuid.UUID]int{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.users {
		cp := *v
		c.users[k] = &cp
	}
	for k, v := range s.items {
		cp := *v
		c.items[k] = &cp
	}
	for k, v := range s.requests {
		c.requests[k] = v
	}
	for k, v := range s.bookings {
		cp := *v
		c.bookings[k] = &cp
	}
	for k, v := range s.versions {
		c.versions[k] = v
	}
	for k, v := range s.comments {
		c.comments[k] = v
	}
	for k, v := range s.createSeq {
		c.createSeq[k] = v
	}
	c.seq = s.seq
	return c
}

func (s *state) track(id uuid.UUID) {
	s.seq++
	s.createSeq[id] = s.seq
}

type Store struct {
	mu sync.Mutex
	st *state

	// FailNext, when set, is returned by the next Within or WithinReadOnly.
	FailNext error
}

func New() *Store {
	return &Store{st: newState()}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}

	snapshot := s.st.clone()
	if err := fn(ctx, &writeTx{st: s.st}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.ReadTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	return fn(ctx, &readTx{st: s.st})
}

func (s *Store) takeFailure() error {
	err := s.FailNext
	s.FailNext = nil
	return err
}

// Seed helpers bypass the use cases so tests can arrange any state.

func (s *Store) SeedUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.users[u.ID()] = u
	s.st.track(u.ID())
}

func (s *Store) SeedItem(it *item.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.items[it.ID()] = it
	s.st.track(it.ID())
}

func (s *Store) SeedItemRequest(r *itemrequest.ItemRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.requests[r.ID()] = r
	s.st.track(r.ID())
}

func (s *Store) SeedBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.bookings[b.ID()] = b
	s.st.versions[b.ID()] = b.Version()
	s.st.track(b.ID())
}

func (s *Store) SeedComment(c *comment.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.comments[c.ID()] = c
	s.st.track(c.ID())
}

// BumpBookingVersion simulates a concurrent writer.
func (s *Store) BumpBookingVersion(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.versions[id]++
}

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.st.bookings[id]
	return b, ok
}

func (s *Store) Item(id uuid.UUID) (*item.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.st.items[id]
	return it, ok
}

func (s *Store) User(id uuid.UUID) (*user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.st.users[id]
	return u, ok
}

func (s *Store) CommentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.comments)
}

type writeTx struct{ st *state }

func (t *writeTx) Users() shared.UserRepository               { return userRepo{t.st} }
func (t *writeTx) Items() shared.ItemRepository               { return itemRepo{t.st} }
func (t *writeTx) ItemRequests() shared.ItemRequestRepository { return requestRepo{t.st} }
func (t *writeTx) Bookings() shared.BookingRepository         { return bookingRepo{t.st} }
func (t *writeTx) Comments() shared.CommentRepository         { return commentRepo{t.st} }

type userRepo struct{ st *state }

func (r userRepo) Create(_ context.Context, u *user.User) error {
	if r.emailTaken(u.Email().Value(), u.ID()) {
		return errDuplicate
	}
	r.st.users[u.ID()] = u
	r.st.track(u.ID())
	return nil
}

func (r userRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := r.st.users[u.ID()]; !ok {
		return errNotFound
	}
	if r.emailTaken(u.Email().Value(), u.ID()) {
		return errDuplicate
	}
	r.st.users[u.ID()] = u
	return nil
}

func (r userRepo) emailTaken(email string, self uuid.UUID) bool {
	for id, other := range r.st.users {
		if id != self && other.Email().Value() == email {
			return true
		}
	}
	return false
}

// Delete cascades the way the schema does.
func (r userRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.st.users, id)
	for itemID, it := range r.st.items {
		if it.OwnerID() == id {
			delete(r.st.items, itemID)
		}
	}
	for bID, b := range r.st.bookings {
		if _, ok := r.st.items[b.ItemID()]; !ok || b.BookerID() == id {
			delete(r.st.bookings, bID)
		}
	}
	for cID, c := range r.st.comments {
		if _, ok := r.st.items[c.ItemID()]; !ok || c.AuthorID() == id {
			delete(r.st.comments, cID)
		}
	}
	for rID, req := range r.st.requests {
		if req.RequesterID() == id {
			delete(r.st.requests, rID)
		}
	}
	return nil
}

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.st.users[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *u
	return &cp, nil
}

type itemRepo struct{ st *state }

func (r itemRepo) Create(_ context.Context, it *item.Item) error {
	r.st.items[it.ID()] = it
	r.st.track(it.ID())
	return nil
}

func (r itemRepo) Update(_ context.Context, it *item.Item) error {
	if _, ok := r.st.items[it.ID()]; !ok {
		return errNotFound
	}
	r.st.items[it.ID()] = it
	return nil
}

func (r itemRepo) FindByID(_ context.Context, id uuid.UUID) (*item.Item, error) {
	it, ok := r.st.items[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *it
	return &cp, nil
}

type requestRepo struct{ st *state }

func (r requestRepo) Create(_ context.Context, req *itemrequest.ItemRequest) error {
	r.st.requests[req.ID()] = req
	r.st.track(req.ID())
	return nil
}

func (r requestRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.st.requests[id]
	return ok, nil
}

type bookingRepo struct{ st *state }

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	r.st.bookings[b.ID()] = b
	r.st.versions[b.ID()] = b.Version()
	r.st.track(b.ID())
	return nil
}

func (r bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, errNotFound
	}
	return booking.ReconstructBooking(b.ID(), b.ItemID(), b.BookerID(), b.Start(), b.End(), b.Status(), r.st.versions[id], b.CreatedAt()), nil
}

func (r bookingRepo) UpdateStatus(_ context.Context, b *booking.Booking) error {
	if r.st.versions[b.ID()] != b.Version() {
		return booking.ErrConcurrentDecision
	}
	r.st.versions[b.ID()]++
	r.st.bookings[b.ID()] = booking.ReconstructBooking(b.ID(), b.ItemID(), b.BookerID(), b.Start(), b.End(), b.Status(), r.st.versions[b.ID()], b.CreatedAt())
	return nil
}

func (r bookingRepo) HasCompletedBooking(_ context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error) {
	for _, b := range r.st.bookings {
		if b.ItemID() == itemID && b.IsCompletedBy(bookerID, now) {
			return true, nil
		}
	}
	return false, nil
}

type commentRepo struct{ st *state }

func (r commentRepo) Create(_ context.Context, c *comment.Comment) error {
	r.st.comments[c.ID()] = c
	r.st.track(c.ID())
	return nil
}

type readTx struct{ st *state }

func (t *readTx) Users() shared.UserReadStore               { return userStore{t.st} }
func (t *readTx) Items() shared.ItemReadStore               { return itemStore{t.st} }
func (t *readTx) ItemRequests() shared.ItemRequestReadStore { return requestStore{t.st} }
func (t *readTx) Bookings() shared.BookingReadStore         { return bookingStore{t.st} }
func (t *readTx) Comments() shared.CommentReadStore         { return commentStore{t.st} }

func userView(u *user.User) *readmodel.UserView {
	return &readmodel.UserView{ID: u.ID(), Name: u.Name().Value(), Email: u.Email().Value()}
}

func itemView(it *item.Item) *readmodel.ItemView {
	return &readmodel.ItemView{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		RequestID:   it.RequestID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		CreatedAt:   it.CreatedAt(),
	}
}

type userStore struct{ st *state }

func (s userStore) FindByID(_ context.Context, id uuid.UUID) (*readmodel.UserView, error) {
	u, ok := s.st.users[id]
	if !ok {
		return nil, errNotFound
	}
	return userView(u), nil
}

func (s userStore) List(_ context.Context) ([]*readmodel.UserView, error) {
	out := []*readmodel.UserView{}
	for _, u := range s.st.users {
		out = append(out, userView(u))
	}
	sort.Slice(out, func(i, j int) bool { return s.st.createSeq[out[i].ID] < s.st.createSeq[out[j].ID] })
	return out, nil
}

type itemStore struct{ st *state }

func (s itemStore) FindByID(_ context.Context, id uuid.UUID) (*readmodel.ItemView, error) {
	it, ok := s.st.items[id]
	if !ok {
		return nil, errNotFound
	}
	return itemView(it), nil
}

func (s itemStore) collect(keep func(*item.Item) bool) []*readmodel.ItemView {
	out := []*readmodel.ItemView{}
	for _, it := range s.st.items {
		if keep(it) {
			out = append(out, itemView(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return s.st.createSeq[out[i].ID] < s.st.createSeq[out[j].ID] })
	return out
}

func (s itemStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*readmodel.ItemView, error) {
	return s.collect(func(it *item.Item) bool { return it.OwnerID() == ownerID }), nil
}

func (s itemStore) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	items, _ := s.ListByOwner(ctx, ownerID)
	return int64(len(items)), nil
}

func (s itemStore) Search(_ context.Context, text string) ([]*readmodel.ItemView, error) {
	needle := strings.ToLower(text)
	return s.collect(func(it *item.Item) bool {
		return it.Available() &&
			(strings.Contains(strings.ToLower(it.Name()), needle) ||
				strings.Contains(strings.ToLower(it.Description()), needle))
	}), nil
}

func (s itemStore) ListByRequestIDs(_ context.Context, requestIDs []uuid.UUID) ([]*readmodel.ItemView, error) {
	want := make(map[uuid.UUID]bool, len(requestIDs))
	for _, id := range requestIDs {
		want[id] = true
	}
	return s.collect(func(it *item.Item) bool { return it.RequestID() != nil && want[*it.RequestID()] }), nil
}

type bookingStore struct{ st *state }

func (s bookingStore) view(b *booking.Booking) *readmodel.BookingView {
	v := &readmodel.BookingView{
		ID:      b.ID(),
		Start:   b.Start(),
		End:     b.End(),
		Status:  b.Status().String(),
		Version: s.st.versions[b.ID()],
	}
	if it, ok := s.st.items[b.ItemID()]; ok {
		v.Item = *itemView(it)
	}
	if u, ok := s.st.users[b.BookerID()]; ok {
		v.Booker = *userView(u)
	}
	return v
}

func (s bookingStore) collect(keep func(*booking.Booking) bool) []*readmodel.BookingView {
	out := []*readmodel.BookingView{}
	for _, b := range s.st.bookings {
		if keep(b) {
			out = append(out, s.view(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.After(out[j].Start) })
	return out
}

func (s bookingStore) FindByID(_ context.Context, id uuid.UUID) (*readmodel.BookingView, error) {
	b, ok := s.st.bookings[id]
	if !ok {
		return nil, errNotFound
	}
	return s.view(b), nil
}

func (s bookingStore) ListByBooker(_ context.Context, bookerID uuid.UUID, f booking.Filter) ([]*readmodel.BookingView, error) {
	return s.collect(func(b *booking.Booking) bool {
		return b.BookerID() == bookerID && f.Matches(b.Start(), b.End(), b.Status())
	}), nil
}

func (s bookingStore) ListByOwner(_ context.Context, ownerID uuid.UUID, f booking.Filter) ([]*readmodel.BookingView, error) {
	return s.collect(func(b *booking.Booking) bool {
		it, ok := s.st.items[b.ItemID()]
		return ok && it.OwnerID() == ownerID && f.Matches(b.Start(), b.End(), b.Status())
	}), nil
}

func (s bookingStore) ListByItemIDs(_ context.Context, itemIDs []uuid.UUID) ([]*readmodel.BookingView, error) {
	want := make(map[uuid.UUID]bool, len(itemIDs))
	for _, id := range itemIDs {
		want[id] = true
	}
	return s.collect(func(b *booking.Booking) bool { return want[b.ItemID()] }), nil
}

type commentStore struct{ st *state }

func (s commentStore) ListByItemIDs(_ context.Context, itemIDs []uuid.UUID) ([]*readmodel.CommentView, error) {
	want := make(map[uuid.UUID]bool, len(itemIDs))
	for _, id := range itemIDs {
		want[id] = true
	}
	out := []*readmodel.CommentView{}
	for _, c := range s.st.comments {
		if !want[c.ItemID()] {
			continue
		}
		v := &readmodel.CommentView{
			ID:        c.ID(),
			ItemID:    c.ItemID(),
			AuthorID:  c.AuthorID(),
			Text:      c.Text().String(),
			CreatedAt: c.CreatedAt(),
		}
		if u, ok := s.st.users[c.AuthorID()]; ok {
			v.AuthorName = u.Name().Value()
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return s.st.createSeq[out[i].ID] < s.st.createSeq[out[j].ID] })
	return out, nil
}

type requestStore struct{ st *state }

func (s requestStore) view(r *itemrequest.ItemRequest) *readmodel.ItemRequestView {
	return &readmodel.ItemRequestView{
		ID:          r.ID(),
		RequesterID: r.RequesterID(),
		Description: r.Description(),
		CreatedAt:   r.CreatedAt(),
		Items:       []*readmodel.ItemView{},
	}
}

func (s requestStore) newestFirst(keep func(*itemrequest.ItemRequest) bool) []*readmodel.ItemRequestView {
	out := []*readmodel.ItemRequestView{}
	for _, r := range s.st.requests {
		if keep(r) {
			out = append(out, s.view(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return s.st.createSeq[out[i].ID] > s.st.createSeq[out[j].ID] })
	return out
}

func (s requestStore) FindByID(_ context.Context, id uuid.UUID) (*readmodel.ItemRequestView, error) {
	r, ok := s.st.requests[id]
	if !ok {
		return nil, errNotFound
	}
	return s.view(r), nil
}

func (s requestStore) ListByRequester(_ context.Context, requesterID uuid.UUID) ([]*readmodel.ItemRequestView, error) {
	return s.newestFirst(func(r *itemrequest.ItemRequest) bool { return r.RequesterID() == requesterID }), nil
}

func (s requestStore) ListOthers(_ context.Context, requesterID uuid.UUID, page shared.Page) ([]*readmodel.ItemRequestView, error) {
	all := s.newestFirst(func(r *itemrequest.ItemRequest) bool { return r.RequesterID() != requesterID })
	lo := int(page.Offset)
	if lo > len(all) {
		lo = len(all)
	}
	hi := lo + int(page.Limit)
	if hi > len(all) {
		hi = len(all)
	}
	return all[lo:hi], nil
}
