package usecase

import (
	"context"
	"fmt"
	"iter"
	"sort"
	"sync"
	"time"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
	"github.com/Kipkoech854/Real-estate-management/pkg/errors"
)

// memoryStore backs every repository port in these tests. Uniqueness
// constraints mirror the schema.
type memoryStore struct {
	mu sync.Mutex

	users         map[string]*entity.User
	agencies      map[string]*entity.Agency
	listings      map[string]*entity.Listing
	media         map[string][]*entity.Media
	saved         map[string]*entity.SavedListing
	reviews       []*entity.Review
	conversations []*entity.Conversation
	messages      []*entity.Message

	seq   int
	clock time.Time

	// beforeInsertConversation runs with the lock released, just before
	// the insert, so tests can interleave a competing writer.
	beforeInsertConversation func()
	// unavailable makes every call fail as if the database were down.
	unavailable bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    map[string]*entity.User{},
		agencies: map[string]*entity.Agency{},
		listings: map[string]*entity.Listing{},
		media:    map[string][]*entity.Media{},
		saved:    map[string]*entity.SavedListing{},
		clock:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *memoryStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%04d", prefix, s.seq)
}

func (s *memoryStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memoryStore) down() error {
	if s.unavailable {
		return errors.StorageUnavailable("Database unavailable", fmt.Errorf("dial tcp: connection refused"))
	}
	return nil
}

func (s *memoryStore) addUser(id, username string) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &entity.User{ID: id, Username: username, CreatedAt: s.tick()}
	s.users[id] = u
	return u
}

// users

type memoryUserRepo struct{ s *memoryStore }

func (r memoryUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.down(); err != nil {
		return err
	}
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return errors.Conflict("User already exists", nil)
		}
	}
	if user.ID == "" {
		user.ID = r.s.nextID("user")
	}
	user.CreatedAt = r.s.tick()
	copied := *user
	r.s.users[user.ID] = &copied
	return nil
}

func (r memoryUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.down(); err != nil {
		return nil, err
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *u
	return &copied, nil
}

func (r memoryUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.down(); err != nil {
		return nil, err
	}
	for _, u := range r.s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r memoryUserRepo) TouchLastActive(ctx context.Context, id string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	u.LastActive = &at
	return nil
}

// conversations

type memoryChatRepo struct{ s *memoryStore }

func (r memoryChatRepo) CreateConversation(ctx context.Context, c *entity.Conversation) error {
	if hook := r.s.beforeInsertConversation; hook != nil {
		hook()
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.down(); err != nil {
		return err
	}
	p1, p2 := entity.CanonicalPair(c.Participant1, c.Participant2)
	for _, existing := range r.s.conversations {
		if existing.Participant1 == p1 && existing.Participant2 == p2 {
			return errors.Conflict("Conversation already exists", nil)
		}
	}
	c.ID = r.s.nextID("conv")
	c.Participant1, c.Participant2 = p1, p2
	c.CreatedAt = r.s.tick()
	copied := *c
	r.s.conversations = append(r.s.conversations, &copied)
	return nil
}

func (r memoryChatRepo) GetConversationByID(ctx context.Context, id string) (*entity.Conversation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.down(); err != nil {
		return nil, err
	}
	for _, c := range r.s.conversations {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (r memoryChatRepo) FindConversationByPair(ctx context.Context, a, b string) (*entity.Conversation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.down(); err != nil {
		return nil, err
	}
	p1, p2 := entity.CanonicalPair(a, b)
	for _, c := range r.s.conversations {
		if c.Participant1 == p1 && c.Participant2 == p2 {
			copied := *c
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (r memoryChatRepo) ListConversationsByUser(ctx context.Context, userID string) ([]entity.ConversationSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.down(); err != nil {
		return nil, err
	}
	out := []entity.ConversationSummary{}
	for _, c := range r.s.conversations {
		var other string
		switch userID {
		case c.Participant1:
			other = c.Participant2
		case c.Participant2:
			other = c.Participant1
		default:
			continue
		}
		out = append(out, entity.ConversationSummary{ID: c.ID, CounterpartID: other, Counterpart: r.s.users[other].Username})
	}
	return out, nil
}

func (r memoryChatRepo) CreateMessage(ctx context.Context, m *entity.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.down(); err != nil {
		return err
	}
	m.ID = r.s.nextID("msg")
	m.CreatedAt = r.s.tick()
	copied := *m
	r.s.messages = append(r.s.messages, &copied)
	return nil
}

func (r memoryChatRepo) StreamMessages(ctx context.Context, conversationID string) iter.Seq2[entity.ChatLine, error] {
	return func(yield func(entity.ChatLine, error) bool) {
		r.s.mu.Lock()
		if err := r.s.down(); err != nil {
			r.s.mu.Unlock()
			yield(entity.ChatLine{}, err)
			return
		}
		var lines []entity.ChatLine
		for _, m := range r.s.messages {
			if m.ConversationID == conversationID {
				lines = append(lines, entity.ChatLine{
					Sender:      r.s.users[m.SenderID].Username,
					Text:        m.Text,
					Attachments: m.Attachments,
					CreatedAt:   m.CreatedAt,
				})
			}
		}
		r.s.mu.Unlock()

		sort.SliceStable(lines, func(i, j int) bool { return lines[i].CreatedAt.Before(lines[j].CreatedAt) })
		for _, l := range lines {
			if !yield(l, nil) {
				return
			}
		}
	}
}

// agencies

type memoryAgencyRepo struct{ s *memoryStore }

func (r memoryAgencyRepo) Create(ctx context.Context, a *entity.Agency) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.agencies {
		if existing.Name == a.Name || existing.UserID == a.UserID {
			return errors.Conflict("Agency already exists", nil)
		}
	}
	a.ID = r.s.nextID("agency")
	a.CreatedAt = r.s.tick()
	copied := *a
	r.s.agencies[a.UserID] = &copied
	return nil
}

func (r memoryAgencyRepo) GetByUserID(ctx context.Context, userID string) (*entity.Agency, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.agencies[userID]
	if !ok {
		return nil, errors.NotFound("Agency", nil)
	}
	copied := *a
	return &copied, nil
}

func (r memoryAgencyRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.down(); err != nil {
		return false, err
	}
	_, ok := r.s.agencies[userID]
	return ok, nil
}

// listings and media

type memoryListingRepo struct{ s *memoryStore }

func (r memoryListingRepo) Create(ctx context.Context, l *entity.Listing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.down(); err != nil {
		return err
	}
	l.ID = r.s.nextID("listing")
	l.CreatedAt = r.s.tick()
	l.UpdatedAt = l.CreatedAt
	copied := *l
	r.s.listings[l.ID] = &copied
	return nil
}

func (r memoryListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	copied := *l
	return &copied, nil
}

func (r memoryListingRepo) GetByTitle(ctx context.Context, title string) (*entity.Listing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.listings {
		if l.Title == title {
			copied := *l
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Listing", nil)
}

func (r memoryListingRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Listing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Listing{}
	for _, l := range r.s.listings {
		if l.UserID == userID {
			copied := *l
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memoryListingRepo) Search(ctx context.Context, status string, f entity.ListingFilter, limit, offset int) ([]*entity.Listing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Listing{}
	for _, l := range r.s.listings {
		if status != "" && l.Status != status {
			continue
		}
		if f.PriceMin != nil && (l.Price == nil || *l.Price < *f.PriceMin) {
			continue
		}
		if f.PriceMax != nil && (l.Price == nil || *l.Price > *f.PriceMax) {
			continue
		}
		if f.PropertyType != "" && l.PropertyType != f.PropertyType {
			continue
		}
		if f.MinBedrooms != nil && (l.Bedrooms == nil || *l.Bedrooms < *f.MinBedrooms) {
			continue
		}
		if f.MinBathrooms != nil && (l.Bathrooms == nil || *l.Bathrooms < *f.MinBathrooms) {
			continue
		}
		copied := *l
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return []*entity.Listing{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r memoryListingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.listings[id]
	if !ok {
		return errors.NotFound("Listing", nil)
	}
	l.Status = status
	return nil
}

type memoryMediaRepo struct{ s *memoryStore }

func (r memoryMediaRepo) Create(ctx context.Context, m *entity.Media) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m.ID = r.s.nextID("media")
	if m.MediaType == "" {
		m.MediaType = entity.MediaImage
	}
	m.DisplayOrder = len(r.s.media[m.ListingID]) + 1
	copied := *m
	r.s.media[m.ListingID] = append(r.s.media[m.ListingID], &copied)
	return nil
}

func (r memoryMediaRepo) ListByListing(ctx context.Context, listingID string) ([]*entity.Media, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Media{}
	out = append(out, r.s.media[listingID]...)
	return out, nil
}

// saved listings

type memorySavedRepo struct{ s *memoryStore }

func (r memorySavedRepo) Upsert(ctx context.Context, saved *entity.SavedListing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := saved.UserID + "_" + saved.ListingID
	now := r.s.tick()
	if existing, ok := r.s.saved[key]; ok {
		existing.Notes = saved.Notes
		existing.UpdatedAt = now
		*saved = *existing
		return nil
	}
	saved.ID = r.s.nextID("saved")
	saved.CreatedAt = now
	saved.UpdatedAt = now
	copied := *saved
	r.s.saved[key] = &copied
	return nil
}

func (r memorySavedRepo) IsSaved(ctx context.Context, userID, listingID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.saved[userID+"_"+listingID]
	return ok, nil
}

func (r memorySavedRepo) ListByUser(ctx context.Context, userID string) ([]entity.SavedListingWithListing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entity.SavedListingWithListing{}
	for _, s := range r.s.saved {
		if s.UserID != userID {
			continue
		}
		l := r.s.listings[s.ListingID]
		out = append(out, entity.SavedListingWithListing{SavedListing: *s, Title: l.Title, Price: l.Price, PropertyType: l.PropertyType})
	}
	return out, nil
}

// reviews

type memoryReviewRepo struct{ s *memoryStore }

func (r memoryReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.reviews {
		if existing.UserID == review.UserID && existing.ListingID == review.ListingID {
			return errors.Conflict("Review already exists", nil)
		}
	}
	review.ID = r.s.nextID("review")
	review.CreatedAt = r.s.tick()
	copied := *review
	r.s.reviews = append(r.s.reviews, &copied)
	return nil
}

func (r memoryReviewRepo) Exists(ctx context.Context, userID, listingID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.reviews {
		if existing.UserID == userID && existing.ListingID == listingID {
			return true, nil
		}
	}
	return false, nil
}

func (r memoryReviewRepo) list(match func(*entity.Review) bool) []entity.ReviewWithNames {
	out := []entity.ReviewWithNames{}
	for _, rev := range r.s.reviews {
		if match(rev) {
			out = append(out, entity.ReviewWithNames{
				Review:       *rev,
				ListingTitle: r.s.listings[rev.ListingID].Title,
				Username:     r.s.users[rev.UserID].Username,
			})
		}
	}
	return out
}

func (r memoryReviewRepo) ListByUser(ctx context.Context, userID string) ([]entity.ReviewWithNames, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.list(func(rev *entity.Review) bool { return rev.UserID == userID }), nil
}

func (r memoryReviewRepo) ListByListing(ctx context.Context, listingID string) ([]entity.ReviewWithNames, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.list(func(rev *entity.Review) bool { return rev.ListingID == listingID }), nil
}

func (r memoryReviewRepo) RatingSummary(ctx context.Context, listingID string) (entity.RatingSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var sum, n int
	for _, rev := range r.s.reviews {
		if rev.ListingID == listingID {
			sum += rev.Rating
			n++
		}
	}
	if n == 0 {
		return entity.RatingSummary{}, nil
	}
	return entity.RatingSummary{Average: float64(sum) / float64(n), Count: n}, nil
}

// plainHasher keeps tests fast; bcrypt has its own tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}
