package test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/storeratings/internal/domain/errors"
	"github.com/polkiloo/storeratings/internal/domain/model"
	"github.com/polkiloo/storeratings/internal/domain/repository"
)

// MemoryStore is an in-memory relational fake shared by all repository stubs.
// It enforces the same uniqueness rules as the database schema under a single mutex.
type MemoryStore struct {
	mu sync.Mutex

	users   map[int64]*model.User
	stores  map[int64]*model.Store
	ratings map[int64]*model.Rating

	nextUser   int64
	nextStore  int64
	nextRating int64

	// Err, when set, is returned from every repository call.
	Err error
	// Now supplies timestamps; defaults to time.Now.
	Now func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[int64]*model.User),
		stores:  make(map[int64]*model.Store),
		ratings: make(map[int64]*model.Rating),
	}
}

func (m *MemoryStore) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// Users returns the user repository view.
func (m *MemoryStore) Users() repository.UserRepository { return &UserRepositoryStub{m: m} }

// Stores returns the store repository view.
func (m *MemoryStore) Stores() repository.StoreRepository { return &StoreRepositoryStub{m: m} }

// Ratings returns the rating repository view.
func (m *MemoryStore) Ratings() repository.RatingRepository { return &RatingRepositoryStub{m: m} }

// Stats returns the platform counters view.
func (m *MemoryStore) Stats() repository.StatsRepository { return &StatsRepositoryStub{m: m} }

// SeedUser inserts a user bypassing validation and returns it.
func (m *MemoryStore) SeedUser(name, email string, role model.Role) *model.User {
	u := &model.User{Name: name, Email: email, PasswordHash: "hash:Secret#1", Role: role}
	if err := m.Users().Create(context.Background(), u); err != nil {
		panic(err)
	}
	return u
}

// SeedStore inserts a store for owner and returns it.
func (m *MemoryStore) SeedStore(name string, ownerID int64) *model.Store {
	s := &model.Store{Name: name, Email: strings.ToLower(name) + "@shop.test", OwnerID: ownerID}
	if err := m.Stores().Create(context.Background(), s); err != nil {
		panic(err)
	}
	return s
}

// RatingCount returns the number of stored ratings.
func (m *MemoryStore) RatingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ratings)
}

// StoreCount returns the number of stored stores.
func (m *MemoryStore) StoreCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stores)
}

var _ repository.Factory = (*MemoryStore)(nil)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	m *MemoryStore
}

// Create registers user unless the e-mail is taken.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Err != nil {
		return s.m.Err
	}
	for _, u := range s.m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domainErrors.ErrDuplicateUser
		}
	}
	s.m.nextUser++
	user.ID = s.m.nextUser
	user.CreatedAt = s.m.now()
	cp := *user
	s.m.users[cp.ID] = &cp
	return nil
}

// GetByEmail fetches user by e-mail.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Err != nil {
		return nil, s.m.Err
	}
	for _, u := range s.m.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domainErrors.ErrUserNotFound
}

// GetByID fetches user by identifier.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Err != nil {
		return nil, s.m.Err
	}
	if u, ok := s.m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domainErrors.ErrUserNotFound
}

// List filters by search term and role, ordered by id unless SortBy is "name" or "email".
func (s *UserRepositoryStub) List(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Err != nil {
		return nil, s.m.Err
	}
	term := strings.ToLower(filter.Search)
	out := make([]model.User, 0, len(s.m.users))
	for _, u := range s.m.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(u.Name+" "+u.Email+" "+u.Address), term) {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if filter.Desc {
			i, j = j, i
		}
		switch filter.SortBy {
		case "name":
			return out[i].Name < out[j].Name
		case "email":
			return out[i].Email < out[j].Email
		default:
			return out[i].ID < out[j].ID
		}
	})
	return out, nil
}

// UpdatePassword replaces the stored hash.
func (s *UserRepositoryStub) UpdatePassword(ctx context.Context, id int64, hash string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Err != nil {
		return s.m.Err
	}
	u, ok := s.m.users[id]
	if !ok {
		return domainErrors.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

// StoreRepositoryStub keeps stores with a unique owner index.
type StoreRepositoryStub struct {
	m *MemoryStore
}

// Create inserts store; a second store for the same owner fails.
func (s *StoreRepositoryStub) Create(ctx context.Context, store *model.Store) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Err != nil {
		return s.m.Err
	}
	if _, ok := s.m.users[store.OwnerID]; !ok {
		return domainErrors.ErrUserNotFound
	}
	for _, st := range s.m.stores {
		if st.OwnerID == store.OwnerID {
			return domainErrors.ErrDuplicateStore
		}
	}
	s.m.nextStore++
	store.ID = s.m.nextStore
	store.CreatedAt = s.m.now()
	cp := *store
	s.m.stores[cp.ID] = &cp
	return nil
}

// GetByID fetches store by identifier.
func (s *StoreRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Err != nil {
		return nil, s.m.Err
	}
	if st, ok := s.m.stores[id]; ok {
		cp := *st
		return &cp, nil
	}
	return nil, domainErrors.ErrStoreNotFound
}

// GetByOwner fetches the owner's store.
func (s *StoreRepositoryStub) GetByOwner(ctx context.Context, ownerID int64) (*model.Store, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Err != nil {
		return nil, s.m.Err
	}
	for _, st := range s.m.stores {
		if st.OwnerID == ownerID {
			cp := *st
			return &cp, nil
		}
	}
	return nil, domainErrors.ErrStoreNotFound
}

// List filters stores by search term.
func (s *StoreRepositoryStub) List(ctx context.Context, filter model.StoreFilter) ([]model.Store, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Err != nil {
		return nil, s.m.Err
	}
	term := strings.ToLower(filter.Search)
	out := make([]model.Store, 0, len(s.m.stores))
	for _, st := range s.m.stores {
		if term != "" && !strings.Contains(strings.ToLower(st.Name+" "+st.Email+" "+st.Address), term) {
			continue
		}
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if filter.Desc {
			i, j = j, i
		}
		if filter.SortBy == "name" {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// RatingRepositoryStub keeps ratings keyed by (user, store).
type RatingRepositoryStub struct {
	m *MemoryStore
}

// Upsert inserts or overwrites the user's rating for a store atomically.
func (s *RatingRepositoryStub) Upsert(ctx context.Context, userID, storeID int64, score int) (*model.Rating, bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Err != nil {
		return nil, false, s.m.Err
	}
	if _, ok := s.m.stores[storeID]; !ok {
		return nil, false, domainErrors.ErrStoreNotFound
	}
	now := s.m.now()
	for _, r := range s.m.ratings {
		if r.UserID == userID && r.StoreID == storeID {
			r.Score = score
			r.UpdatedAt = now
			cp := *r
			return &cp, false, nil
		}
	}
	s.m.nextRating++
	r := &model.Rating{ID: s.m.nextRating, UserID: userID, StoreID: storeID, Score: score, CreatedAt: now, UpdatedAt: now}
	s.m.ratings[r.ID] = r
	cp := *r
	return &cp, true, nil
}

// GetByUserAndStore returns the user's rating or ErrNotFound.
func (s *RatingRepositoryStub) GetByUserAndStore(ctx context.Context, userID, storeID int64) (*model.Rating, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Err != nil {
		return nil, s.m.Err
	}
	for _, r := range s.m.ratings {
		if r.UserID == userID && r.StoreID == storeID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListReviews returns store ratings joined with reviewer names, newest first.
func (s *RatingRepositoryStub) ListReviews(ctx context.Context, storeID int64) ([]model.Review, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Err != nil {
		return nil, s.m.Err
	}
	out := make([]model.Review, 0)
	for _, r := range s.m.ratings {
		if r.StoreID != storeID {
			continue
		}
		var name string
		if u, ok := s.m.users[r.UserID]; ok {
			name = u.Name
		}
		out = append(out, model.Review{
			RatingID:     r.ID,
			UserID:       r.UserID,
			ReviewerName: name,
			Score:        r.Score,
			CreatedAt:    r.CreatedAt,
			UpdatedAt:    r.UpdatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].RatingID > out[j].RatingID
	})
	return out, nil
}

// TallyByStore groups ratings by store and score.
func (s *RatingRepositoryStub) TallyByStore(ctx context.Context) ([]model.ScoreTally, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Err != nil {
		return nil, s.m.Err
	}
	type key struct {
		store int64
		score int
	}
	counts := make(map[key]int)
	for _, r := range s.m.ratings {
		counts[key{r.StoreID, r.Score}]++
	}
	out := make([]model.ScoreTally, 0, len(counts))
	for k, n := range counts {
		out = append(out, model.ScoreTally{StoreID: k.store, Score: k.score, Count: n})
	}
	return out, nil
}

// StatsRepositoryStub counts platform entities under the store mutex.
type StatsRepositoryStub struct {
	m *MemoryStore
}

// PlatformCounts returns a consistent snapshot of platform totals.
func (s *StatsRepositoryStub) PlatformCounts(ctx context.Context) (*model.PlatformStats, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.Err != nil {
		return nil, s.m.Err
	}
	active := make(map[int64]struct{})
	for _, r := range s.m.ratings {
		active[r.UserID] = struct{}{}
	}
	return &model.PlatformStats{
		TotalUsers:   int64(len(s.m.users)),
		TotalStores:  int64(len(s.m.stores)),
		TotalRatings: int64(len(s.m.ratings)),
		ActiveUsers:  int64(len(active)),
	}, nil
}
