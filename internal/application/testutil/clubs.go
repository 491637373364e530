package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ridecrew/ridecrew/internal/domain/club"
)

// MockClubRepository is an in-memory club.Repository.
type MockClubRepository struct {
	mu     sync.RWMutex
	clubs  map[uint]*club.Club
	nextID uint

	CreateError error
}

func NewMockClubRepository() *MockClubRepository {
	return &MockClubRepository{clubs: make(map[uint]*club.Club)}
}

// Seed stores a club with default details in the given city.
func (m *MockClubRepository) Seed(name, city string) *club.Club {
	c, err := club.NewClub(club.Details{
		Name:             name,
		OrganizationType: club.OrganizationAssociation,
		Address:          club.Address{City: city, Department: "75"},
	})
	if err != nil {
		panic(err)
	}
	if err := m.Create(context.Background(), c); err != nil {
		panic(err)
	}
	return c
}

func (m *MockClubRepository) Create(ctx context.Context, c *club.Club) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateError != nil {
		return m.CreateError
	}
	m.nextID++
	if err := c.SetID(m.nextID); err != nil {
		return err
	}
	m.clubs[c.ID()] = c
	return nil
}

func (m *MockClubRepository) GetByID(ctx context.Context, id uint) (*club.Club, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.clubs[id]
	if !ok {
		return nil, club.ErrClubNotFound
	}
	return c, nil
}

func (m *MockClubRepository) Update(ctx context.Context, c *club.Club) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clubs[c.ID()]; !ok {
		return club.ErrClubNotFound
	}
	m.clubs[c.ID()] = c
	return nil
}

func (m *MockClubRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clubs[id]; !ok {
		return club.ErrClubNotFound
	}
	delete(m.clubs, id)
	return nil
}

func (m *MockClubRepository) List(ctx context.Context, filter club.ListFilter) ([]*club.Club, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []*club.Club
	for _, c := range m.clubs {
		if filter.Department != "" && c.Address().Department != filter.Department {
			continue
		}
		if filter.Search != "" {
			haystack := strings.ToLower(c.Name() + " " + c.Address().City)
			if !strings.Contains(haystack, strings.ToLower(filter.Search)) {
				continue
			}
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name() < matched[j].Name() })
	return paginate(matched, filter.Page, filter.PageSize), int64(len(matched)), nil
}

// MockJoinRequestRepository is an in-memory club.JoinRequestRepository.
type MockJoinRequestRepository struct {
	mu       sync.RWMutex
	requests []*club.JoinRequest

	DeleteError error
}

func NewMockJoinRequestRepository() *MockJoinRequestRepository {
	return &MockJoinRequestRepository{}
}

func (m *MockJoinRequestRepository) Exists(ctx context.Context, userID, clubID uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.indexOf(userID, clubID) >= 0, nil
}

func (m *MockJoinRequestRepository) Create(ctx context.Context, req *club.JoinRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.indexOf(req.UserID, req.ClubID) >= 0 {
		return club.ErrDuplicateJoinRequest
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}
	m.requests = append(m.requests, req)
	return nil
}

func (m *MockJoinRequestRepository) Delete(ctx context.Context, userID, clubID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteError != nil {
		return false, m.DeleteError
	}
	i := m.indexOf(userID, clubID)
	if i < 0 {
		return false, nil
	}
	m.requests = append(m.requests[:i], m.requests[i+1:]...)
	return true, nil
}

func (m *MockJoinRequestRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = filterRequests(m.requests, func(r *club.JoinRequest) bool { return r.UserID != userID })
	return nil
}

func (m *MockJoinRequestRepository) DeleteAllForClub(ctx context.Context, clubID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = filterRequests(m.requests, func(r *club.JoinRequest) bool { return r.ClubID != clubID })
	return nil
}

func (m *MockJoinRequestRepository) ListByClub(ctx context.Context, clubID uint) ([]*club.JoinRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return filterRequests(append([]*club.JoinRequest(nil), m.requests...), func(r *club.JoinRequest) bool {
		return r.ClubID == clubID
	}), nil
}

// All returns every pending request.
func (m *MockJoinRequestRepository) All() []*club.JoinRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*club.JoinRequest(nil), m.requests...)
}

func (m *MockJoinRequestRepository) indexOf(userID, clubID uint) int {
	for i, r := range m.requests {
		if r.UserID == userID && r.ClubID == clubID {
			return i
		}
	}
	return -1
}

func filterRequests(in []*club.JoinRequest, keep func(*club.JoinRequest) bool) []*club.JoinRequest {
	out := in[:0]
	for _, r := range in {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// MockClubFollowRepository is an in-memory club.FollowRepository.
type MockClubFollowRepository struct {
	mu      sync.RWMutex
	follows []club.Follow
}

func NewMockClubFollowRepository() *MockClubFollowRepository {
	return &MockClubFollowRepository{}
}

func (m *MockClubFollowRepository) Exists(ctx context.Context, userID, clubID uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.indexOf(userID, clubID) >= 0, nil
}

func (m *MockClubFollowRepository) Create(ctx context.Context, userID, clubID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.indexOf(userID, clubID) < 0 {
		m.follows = append(m.follows, club.Follow{UserID: userID, ClubID: clubID, CreatedAt: time.Now().UTC()})
	}
	return nil
}

func (m *MockClubFollowRepository) Delete(ctx context.Context, userID, clubID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(userID, clubID)
	if i < 0 {
		return false, nil
	}
	m.follows = append(m.follows[:i], m.follows[i+1:]...)
	return true, nil
}

func (m *MockClubFollowRepository) DeleteAllForClub(ctx context.Context, clubID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.follows[:0]
	for _, f := range m.follows {
		if f.ClubID != clubID {
			kept = append(kept, f)
		}
	}
	m.follows = kept
	return nil
}

func (m *MockClubFollowRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.follows[:0]
	for _, f := range m.follows {
		if f.UserID != userID {
			kept = append(kept, f)
		}
	}
	m.follows = kept
	return nil
}

func (m *MockClubFollowRepository) CountByClub(ctx context.Context, clubID uint) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, f := range m.follows {
		if f.ClubID == clubID {
			n++
		}
	}
	return n, nil
}

func (m *MockClubFollowRepository) ListClubIDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []uint
	for _, f := range m.follows {
		if f.UserID == userID {
			ids = append(ids, f.ClubID)
		}
	}
	return ids, nil
}

func (m *MockClubFollowRepository) indexOf(userID, clubID uint) int {
	for i, f := range m.follows {
		if f.UserID == userID && f.ClubID == clubID {
			return i
		}
	}
	return -1
}
