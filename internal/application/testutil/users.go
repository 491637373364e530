// Package testutil provides in-memory implementations of the domain
// repositories and service ports for testing the application layer.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/authorization"
)

// MockUserRepository is an in-memory user.Repository. Stored users are shared
// pointers, so conditional membership updates are visible to callers.
type MockUserRepository struct {
	mu     sync.RWMutex
	users  map[uint]*user.User
	nextID uint

	// Error injection for testing
	CreateError error
	GetError    error
	UpdateError error
	AttachError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uint]*user.User)}
}

// Seed stores a user and returns it with an assigned ID.
func (m *MockUserRepository) Seed(email, firstName, lastName string) *user.User {
	u, err := user.NewUser(email, firstName, lastName, "hash:password")
	if err != nil {
		panic(err)
	}
	if err := m.Create(context.Background(), u); err != nil {
		panic(err)
	}
	return u
}

// SeedAdmin stores a user holding the platform admin role.
func (m *MockUserRepository) SeedAdmin(email string) *user.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	u, err := user.ReconstructUser(m.nextID, email, "Ada", "Admin", "hash:password", authorization.RoleAdmin,
		"", "", "", "", nil, false, user.NoBillingCustomer, time.Now(), time.Now())
	if err != nil {
		panic(err)
	}
	m.users[u.ID()] = u
	return u
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateError != nil {
		return m.CreateError
	}
	for _, existing := range m.users {
		if existing.Email() == u.Email() {
			return user.ErrEmailTaken
		}
	}
	if u.ID() == 0 {
		m.nextID++
		if err := u.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.users[u.ID()] = u
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[uint]*user.User, len(ids))
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			result[id] = u
		}
	}
	return result, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range m.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.users[u.ID()]; !ok {
		return user.ErrUserNotFound
	}
	m.users[u.ID()] = u
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []*user.User
	for _, u := range m.sorted() {
		if filter.Search != "" && !strings.Contains(strings.ToLower(u.FullName()+" "+u.Email()), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Role != "" && string(u.Role()) != filter.Role {
			continue
		}
		matched = append(matched, u)
	}
	return paginate(matched, filter.Page, filter.PageSize), int64(len(matched)), nil
}

func (m *MockUserRepository) ListByClub(ctx context.Context, clubID uint, page, pageSize int) ([]*user.User, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var members []*user.User
	for _, u := range m.sorted() {
		if u.IsMemberOf(clubID) {
			members = append(members, u)
		}
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].IsClubAdmin() && !members[j].IsClubAdmin()
	})
	return paginate(members, page, pageSize), int64(len(members)), nil
}

func (m *MockUserRepository) ListClubAdmins(ctx context.Context, clubID uint) ([]*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var admins []*user.User
	for _, u := range m.sorted() {
		if u.IsAdminOf(clubID) {
			admins = append(admins, u)
		}
	}
	return admins, nil
}

func (m *MockUserRepository) CountByClub(ctx context.Context, clubID uint) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, u := range m.users {
		if u.IsMemberOf(clubID) {
			n++
		}
	}
	return n, nil
}

func (m *MockUserRepository) AttachToClubIfUnaffiliated(ctx context.Context, userID, clubID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.AttachError != nil {
		return false, m.AttachError
	}
	u, ok := m.users[userID]
	if !ok || u.IsAffiliated() {
		return false, nil
	}
	return true, u.JoinClub(clubID)
}

func (m *MockUserRepository) DetachFromClub(ctx context.Context, userID, clubID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok || !u.IsMemberOf(clubID) {
		return false, nil
	}
	u.LeaveClub()
	return true, nil
}

func (m *MockUserRepository) DetachAllFromClub(ctx context.Context, clubID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.IsMemberOf(clubID) {
			u.LeaveClub()
		}
	}
	return nil
}

func (m *MockUserRepository) SetClubAdmin(ctx context.Context, userID, clubID uint, admin bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok || !u.IsMemberOf(clubID) {
		return false, nil
	}
	if admin {
		return true, u.PromoteToClubAdmin(clubID)
	}
	u.DemoteClubAdmin()
	return true, nil
}

func (m *MockUserRepository) ListWithBillingCustomer(ctx context.Context) ([]*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*user.User
	for _, u := range m.sorted() {
		if u.HasBillingCustomer() {
			result = append(result, u)
		}
	}
	return result, nil
}

func (m *MockUserRepository) sorted() []*user.User {
	result := make([]*user.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result
}

type followEdge struct {
	from, to uint
}

// MockUserFollowRepository is an in-memory user.FollowRepository.
type MockUserFollowRepository struct {
	mu    sync.RWMutex
	edges []followEdge
}

func NewMockUserFollowRepository() *MockUserFollowRepository {
	return &MockUserFollowRepository{}
}

func (m *MockUserFollowRepository) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.indexOf(followerID, followedID) >= 0, nil
}

func (m *MockUserFollowRepository) Create(ctx context.Context, followerID, followedID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.indexOf(followerID, followedID) < 0 {
		m.edges = append(m.edges, followEdge{from: followerID, to: followedID})
	}
	return nil
}

func (m *MockUserFollowRepository) Delete(ctx context.Context, followerID, followedID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(followerID, followedID)
	if i < 0 {
		return false, nil
	}
	m.edges = append(m.edges[:i], m.edges[i+1:]...)
	return true, nil
}

func (m *MockUserFollowRepository) ListFollowerIDs(ctx context.Context, userID uint, page, pageSize int) ([]uint, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []uint
	for i := len(m.edges) - 1; i >= 0; i-- {
		if m.edges[i].to == userID {
			ids = append(ids, m.edges[i].from)
		}
	}
	return paginate(ids, page, pageSize), int64(len(ids)), nil
}

func (m *MockUserFollowRepository) ListFollowingIDs(ctx context.Context, userID uint, page, pageSize int) ([]uint, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []uint
	for i := len(m.edges) - 1; i >= 0; i-- {
		if m.edges[i].from == userID {
			ids = append(ids, m.edges[i].to)
		}
	}
	return paginate(ids, page, pageSize), int64(len(ids)), nil
}

func (m *MockUserFollowRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.edges[:0]
	for _, e := range m.edges {
		if e.from != userID && e.to != userID {
			kept = append(kept, e)
		}
	}
	m.edges = kept
	return nil
}

func (m *MockUserFollowRepository) indexOf(from, to uint) int {
	for i, e := range m.edges {
		if e.from == from && e.to == to {
			return i
		}
	}
	return -1
}

// MockSessionRepository is an in-memory user.SessionRepository.
type MockSessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*user.Session
}

func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{sessions: make(map[string]*user.Session)}
}

func (m *MockSessionRepository) Create(ctx context.Context, s *user.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *MockSessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, user.ErrSessionNotFound
	}
	return s, nil
}

func (m *MockSessionRepository) Revoke(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return user.ErrSessionNotFound
	}
	s.Revoke()
	return nil
}

func (m *MockSessionRepository) RevokeAllForUser(ctx context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		if s.UserID == userID {
			s.Revoke()
		}
	}
	return nil
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, s := range m.sessions {
		if !s.IsActive() {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

// Count returns the number of stored sessions.
func (m *MockSessionRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
