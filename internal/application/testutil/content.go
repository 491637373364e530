package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/ridecrew/ridecrew/internal/domain/bicycle"
	"github.com/ridecrew/ridecrew/internal/domain/feed"
	"github.com/ridecrew/ridecrew/internal/domain/hike"
)

// MockPostRepository is an in-memory feed.PostRepository. Deleting posts also
// removes their comments and likes when the sibling mocks are attached.
type MockPostRepository struct {
	mu     sync.RWMutex
	posts  map[uint]*feed.Post
	nextID uint

	Comments *MockCommentRepository
	Likes    *MockLikeRepository

	CreateError error
}

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{posts: make(map[uint]*feed.Post)}
}

func (m *MockPostRepository) Create(ctx context.Context, p *feed.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateError != nil {
		return m.CreateError
	}
	m.nextID++
	p.SetID(m.nextID)
	m.posts[p.ID()] = p
	return nil
}

func (m *MockPostRepository) AddImage(ctx context.Context, postID uint, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[postID]
	if !ok {
		return feed.ErrPostNotFound
	}
	if !containsString(p.Images(), path) {
		p.AttachImage(path)
	}
	return nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*feed.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, feed.ErrPostNotFound
	}
	return p, nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, feed.ErrPostNotFound
	}
	return m.remove(p), nil
}

func (m *MockPostRepository) DeleteAllForClub(ctx context.Context, clubID uint) ([]string, error) {
	return m.deleteWhere(func(p *feed.Post) bool {
		return p.ClubID() != nil && *p.ClubID() == clubID
	}), nil
}

func (m *MockPostRepository) DeleteAllByAuthor(ctx context.Context, userID uint) ([]string, error) {
	return m.deleteWhere(func(p *feed.Post) bool {
		return !p.IsClubPost() && p.AuthorUserID() == userID
	}), nil
}

func (m *MockPostRepository) ListByClub(ctx context.Context, clubID uint, page, pageSize int) ([]*feed.Post, int64, error) {
	return m.list(func(p *feed.Post) bool {
		return p.ClubID() != nil && *p.ClubID() == clubID
	}, page, pageSize)
}

func (m *MockPostRepository) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]*feed.Post, int64, error) {
	return m.list(func(p *feed.Post) bool {
		return !p.IsClubPost() && p.AuthorUserID() == userID
	}, page, pageSize)
}

func (m *MockPostRepository) Timeline(ctx context.Context, q feed.TimelineQuery) ([]*feed.Post, int64, error) {
	authors := append([]uint{q.UserID}, q.FollowedUserIDs...)
	return m.list(func(p *feed.Post) bool {
		if p.IsClubPost() {
			return containsUint(q.ClubIDs, *p.ClubID())
		}
		return containsUint(authors, p.AuthorUserID())
	}, q.Page, q.PageSize)
}

// Count returns the number of stored posts.
func (m *MockPostRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.posts)
}

func (m *MockPostRepository) deleteWhere(match func(*feed.Post) bool) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var paths []string
	for _, p := range m.posts {
		if match(p) {
			paths = append(paths, m.remove(p)...)
		}
	}
	return paths
}

func (m *MockPostRepository) remove(p *feed.Post) []string {
	delete(m.posts, p.ID())
	if m.Comments != nil {
		m.Comments.deleteForPost(p.ID())
	}
	if m.Likes != nil {
		m.Likes.deleteForPost(p.ID())
	}
	return append([]string(nil), p.Images()...)
}

func (m *MockPostRepository) list(match func(*feed.Post) bool, page, pageSize int) ([]*feed.Post, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*feed.Post
	for _, p := range m.posts {
		if match(p) {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt().Equal(result[j].CreatedAt()) {
			return result[i].ID() > result[j].ID()
		}
		return result[i].CreatedAt().After(result[j].CreatedAt())
	})
	return paginate(result, page, pageSize), int64(len(result)), nil
}

// MockCommentRepository is an in-memory feed.CommentRepository.
type MockCommentRepository struct {
	mu       sync.RWMutex
	comments map[uint]*feed.Comment
	nextID   uint
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{comments: make(map[uint]*feed.Comment)}
}

func (m *MockCommentRepository) Create(ctx context.Context, c *feed.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	m.comments[c.ID] = c
	return nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*feed.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.comments[id]
	if !ok {
		return nil, feed.ErrCommentNotFound
	}
	return c, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.comments[id]; !ok {
		return feed.ErrCommentNotFound
	}
	delete(m.comments, id)
	return nil
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID uint) ([]*feed.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*feed.Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MockCommentRepository) CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[uint]int64)
	for _, c := range m.comments {
		if containsUint(postIDs, c.PostID) {
			counts[c.PostID]++
		}
	}
	return counts, nil
}

func (m *MockCommentRepository) deleteForPost(postID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, c := range m.comments {
		if c.PostID == postID {
			delete(m.comments, id)
		}
	}
}

type pair struct {
	target, user uint
}

// pairSet backs the like and hype mocks.
type pairSet struct {
	mu    sync.RWMutex
	pairs map[pair]bool
}

func (s *pairSet) exists(target, userID uint) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pairs[pair{target, userID}]
}

func (s *pairSet) add(target, userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pairs == nil {
		s.pairs = make(map[pair]bool)
	}
	s.pairs[pair{target, userID}] = true
}

func (s *pairSet) remove(target, userID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.pairs[pair{target, userID}] {
		return false
	}
	delete(s.pairs, pair{target, userID})
	return true
}

func (s *pairSet) removeTarget(target uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for p := range s.pairs {
		if p.target == target {
			delete(s.pairs, p)
		}
	}
}

func (s *pairSet) count(targets []uint) map[uint]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[uint]int64)
	for p := range s.pairs {
		if containsUint(targets, p.target) {
			counts[p.target]++
		}
	}
	return counts
}

func (s *pairSet) markedBy(userID uint, targets []uint) map[uint]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	marked := make(map[uint]bool)
	for p := range s.pairs {
		if p.user == userID && containsUint(targets, p.target) {
			marked[p.target] = true
		}
	}
	return marked
}

// MockLikeRepository is an in-memory feed.LikeRepository.
type MockLikeRepository struct {
	set pairSet
}

func NewMockLikeRepository() *MockLikeRepository {
	return &MockLikeRepository{}
}

func (m *MockLikeRepository) Exists(ctx context.Context, postID, userID uint) (bool, error) {
	return m.set.exists(postID, userID), nil
}

func (m *MockLikeRepository) Create(ctx context.Context, postID, userID uint) error {
	m.set.add(postID, userID)
	return nil
}

func (m *MockLikeRepository) Delete(ctx context.Context, postID, userID uint) (bool, error) {
	return m.set.remove(postID, userID), nil
}

func (m *MockLikeRepository) CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	return m.set.count(postIDs), nil
}

func (m *MockLikeRepository) LikedBy(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error) {
	return m.set.markedBy(userID, postIDs), nil
}

func (m *MockLikeRepository) deleteForPost(postID uint) {
	m.set.removeTarget(postID)
}

// MockHikeRepository is an in-memory hike.Repository. Attached image, trip and
// hype mocks are cleaned up when hikes are deleted.
type MockHikeRepository struct {
	mu     sync.RWMutex
	hikes  map[uint]*hike.Hike
	nextID uint

	Images *MockHikeImageRepository
	Trips  *MockTripRepository
	Hypes  *MockHypeRepository
}

func NewMockHikeRepository() *MockHikeRepository {
	return &MockHikeRepository{hikes: make(map[uint]*hike.Hike)}
}

func (m *MockHikeRepository) Create(ctx context.Context, h *hike.Hike) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	h.SetID(m.nextID)
	m.hikes[h.ID()] = h
	return nil
}

func (m *MockHikeRepository) GetByID(ctx context.Context, id uint) (*hike.Hike, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.hikes[id]
	if !ok {
		return nil, hike.ErrHikeNotFound
	}
	return h, nil
}

func (m *MockHikeRepository) Update(ctx context.Context, h *hike.Hike) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.hikes[h.ID()]; !ok {
		return hike.ErrHikeNotFound
	}
	m.hikes[h.ID()] = h
	return nil
}

func (m *MockHikeRepository) Search(ctx context.Context, filter hike.SearchFilter) ([]*hike.Hike, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*hike.Hike
	for _, h := range m.hikes {
		d := h.Details()
		if h.IsCancelled() || d.StartsAt.Before(filter.From) {
			continue
		}
		if filter.To != nil && d.StartsAt.After(*filter.To) {
			continue
		}
		if filter.Department != "" && d.Department != filter.Department {
			continue
		}
		if filter.ClubID != nil && (h.ClubID() == nil || *h.ClubID() != *filter.ClubID) {
			continue
		}
		result = append(result, h)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Details().StartsAt.Before(result[j].Details().StartsAt)
	})
	return paginate(result, filter.Page, filter.PageSize), int64(len(result)), nil
}

func (m *MockHikeRepository) DeleteAllForClub(ctx context.Context, clubID uint) ([]string, error) {
	return m.deleteWhere(func(h *hike.Hike) bool {
		return h.ClubID() != nil && *h.ClubID() == clubID
	}), nil
}

func (m *MockHikeRepository) DeleteAllByCreator(ctx context.Context, userID uint) ([]string, error) {
	return m.deleteWhere(func(h *hike.Hike) bool { return h.CreatorID() == userID }), nil
}

// Count returns the number of stored hikes.
func (m *MockHikeRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.hikes)
}

func (m *MockHikeRepository) deleteWhere(match func(*hike.Hike) bool) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var paths []string
	for id, h := range m.hikes {
		if !match(h) {
			continue
		}
		delete(m.hikes, id)
		if m.Images != nil {
			paths = append(paths, m.Images.removeHike(id)...)
		}
		if m.Trips != nil {
			m.Trips.removeHike(id)
		}
		if m.Hypes != nil {
			m.Hypes.set.removeTarget(id)
		}
	}
	return paths
}

// MockTripRepository is an in-memory hike.TripRepository.
type MockTripRepository struct {
	mu     sync.RWMutex
	trips  map[uint]*hike.Trip
	nextID uint
}

func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{trips: make(map[uint]*hike.Trip)}
}

func (m *MockTripRepository) Create(ctx context.Context, t *hike.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	t.ID = m.nextID
	m.trips[t.ID] = t
	return nil
}

func (m *MockTripRepository) GetByID(ctx context.Context, id uint) (*hike.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.trips[id]
	if !ok {
		return nil, hike.ErrTripNotFound
	}
	return t, nil
}

func (m *MockTripRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trips[id]; !ok {
		return hike.ErrTripNotFound
	}
	delete(m.trips, id)
	return nil
}

func (m *MockTripRepository) ListByHike(ctx context.Context, hikeID uint) ([]*hike.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*hike.Trip
	for _, t := range m.trips {
		if t.HikeID == hikeID {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Position < result[j].Position })
	return result, nil
}

func (m *MockTripRepository) NextPosition(ctx context.Context, hikeID uint) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	next := 1
	for _, t := range m.trips {
		if t.HikeID == hikeID && t.Position >= next {
			next = t.Position + 1
		}
	}
	return next, nil
}

func (m *MockTripRepository) removeHike(hikeID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, t := range m.trips {
		if t.HikeID == hikeID {
			delete(m.trips, id)
		}
	}
}

// MockHypeRepository is an in-memory hike.HypeRepository.
type MockHypeRepository struct {
	set pairSet
}

func NewMockHypeRepository() *MockHypeRepository {
	return &MockHypeRepository{}
}

func (m *MockHypeRepository) Exists(ctx context.Context, hikeID, userID uint) (bool, error) {
	return m.set.exists(hikeID, userID), nil
}

func (m *MockHypeRepository) Create(ctx context.Context, hikeID, userID uint) error {
	m.set.add(hikeID, userID)
	return nil
}

func (m *MockHypeRepository) Delete(ctx context.Context, hikeID, userID uint) (bool, error) {
	return m.set.remove(hikeID, userID), nil
}

func (m *MockHypeRepository) CountByHikes(ctx context.Context, hikeIDs []uint) (map[uint]int64, error) {
	return m.set.count(hikeIDs), nil
}

func (m *MockHypeRepository) HypedBy(ctx context.Context, userID uint, hikeIDs []uint) (map[uint]bool, error) {
	return m.set.markedBy(userID, hikeIDs), nil
}

// MockHikeImageRepository is an in-memory hike.ImageRepository.
type MockHikeImageRepository struct {
	mu     sync.RWMutex
	images map[uint][]string
}

func NewMockHikeImageRepository() *MockHikeImageRepository {
	return &MockHikeImageRepository{images: make(map[uint][]string)}
}

func (m *MockHikeImageRepository) Create(ctx context.Context, hikeID uint, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.images[hikeID] = append(m.images[hikeID], path)
	return nil
}

func (m *MockHikeImageRepository) ListByHike(ctx context.Context, hikeID uint) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.images[hikeID]...), nil
}

func (m *MockHikeImageRepository) removeHike(hikeID uint) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := m.images[hikeID]
	delete(m.images, hikeID)
	return paths
}

// MockBicycleRepository is an in-memory bicycle.Repository.
type MockBicycleRepository struct {
	mu       sync.RWMutex
	bicycles map[uint]*bicycle.Bicycle
	nextID   uint
}

func NewMockBicycleRepository() *MockBicycleRepository {
	return &MockBicycleRepository{bicycles: make(map[uint]*bicycle.Bicycle)}
}

func (m *MockBicycleRepository) Create(ctx context.Context, b *bicycle.Bicycle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	b.SetID(m.nextID)
	m.bicycles[b.ID()] = b
	return nil
}

func (m *MockBicycleRepository) GetByID(ctx context.Context, id uint) (*bicycle.Bicycle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bicycles[id]
	if !ok {
		return nil, bicycle.ErrBicycleNotFound
	}
	return b, nil
}

func (m *MockBicycleRepository) Update(ctx context.Context, b *bicycle.Bicycle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bicycles[b.ID()]; !ok {
		return bicycle.ErrBicycleNotFound
	}
	m.bicycles[b.ID()] = b
	return nil
}

func (m *MockBicycleRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bicycles[id]; !ok {
		return bicycle.ErrBicycleNotFound
	}
	delete(m.bicycles, id)
	return nil
}

func (m *MockBicycleRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*bicycle.Bicycle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*bicycle.Bicycle
	for _, b := range m.bicycles {
		if b.OwnerID() == ownerID {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result, nil
}

func containsUint(list []uint, v uint) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
