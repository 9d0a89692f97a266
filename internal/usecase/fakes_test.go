package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"trek-booking/internal/data/entity"
	"trek-booking/internal/data/repository"

	"github.com/google/uuid"
)

func nowPtr() *time.Time {
	now := time.Now()
	return &now
}

// In-memory repository fakes. They reproduce the storage contracts the
// services rely on: lowercase-unique emails, nil for missing rows,
// cancelled status on booking delete.

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (m *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.User
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memUserRepo) CountAll(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func (m *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, u := range m.users {
		if id != user.ID && strings.EqualFold(u.Email, user.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

type memTrekRepo struct {
	mu    sync.Mutex
	treks map[uuid.UUID]*entity.Trek
}

func newMemTrekRepo() *memTrekRepo {
	return &memTrekRepo{treks: make(map[uuid.UUID]*entity.Trek)}
}

func (m *memTrekRepo) Create(ctx context.Context, trek *entity.Trek) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.treks {
		if t.Slug == trek.Slug {
			return repository.ErrDuplicateSlug
		}
	}
	cp := *trek
	m.treks[trek.ID] = &cp
	return nil
}

func (m *memTrekRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trek, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.treks[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (m *memTrekRepo) FindAll(ctx context.Context, filter repository.TrekFilter, limit, offset int) ([]*entity.Trek, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Trek
	for _, t := range m.treks {
		if filter.OnlyActive && !t.IsActive {
			continue
		}
		if filter.Region != "" && t.Region != filter.Region {
			continue
		}
		if filter.Difficulty != "" && string(t.Difficulty) != filter.Difficulty {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memTrekRepo) CountAll(ctx context.Context, filter repository.TrekFilter) (int64, error) {
	treks, _ := m.FindAll(ctx, filter, 0, 0)
	return int64(len(treks)), nil
}

func (m *memTrekRepo) Update(ctx context.Context, trek *entity.Trek) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, t := range m.treks {
		if id != trek.ID && t.Slug == trek.Slug {
			return repository.ErrDuplicateSlug
		}
	}
	cp := *trek
	m.treks[trek.ID] = &cp
	return nil
}

func (m *memTrekRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.treks, id)
	return nil
}

type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (m *memBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *booking
	m.bookings[booking.ID] = &cp
	return nil
}

func (m *memBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.bookings[id]; ok && b.DeletedAt == nil {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (m *memBookingRepo) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Booking
	for _, b := range m.bookings {
		if b.UserID == userID && b.DeletedAt == nil {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memBookingRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	bookings, _ := m.FindByUser(ctx, userID, 0, 0)
	return int64(len(bookings)), nil
}

func (m *memBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Booking
	for _, b := range m.bookings {
		if b.DeletedAt == nil {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memBookingRepo) CountAll(ctx context.Context) (int64, error) {
	bookings, _ := m.FindAll(ctx, 0, 0)
	return int64(len(bookings)), nil
}

func (m *memBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *booking
	m.bookings[booking.ID] = &cp
	return nil
}

func (m *memBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.bookings[id]; ok {
		now := nowPtr()
		b.Status = entity.BookingStatusCancelled
		b.DeletedAt = now
	}
	return nil
}

type memBlogRepo struct {
	mu    sync.Mutex
	posts map[uuid.UUID]*entity.BlogPost
}

func newMemBlogRepo() *memBlogRepo {
	return &memBlogRepo{posts: make(map[uuid.UUID]*entity.BlogPost)}
}

func (m *memBlogRepo) Create(ctx context.Context, post *entity.BlogPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.posts {
		if p.Slug == post.Slug {
			return repository.ErrDuplicateSlug
		}
	}
	cp := *post
	m.posts[post.ID] = &cp
	return nil
}

func (m *memBlogRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m *memBlogRepo) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.posts {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memBlogRepo) FindAll(ctx context.Context, publishedOnly bool, limit, offset int) ([]*entity.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.BlogPost
	for _, p := range m.posts {
		if publishedOnly && !p.Published {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memBlogRepo) CountAll(ctx context.Context, publishedOnly bool) (int64, error) {
	posts, _ := m.FindAll(ctx, publishedOnly, 0, 0)
	return int64(len(posts)), nil
}

func (m *memBlogRepo) Update(ctx context.Context, post *entity.BlogPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, p := range m.posts {
		if id != post.ID && p.Slug == post.Slug {
			return repository.ErrDuplicateSlug
		}
	}
	cp := *post
	m.posts[post.ID] = &cp
	return nil
}

func (m *memBlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.posts, id)
	return nil
}

type memGuideRepo struct {
	mu     sync.Mutex
	guides map[uuid.UUID]*entity.Guide
}

func newMemGuideRepo() *memGuideRepo {
	return &memGuideRepo{guides: make(map[uuid.UUID]*entity.Guide)}
}

func (m *memGuideRepo) Create(ctx context.Context, guide *entity.Guide) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *guide
	m.guides[guide.ID] = &cp
	return nil
}

func (m *memGuideRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.guides[id]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, nil
}

func (m *memGuideRepo) FindAll(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Guide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Guide
	for _, g := range m.guides {
		if onlyActive && !g.IsActive {
			continue
		}
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memGuideRepo) CountAll(ctx context.Context, onlyActive bool) (int64, error) {
	guides, _ := m.FindAll(ctx, onlyActive, 0, 0)
	return int64(len(guides)), nil
}

func (m *memGuideRepo) Update(ctx context.Context, guide *entity.Guide) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *guide
	m.guides[guide.ID] = &cp
	return nil
}

func (m *memGuideRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.guides, id)
	return nil
}

// recordingMailer captures outbound mail for assertions.
type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}
