package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/devlinks/api/internal/models"
	appErr "github.com/devlinks/api/pkg/errors"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]models.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email || existing.UserName == u.UserName {
			return appErr.New(appErr.CodeAlreadyExists, "entity already exists")
		}
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id any, dest *models.User) error {
	uid, err := uuid.Parse(fmt.Sprint(id))
	if err != nil {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[uid]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	*dest = u
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id any) error {
	uid, _ := uuid.Parse(fmt.Sprint(id))
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[uid]; !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	delete(r.users, uid)
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string, dest *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			*dest = u
			return nil
		}
	}
	return appErr.New(appErr.CodeNotFound, "user not found")
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string, dest *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.UserName == username {
			*dest = u
			return nil
		}
	}
	return appErr.New(appErr.CodeNotFound, "user not found")
}

type fakeLinkRepo struct {
	mu    sync.Mutex
	links map[uuid.UUID]models.Link
	order []uuid.UUID
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: map[uuid.UUID]models.Link{}}
}

func (r *fakeLinkRepo) Create(ctx context.Context, l *models.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.ID = uuid.New()
	l.CreatedAt = time.Now()
	r.links[l.ID] = *l
	r.order = append(r.order, l.ID)
	return nil
}

func (r *fakeLinkRepo) GetByID(ctx context.Context, id any, dest *models.Link) error {
	uid, err := uuid.Parse(fmt.Sprint(id))
	if err != nil {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.links[uid]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	*dest = l
	return nil
}

func (r *fakeLinkRepo) Update(ctx context.Context, l *models.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.links[l.ID]; !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	r.links[l.ID] = *l
	return nil
}

func (r *fakeLinkRepo) Delete(ctx context.Context, id any) error {
	uid, _ := uuid.Parse(fmt.Sprint(id))
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.links[uid]; !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	delete(r.links, uid)
	return nil
}

func (r *fakeLinkRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Link
	for _, id := range r.order {
		if l, ok := r.links[id]; ok && l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLinkRepo) UpdateOwned(ctx context.Context, linkID, userID uuid.UUID, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.links[linkID]
	if !ok || l.UserID != userID {
		return appErr.New(appErr.CodeNotFound, "link not found")
	}
	if v, ok := fields["platform_name"]; ok {
		l.PlatformName = v.(string)
	}
	if v, ok := fields["platform_url"]; ok {
		l.PlatformURL = v.(string)
	}
	r.links[linkID] = l
	return nil
}

func (r *fakeLinkRepo) DeleteOwned(ctx context.Context, linkID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.links[linkID]
	if !ok || l.UserID != userID {
		return appErr.New(appErr.CodeNotFound, "link not found")
	}
	delete(r.links, linkID)
	return nil
}
