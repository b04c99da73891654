package services

import (
	"context"
	"fmt"
	"io"

	"github.com/devlinks/api/internal/models"
	"github.com/devlinks/api/internal/repository"
	appErr "github.com/devlinks/api/pkg/errors"
)

// ImageStore uploads profile images to an external object store and returns
// the public URL of the stored object.
type ImageStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// PublicProfile is the unauthenticated view of a user and their links.
type PublicProfile struct {
	User  *models.User  `json:"user"`
	Links []models.Link `json:"links"`
}

type ProfileUpdate struct {
	FirstName string
	LastName  string
	// ImageURL keeps the existing or client-supplied URL when no new file
	// is uploaded.
	ImageURL string
	// Image, when non-nil, is uploaded and its stored URL replaces ImageURL.
	Image            io.Reader
	ImageContentType string
}

type ProfileService interface {
	GetPublic(ctx context.Context, username string) (*PublicProfile, error)
	Update(ctx context.Context, userID string, upd ProfileUpdate) (*models.User, error)
}

type profileService struct {
	users  repository.UserRepository
	links  repository.LinkRepository
	images ImageStore
}

func NewProfileService(users repository.UserRepository, links repository.LinkRepository, images ImageStore) ProfileService {
	return &profileService{users: users, links: links, images: images}
}

func (s *profileService) GetPublic(ctx context.Context, username string) (*PublicProfile, error) {
	var user models.User
	if err := s.users.GetByUsername(ctx, username, &user); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "User not found.")
		}
		return nil, err
	}

	links, err := s.links.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &PublicProfile{User: &user, Links: links}, nil
}

func (s *profileService) Update(ctx context.Context, userID string, upd ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := s.users.GetByID(ctx, userID, &user); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "User not found")
		}
		return nil, err
	}

	imageURL := upd.ImageURL
	if upd.Image != nil {
		if s.images == nil {
			return nil, appErr.New(appErr.CodeUnavailable, "image storage not configured")
		}
		key := fmt.Sprintf("user_images/%s", user.ID)
		url, err := s.images.Upload(ctx, key, upd.Image, upd.ImageContentType)
		if err != nil {
			return nil, appErr.Wrap(err, appErr.CodeInternal, "image upload failed")
		}
		imageURL = url
	}

	user.FirstName = upd.FirstName
	user.LastName = upd.LastName
	if imageURL != "" {
		user.ImageURL = imageURL
	}

	if err := s.users.Update(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
