package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/devlinks/api/internal/models"
	"github.com/devlinks/api/internal/repository"
	appErr "github.com/devlinks/api/pkg/errors"
)

// LinkUpdate carries the fields a partial link patch may set. Empty strings
// mean "leave unchanged".
type LinkUpdate struct {
	PlatformName string
	PlatformURL  string
}

type LinkService interface {
	Create(ctx context.Context, ownerID uuid.UUID, platformName, platformURL string) (*models.Link, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]models.Link, error)
	Update(ctx context.Context, linkID, ownerID uuid.UUID, upd LinkUpdate) error
	Delete(ctx context.Context, linkID, ownerID uuid.UUID) error
}

type linkService struct {
	links repository.LinkRepository
}

func NewLinkService(links repository.LinkRepository) LinkService {
	return &linkService{links: links}
}

func (s *linkService) Create(ctx context.Context, ownerID uuid.UUID, platformName, platformURL string) (*models.Link, error) {
	if platformName == "" || platformURL == "" {
		return nil, appErr.New(appErr.CodeInvalid, "Platform name and URL are required.")
	}
	if !validPlatformURL(platformName, platformURL) {
		return nil, appErr.New(appErr.CodeInvalid, "Invalid platform URL format.")
	}

	link := &models.Link{
		UserID:       ownerID,
		PlatformName: platformName,
		PlatformURL:  platformURL,
	}
	if err := s.links.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *linkService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Link, error) {
	return s.links.ListByUser(ctx, ownerID)
}

func (s *linkService) Update(ctx context.Context, linkID, ownerID uuid.UUID, upd LinkUpdate) error {
	fields := map[string]any{}
	if upd.PlatformName != "" {
		fields["platform_name"] = upd.PlatformName
	}
	if upd.PlatformURL != "" {
		fields["platform_url"] = upd.PlatformURL
	}
	if len(fields) == 0 {
		return appErr.New(appErr.CodeInvalid, "No valid fields to update.")
	}
	return s.links.UpdateOwned(ctx, linkID, ownerID, fields)
}

func (s *linkService) Delete(ctx context.Context, linkID, ownerID uuid.UUID) error {
	return s.links.DeleteOwned(ctx, linkID, ownerID)
}

// validPlatformURL checks the URL against a per-platform shape:
// https://[www.]<platform>.com/<handle>, handle restricted to [A-Za-z0-9_-].
func validPlatformURL(platformName, platformURL string) bool {
	pattern := fmt.Sprintf(`^https://(www\.)?%s\.com/[A-Za-z0-9_-]+`,
		regexp.QuoteMeta(strings.ToLower(platformName)))
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(platformURL)
}
