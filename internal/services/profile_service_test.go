package services

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErr "github.com/devlinks/api/pkg/errors"
	"github.com/devlinks/api/pkg/token"
)

type fakeImageStore struct {
	uploads map[string]string
}

func (f *fakeImageStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if f.uploads == nil {
		f.uploads = map[string]string{}
	}
	b, _ := io.ReadAll(body)
	f.uploads[key] = string(b)
	return "https://cdn.example.com/" + key, nil
}

func TestGetPublic(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	links := newFakeLinkRepo()
	auth := NewAuthService(users, token.NewIssuer([]byte("test-secret-0123456789"), time.Hour))
	linkSvc := NewLinkService(links)
	svc := NewProfileService(users, links, nil)
	ctx := context.Background()

	user, _, err := auth.Register(ctx, registerInput("erin@example.com"))
	require.NoError(t, err)
	_, err = linkSvc.Create(ctx, user.ID, "github", "https://github.com/erin")
	require.NoError(t, err)

	profile, err := svc.GetPublic(ctx, "erin")
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.User.ID)
	require.Len(t, profile.Links, 1)
	assert.Equal(t, "https://github.com/erin", profile.Links[0].PlatformURL)
}

func TestGetPublic_UnknownUsername(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newFakeUserRepo(), newFakeLinkRepo(), nil)

	profile, err := svc.GetPublic(context.Background(), "ghost")
	require.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestUpdateProfile_WithImage(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	auth := NewAuthService(users, token.NewIssuer([]byte("test-secret-0123456789"), time.Hour))
	images := &fakeImageStore{}
	svc := NewProfileService(users, newFakeLinkRepo(), images)
	ctx := context.Background()

	user, _, err := auth.Register(ctx, registerInput("frank@example.com"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, user.ID.String(), ProfileUpdate{
		FirstName:        "Franklin",
		LastName:         "Moore",
		Image:            strings.NewReader("png-bytes"),
		ImageContentType: "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Franklin", updated.FirstName)
	assert.Contains(t, updated.ImageURL, "https://cdn.example.com/user_images/")
	assert.Len(t, images.uploads, 1)
}

func TestUpdateProfile_KeepsProvidedImageURL(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	auth := NewAuthService(users, token.NewIssuer([]byte("test-secret-0123456789"), time.Hour))
	svc := NewProfileService(users, newFakeLinkRepo(), nil)
	ctx := context.Background()

	user, _, err := auth.Register(ctx, registerInput("grace@example.com"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, user.ID.String(), ProfileUpdate{
		FirstName: "Grace",
		LastName:  "Hopper",
		ImageURL:  "https://cdn.example.com/existing.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/existing.png", updated.ImageURL)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newFakeUserRepo(), newFakeLinkRepo(), nil)

	_, err := svc.Update(context.Background(), "not-a-user-id", ProfileUpdate{FirstName: "X", LastName: "Y"})
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}
