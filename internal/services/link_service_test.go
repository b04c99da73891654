package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErr "github.com/devlinks/api/pkg/errors"
)

func TestCreateLink_URLValidation(t *testing.T) {
	t.Parallel()

	svc := NewLinkService(newFakeLinkRepo())
	ctx := context.Background()
	owner := uuid.New()

	tests := []struct {
		name     string
		platform string
		url      string
		wantErr  bool
	}{
		{"github ok", "github", "https://github.com/alice", false},
		{"github www ok", "github", "https://www.github.com/alice", false},
		{"wrong scheme", "github", "http://github.com/alice", true},
		{"wrong host", "github", "https://gitlab.com/alice", true},
		{"mixed case platform", "GitHub", "https://github.com/alice", false},
		{"empty handle", "twitter", "https://twitter.com/", true},
		{"missing name", "", "https://github.com/alice", true},
		{"missing url", "github", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := svc.Create(ctx, owner, tt.platform, tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, owner, link.UserID)
			assert.NotEqual(t, uuid.Nil, link.ID)
			assert.False(t, link.CreatedAt.IsZero())
		})
	}
}

func TestUpdateLink_PartialPatch(t *testing.T) {
	t.Parallel()

	svc := NewLinkService(newFakeLinkRepo())
	ctx := context.Background()
	owner := uuid.New()

	link, err := svc.Create(ctx, owner, "github", "https://github.com/alice")
	require.NoError(t, err)

	err = svc.Update(ctx, link.ID, owner, LinkUpdate{PlatformURL: "https://github.com/alice-new"})
	require.NoError(t, err)

	links, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "github", links[0].PlatformName, "platform_name must stay unchanged")
	assert.Equal(t, "https://github.com/alice-new", links[0].PlatformURL)
}

func TestUpdateLink_NoFields(t *testing.T) {
	t.Parallel()

	svc := NewLinkService(newFakeLinkRepo())

	err := svc.Update(context.Background(), uuid.New(), uuid.New(), LinkUpdate{})
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}

func TestUpdateLink_OtherOwner(t *testing.T) {
	t.Parallel()

	svc := NewLinkService(newFakeLinkRepo())
	ctx := context.Background()
	owner := uuid.New()

	link, err := svc.Create(ctx, owner, "github", "https://github.com/alice")
	require.NoError(t, err)

	err = svc.Update(ctx, link.ID, uuid.New(), LinkUpdate{PlatformName: "gitlab"})
	require.Error(t, err)
	// Ownership mismatch is reported the same as a missing record.
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestDeleteLink_TwiceNotIdempotent(t *testing.T) {
	t.Parallel()

	svc := NewLinkService(newFakeLinkRepo())
	ctx := context.Background()
	owner := uuid.New()

	link, err := svc.Create(ctx, owner, "github", "https://github.com/alice")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, link.ID, owner))

	err = svc.Delete(ctx, link.ID, owner)
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestListLinks_ScopedToOwner(t *testing.T) {
	t.Parallel()

	svc := NewLinkService(newFakeLinkRepo())
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	_, err := svc.Create(ctx, alice, "github", "https://github.com/alice")
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, "github", "https://github.com/bob")
	require.NoError(t, err)

	links, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, alice, links[0].UserID)
}
