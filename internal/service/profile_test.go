package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RamadhanLantern/internal/model/dto"
	"RamadhanLantern/internal/tracker"
	"RamadhanLantern/storage/kv"
)

func strPtr(s string) *string { return &s }

func TestOnboard(t *testing.T) {
	ctx := context.Background()

	t.Run("creates profile and start date", func(t *testing.T) {
		store := kv.NewMemoryStore()
		svc := NewProfileService(store)

		profile, err := svc.Onboard(ctx, &dto.OnboardRequest{Name: "  Ahmad  "})
		require.NoError(t, err)
		assert.Equal(t, "Ahmad", profile.Name)

		start, ok := tracker.NewIndexer(store).StartDate(ctx)
		require.True(t, ok)
		assert.Equal(t, "2026-02-19", start)
	})

	t.Run("strips angle brackets from the name", func(t *testing.T) {
		svc := NewProfileService(kv.NewMemoryStore())

		profile, err := svc.Onboard(ctx, &dto.OnboardRequest{Name: "<b>Ahmad</b>"})
		require.NoError(t, err)
		assert.Equal(t, "bAhmad/b", profile.Name)
	})

	t.Run("name length limits", func(t *testing.T) {
		svc := NewProfileService(kv.NewMemoryStore())

		_, err := svc.Onboard(ctx, &dto.OnboardRequest{Name: "A"})
		assert.Error(t, err)

		_, err = svc.Onboard(ctx, &dto.OnboardRequest{Name: strings.Repeat("a", 31)})
		assert.Error(t, err)

		_, err = svc.Onboard(ctx, &dto.OnboardRequest{Name: strings.Repeat("a", 30)})
		assert.NoError(t, err)
	})

	t.Run("repeat onboarding keeps the start date", func(t *testing.T) {
		store := kv.NewMemoryStore()
		svc := NewProfileService(store)
		indexer := tracker.NewIndexer(store)
		require.NoError(t, indexer.SetStartDate(ctx, "2026-02-20"))

		_, err := svc.Onboard(ctx, &dto.OnboardRequest{Name: "Ahmad"})
		require.NoError(t, err)

		start, _ := indexer.StartDate(ctx)
		assert.Equal(t, "2026-02-20", start)
	})
}

func TestProfileGetUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("get before onboarding fails", func(t *testing.T) {
		svc := NewProfileService(kv.NewMemoryStore())
		_, err := svc.Get(ctx)
		assert.Error(t, err)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		svc := NewProfileService(kv.NewMemoryStore())
		_, err := svc.Onboard(ctx, &dto.OnboardRequest{Name: "Ahmad"})
		require.NoError(t, err)

		profile, err := svc.Update(ctx, &dto.UpdateProfileRequest{Bio: strPtr("Santri kilat")})
		require.NoError(t, err)
		assert.Equal(t, "Ahmad", profile.Name)
		assert.Equal(t, "Santri kilat", profile.Bio)

		profile, err = svc.Update(ctx, &dto.UpdateProfileRequest{Name: strPtr("Aisyah")})
		require.NoError(t, err)
		assert.Equal(t, "Aisyah", profile.Name)
		assert.Equal(t, "Santri kilat", profile.Bio)
	})

	t.Run("oversized photo rejected", func(t *testing.T) {
		svc := NewProfileService(kv.NewMemoryStore())
		_, err := svc.Onboard(ctx, &dto.OnboardRequest{Name: "Ahmad"})
		require.NoError(t, err)

		big := strings.Repeat("x", photoMaxLen+1)
		_, err = svc.Update(ctx, &dto.UpdateProfileRequest{Photo: &big})
		assert.Error(t, err)
	})

	t.Run("remove photo", func(t *testing.T) {
		svc := NewProfileService(kv.NewMemoryStore())
		_, err := svc.Onboard(ctx, &dto.OnboardRequest{Name: "Ahmad"})
		require.NoError(t, err)

		_, err = svc.Update(ctx, &dto.UpdateProfileRequest{Photo: strPtr("data:image/png;base64,AAAA")})
		require.NoError(t, err)

		profile, err := svc.RemovePhoto(ctx)
		require.NoError(t, err)
		assert.Empty(t, profile.Photo)
		assert.Equal(t, "Ahmad", profile.Name)
	})
}
