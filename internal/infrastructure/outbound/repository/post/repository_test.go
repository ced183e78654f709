package post_repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	post_repository "blog-service/internal/domain/ports/output/post"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/repository/post/memory"
)

func setupPostTest(t *testing.T) (post_repository.Repository, func()) {
	log := logger.New("test")
	repo := memory.NewPostRepository(log)
	return repo, func() {}
}

func intPtr(v int) *int { return &v }

func TestPostRepository_Create(t *testing.T) {
	repo, cleanup := setupPostTest(t)
	defer cleanup()

	thumbnail := "https://example.com/cover.png"
	tests := []struct {
		name string
		post *model.Post
	}{
		{
			name: "with excerpt and thumbnail",
			post: &model.Post{Title: "Test Post", Content: "# Hello", Excerpt: "short", Thumbnail: &thumbnail},
		},
		{
			name: "without optional fields",
			post: &model.Post{Title: "Bare Post", Content: "body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Create(context.Background(), tt.post)

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotZero(t, got.ID)
			assert.Equal(t, tt.post.Title, got.Title)
			assert.Equal(t, tt.post.Content, got.Content)
			assert.Equal(t, tt.post.Excerpt, got.Excerpt)
			assert.Equal(t, tt.post.Thumbnail, got.Thumbnail)
			assert.Zero(t, got.ViewCount)
			assert.True(t, got.CreatedAt.Valid)
			assert.True(t, got.UpdatedAt.Valid)
			assert.Equal(t, got.CreatedAt, got.UpdatedAt)
		})
	}
}

func TestPostRepository_GetByID(t *testing.T) {
	repo, cleanup := setupPostTest(t)
	defer cleanup()

	created, err := repo.Create(context.Background(), &model.Post{Title: "Test Post", Content: "Test content"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      int64
		wantErr error
	}{
		{name: "successful get", id: created.ID},
		{name: "post not found", id: 999, wantErr: custom_errors.ErrPostNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByID(context.Background(), tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, created.ID, got.ID)
			assert.Equal(t, created.Title, got.Title)
			assert.Equal(t, created.Content, got.Content)
		})
	}
}

func TestPostRepository_IncrementViewCount(t *testing.T) {
	repo, cleanup := setupPostTest(t)
	defer cleanup()

	created, err := repo.Create(context.Background(), &model.Post{Title: "Counted", Content: "body"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementViewCount(context.Background(), created.ID))
	}

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ViewCount)

	assert.ErrorIs(t, repo.IncrementViewCount(context.Background(), 999), custom_errors.ErrPostNotFound)
}

func TestPostRepository_Update(t *testing.T) {
	repo, cleanup := setupPostTest(t)
	defer cleanup()

	thumbnail := "data:image/png;base64,AAAA"
	created, err := repo.Create(context.Background(), &model.Post{
		Title:     "Original",
		Content:   "Original content",
		Excerpt:   "Original excerpt",
		Thumbnail: &thumbnail,
	})
	require.NoError(t, err)

	t.Run("overwrites every mutable field", func(t *testing.T) {
		got, err := repo.Update(context.Background(), created.ID, &model.UpdatePostDTO{
			Title:   "Original",
			Content: "New content",
		})
		require.NoError(t, err)
		assert.Equal(t, "Original", got.Title)
		assert.Equal(t, "New content", got.Content)
		assert.Empty(t, got.Excerpt)
		assert.Nil(t, got.Thumbnail)
		assert.Equal(t, created.CreatedAt, got.CreatedAt)
	})

	t.Run("post not found", func(t *testing.T) {
		got, err := repo.Update(context.Background(), 999, &model.UpdatePostDTO{Title: "x", Content: "y"})
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		assert.Nil(t, got)
	})
}

func TestPostRepository_Delete(t *testing.T) {
	repo, cleanup := setupPostTest(t)
	defer cleanup()

	created, err := repo.Create(context.Background(), &model.Post{Title: "Doomed", Content: "body"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), created.ID))

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), created.ID), custom_errors.ErrPostNotFound)
}

func TestPostRepository_List(t *testing.T) {
	log := logger.New("test")
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	// every two posts share a timestamp so the id tie-break is exercised
	repo := memory.NewPostRepository(log).WithClock(func() time.Time {
		ts := base.Add(time.Duration(tick/2) * time.Second)
		tick++
		return ts
	})

	for i := 0; i < 5; i++ {
		_, err := repo.Create(context.Background(), &model.Post{Title: "Post", Content: "body"})
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		filters model.PostFilters
		wantIDs []int64
	}{
		{name: "no filters", filters: model.PostFilters{}, wantIDs: []int64{5, 4, 3, 2, 1}},
		{name: "first page", filters: model.PostFilters{Limit: intPtr(2), Offset: intPtr(0)}, wantIDs: []int64{5, 4}},
		{name: "last partial page", filters: model.PostFilters{Limit: intPtr(2), Offset: intPtr(4)}, wantIDs: []int64{1}},
		{name: "offset past end", filters: model.PostFilters{Limit: intPtr(2), Offset: intPtr(10)}, wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(context.Background(), tt.filters)
			require.NoError(t, err)

			ids := make([]int64, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, total)
}
