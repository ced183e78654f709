package post_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	post_service "blog-service/internal/domain/ports/input/post"
	output "blog-service/internal/domain/ports/output"
	post_repository "blog-service/internal/domain/ports/output/post"
)

const defaultViewCountTimeout = 5 * time.Second

type PostService struct {
	postRepo         post_repository.Repository
	log              output.Logger
	metrics          output.MetricsProvider
	viewCountTimeout time.Duration
	background       sync.WaitGroup
}

var _ post_service.Service = (*PostService)(nil)

func NewPostService(
	postRepo post_repository.Repository,
	log output.Logger,
	metrics output.MetricsProvider,
	viewCountTimeout time.Duration,
) *PostService {
	if viewCountTimeout <= 0 {
		viewCountTimeout = defaultViewCountTimeout
	}
	return &PostService{
		postRepo:         postRepo,
		log:              log,
		metrics:          metrics,
		viewCountTimeout: viewCountTimeout,
	}
}

func (s *PostService) ListPosts(ctx context.Context, page, limit int) ([]*model.PostSummary, *model.Pagination, error) {
	page, limit = model.NormalizePage(page, limit)

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to count posts", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("list", false)
		return nil, nil, custom_errors.ErrDatabaseQuery
	}

	pagination := model.NewPagination(page, limit, total)
	offset := pagination.Offset()
	posts, err := s.postRepo.List(ctx, model.PostFilters{Limit: &limit, Offset: &offset})
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to list posts",
			slog.Int("page", page),
			slog.Int("limit", limit),
			slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("list", false)
		return nil, nil, custom_errors.ErrDatabaseQuery
	}
	if posts == nil {
		posts = []*model.PostSummary{}
	}

	s.metrics.IncrementPostOperations("list", true)
	return posts, pagination, nil
}

// GetPostByID returns the stored post and schedules a view count increment in
// the background. The returned post carries the count as it was read.
func (s *PostService) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		s.metrics.IncrementPostOperations("get", false)
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.DebugContext(ctx, "Post not found", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.ErrorContext(ctx, "Failed to get post by id",
				slog.String("error", err.Error()),
				slog.Int64("id", id))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	s.incrementViewCount(ctx, id)

	s.metrics.IncrementPostOperations("get", true)
	return post, nil
}

// incrementViewCount outlives the request: ctx only contributes its values, not its deadline.
func (s *PostService) incrementViewCount(reqCtx context.Context, id int64) {
	s.background.Add(1)
	go func() {
		defer s.background.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(reqCtx), s.viewCountTimeout)
		defer cancel()

		if err := s.postRepo.IncrementViewCount(ctx, id); err != nil {
			s.metrics.IncrementViewCountUpdates(false)
			s.log.WarnContext(ctx, "Failed to increment view count",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			return
		}
		s.metrics.IncrementViewCountUpdates(true)
	}()
}

func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	if post == nil || isBlank(post.Title) || isBlank(post.Content) {
		s.log.DebugContext(ctx, "Rejected post without title or content")
		s.metrics.IncrementPostOperations("create", false)
		return nil, custom_errors.ErrPostValidation
	}

	createdPost, err := s.postRepo.Create(ctx, &model.Post{
		Title:     post.Title,
		Content:   post.Content,
		Excerpt:   post.Excerpt,
		Thumbnail: post.Thumbnail,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to create post", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("create", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.log.InfoContext(ctx, "Post created", slog.Int64("id", createdPost.ID))
	s.metrics.IncrementPostOperations("create", true)
	return createdPost, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id int64, post *model.UpdatePostDTO) (*model.Post, error) {
	if post == nil || isBlank(post.Title) || isBlank(post.Content) {
		s.log.DebugContext(ctx, "Rejected update without title or content", slog.Int64("id", id))
		s.metrics.IncrementPostOperations("update", false)
		return nil, custom_errors.ErrPostValidation
	}

	updatedPost, err := s.postRepo.Update(ctx, id, post)
	if err != nil {
		s.metrics.IncrementPostOperations("update", false)
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.DebugContext(ctx, "Post not found for update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.ErrorContext(ctx, "Failed to update post",
				slog.String("error", err.Error()),
				slog.Int64("id", id))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	s.log.InfoContext(ctx, "Post updated", slog.Int64("id", id))
	s.metrics.IncrementPostOperations("update", true)
	return updatedPost, nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		s.metrics.IncrementPostOperations("delete", false)
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.DebugContext(ctx, "Post not found for delete", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		default:
			s.log.ErrorContext(ctx, "Failed to delete post",
				slog.String("error", err.Error()),
				slog.Int64("id", id))
			return custom_errors.ErrDatabaseQuery
		}
	}

	s.log.InfoContext(ctx, "Post deleted", slog.Int64("id", id))
	s.metrics.IncrementPostOperations("delete", true)
	return nil
}

// Close waits for in-flight view count increments.
func (s *PostService) Close() {
	s.background.Wait()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
