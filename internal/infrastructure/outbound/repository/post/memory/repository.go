package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type PostRepository struct {
	log    ports.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
	now    func() time.Time
}

func NewPostRepository(log ports.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
		now:    time.Now,
	}
}

// WithClock replaces the time source, used by tests that need colliding or ordered timestamps.
func (p *PostRepository) WithClock(now func() time.Time) *PostRepository {
	p.now = now
	return p
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := pgtype.Timestamptz{Time: p.now(), Valid: true}

	newPost := &model.Post{
		ID:        p.nextID,
		Title:     post.Title,
		Content:   post.Content,
		Excerpt:   post.Excerpt,
		Thumbnail: post.Thumbnail,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) IncrementViewCount(ctx context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return custom_errors.ErrPostNotFound
	}
	post.ViewCount++
	return nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	post.Title = update.Title
	post.Content = update.Content
	post.Excerpt = update.Excerpt
	post.Thumbnail = update.Thumbnail
	post.UpdatedAt = pgtype.Timestamptz{Time: p.now(), Valid: true}

	result := *post
	return &result, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}

	delete(p.posts, id)
	return nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.PostSummary, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	posts := make([]*model.PostSummary, 0, len(p.posts))
	for _, post := range p.posts {
		posts = append(posts, post.Summary())
	}

	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Time.Equal(posts[j].CreatedAt.Time) {
			return posts[i].CreatedAt.Time.After(posts[j].CreatedAt.Time)
		}
		return posts[i].ID > posts[j].ID
	})

	if filters.Offset != nil {
		offset := max(*filters.Offset, 0)
		if offset >= len(posts) {
			return []*model.PostSummary{}, nil
		}
		posts = posts[offset:]
	}

	if filters.Limit != nil {
		limit := *filters.Limit
		if limit < len(posts) {
			posts = posts[:limit]
		}
	}

	return posts, nil
}

func (p *PostRepository) Count(ctx context.Context) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.posts), nil
}
