package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/outbound/repository/postgres/db"
)

const postColumns = `id, title, content, excerpt, thumbnail, view_count, created_at, updated_at`

type PostRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewPostRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	p.log.DebugContext(ctx, "Creating new post", slog.String("title", post.Title))

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"title":      post.Title,
		"content":    post.Content,
		"excerpt":    post.Excerpt,
		"thumbnail":  post.Thumbnail,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO posts (title, content, excerpt, thumbnail, view_count, created_at, updated_at)
		VALUES (@title, @content, @excerpt, @thumbnail, 0, @created_at, @updated_at)
		RETURNING ` + postColumns

	createdPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	p.observe("post_create", start, err == nil)
	if err != nil {
		p.log.ErrorContext(ctx, "Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.log.DebugContext(ctx, "Successfully created post", slog.Int64("id", createdPost.ID))
	return createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	p.log.DebugContext(ctx, "Getting post by ID", slog.Int64("id", id))

	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = @id`

	post, err := scanPost(p.db.QueryRow(ctx, query, args))
	p.observe("post_get_by_id", start, err == nil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.DebugContext(ctx, "Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.ErrorContext(ctx, "Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.log.DebugContext(ctx, "Successfully retrieved post by ID", slog.Int64("id", post.ID))
	return post, nil
}

// IncrementViewCount bumps the counter in a single statement so concurrent readers never lose an update.
func (p *PostRepository) IncrementViewCount(ctx context.Context, id int64) error {
	start := time.Now()

	args := pgx.NamedArgs{"id": id}
	query := `UPDATE posts SET view_count = view_count + 1 WHERE id = @id`

	result, err := p.db.Exec(ctx, query, args)
	p.observe("post_increment_view_count", start, err == nil)
	if err != nil {
		p.log.ErrorContext(ctx, "Error incrementing view count", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrPostNotFound
	}
	return nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	start := time.Now()
	p.log.DebugContext(ctx, "Updating post", slog.Int64("id", id))

	args := pgx.NamedArgs{
		"id":         id,
		"title":      update.Title,
		"content":    update.Content,
		"excerpt":    update.Excerpt,
		"thumbnail":  update.Thumbnail,
		"updated_at": pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	query := `
		UPDATE posts
		SET title = @title, content = @content, excerpt = @excerpt, thumbnail = @thumbnail, updated_at = @updated_at
		WHERE id = @id
		RETURNING ` + postColumns

	updatedPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	p.observe("post_update", start, err == nil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.DebugContext(ctx, "Post not found by id during Update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.ErrorContext(ctx, "Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return updatedPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	p.log.DebugContext(ctx, "Deleting post", slog.Int64("id", id))

	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`
	result, err := p.db.Exec(ctx, query, args)
	p.observe("post_delete", start, err == nil)
	if err != nil {
		p.log.ErrorContext(ctx, "Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		p.log.DebugContext(ctx, "Post not found by id during Delete", slog.Int64("id", id))
		return custom_errors.ErrPostNotFound
	}
	return nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.PostSummary, error) {
	start := time.Now()
	p.log.DebugContext(ctx, "Listing posts")

	args := pgx.NamedArgs{}
	query := `SELECT id, title, excerpt, thumbnail, created_at, view_count FROM posts
		ORDER BY created_at DESC, id DESC`

	if filters.Limit != nil {
		query += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		query += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.observe("post_list", start, false)
		p.log.ErrorContext(ctx, "Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts := make([]*model.PostSummary, 0)
	for rows.Next() {
		var post model.PostSummary
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Excerpt,
			&post.Thumbnail,
			&post.CreatedAt,
			&post.ViewCount,
		)
		if err != nil {
			p.observe("post_list", start, false)
			p.log.ErrorContext(ctx, "Error scanning post during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.observe("post_list", start, false)
		p.log.ErrorContext(ctx, "Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_list", start, true)
	p.log.DebugContext(ctx, "Successfully listed posts", slog.Int("count", len(posts)))
	return posts, nil
}

func (p *PostRepository) Count(ctx context.Context) (int, error) {
	start := time.Now()

	var total int
	err := p.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total)
	p.observe("post_count", start, err == nil)
	if err != nil {
		p.log.ErrorContext(ctx, "Error counting posts", slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}
	return total, nil
}

func (p *PostRepository) observe(queryType string, start time.Time, success bool) {
	p.metrics.IncrementDatabaseQueries(queryType, success)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var post model.Post
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Excerpt,
		&post.Thumbnail,
		&post.ViewCount,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
