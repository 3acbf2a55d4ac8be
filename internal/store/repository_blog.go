package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/models"
)

type blogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBlogRepository constructs a [BlogRepository] backed by db.
func NewBlogRepository(db *DB, logger *logger.Logger) BlogRepository {
	logger.Debug().Msg("creating blog repository")
	return &blogRepository{
		db:     db,
		logger: logger,
	}
}

func scanBlog(row rowScanner) (models.Blog, error) {
	var (
		blog   models.Blog
		author models.Author
		image  models.Image
	)
	err := row.Scan(
		&blog.BlogID,
		&blog.Title,
		&blog.Body,
		&image.PublicID,
		&image.URL,
		&blog.UserID,
		&blog.CreatedAt,
		&author.FirstName,
		&author.LastName,
		&author.UserName,
	)
	if err != nil {
		return models.Blog{}, err
	}

	author.UserID = blog.UserID
	blog.User = &author
	blog.Image = []models.Image{}
	if image.URL != "" {
		blog.Image = append(blog.Image, image)
	}

	return blog, nil
}

func (r *blogRepository) queryBlog(ctx context.Context, funcName string, query string, args ...any) (models.Blog, error) {
	log := logger.FromContext(ctx)

	blog, err := scanBlog(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return blog, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Blog{}, ErrBlogNotFound
	}

	if domainErr := constraintError(err); domainErr != nil {
		return models.Blog{}, domainErr
	}

	log.Err(err).Str("func", funcName).Str("pg_code", postgresError(err)).Msg("error querying blog")
	return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func (r *blogRepository) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	var image models.Image
	if len(blog.Image) > 0 {
		image = blog.Image[0]
	}

	return r.queryBlog(ctx, "*blogRepository.CreateBlog", createBlog,
		blog.Title,
		blog.Body,
		image.PublicID,
		image.URL,
		blog.UserID,
	)
}

func (r *blogRepository) FindBlogByID(ctx context.Context, blogID int64) (models.Blog, error) {
	return r.queryBlog(ctx, "*blogRepository.FindBlogByID", findBlogByID, blogID)
}

func (r *blogRepository) ListBlogs(ctx context.Context, page models.Page) ([]models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBlogsQuery(page)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	blogs := []models.Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		blogs = append(blogs, blog)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return blogs, nil
}

func (r *blogRepository) CountBlogs(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "*blogRepository.CountBlogs", countBlogs)
}

func (r *blogRepository) UpdateBlog(ctx context.Context, blogID, ownerID int64, update models.BlogUpdate) (models.Blog, error) {
	query, args, err := buildUpdateBlogQuery(blogID, ownerID, update)
	if err != nil {
		return models.Blog{}, err
	}

	return r.queryBlog(ctx, "*blogRepository.UpdateBlog", query, args...)
}

func (r *blogRepository) DeleteBlog(ctx context.Context, blogID, ownerID int64) error {
	affected, err := exec(ctx, r.db, "*blogRepository.DeleteBlog", deleteBlog, blogID, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBlogNotFound
	}

	return nil
}
