package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/inkloth/internal/adapter"
	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/store"
	"github.com/MKhiriev/inkloth/internal/validators"
	"github.com/MKhiriev/inkloth/models"
)

// DefaultBlogsLimit is the page size of the blog listing.
const DefaultBlogsLimit = 10

// blogService keeps blogs and their images. Every mutation is scoped to the
// owner: the guard is consulted first and the store write repeats the owner
// condition.
type blogService struct {
	blogRepository store.BlogRepository
	uploader       adapter.ImageUploader
	guard          AccessGuard
	validator      validators.Validator

	logger *logger.Logger
}

func NewBlogService(
	blogRepository store.BlogRepository,
	uploader adapter.ImageUploader,
	guard AccessGuard,
	validator validators.Validator,
	logger *logger.Logger,
) BlogService {
	return &blogService{
		blogRepository: blogRepository,
		uploader:       uploader,
		guard:          guard,
		validator:      validator,
		logger:         logger,
	}
}

func (s *blogService) CreateBlog(ctx context.Context, identity models.Identity, req models.BlogRequest, image *models.ImageFile) (models.Blog, error) {
	log := logger.FromContext(ctx).With().Str("func", "*blogService.CreateBlog").Logger()

	if err := s.validator.Validate(ctx, image); err != nil {
		return models.Blog{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Blog{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	uploaded, err := s.upload(ctx, image)
	if err != nil {
		return models.Blog{}, err
	}

	blog, err := s.blogRepository.CreateBlog(ctx, models.Blog{
		Title:  strings.TrimSpace(req.Title),
		Body:   req.Body,
		Image:  []models.Image{uploaded},
		UserID: identity.UserID,
	})
	if err != nil {
		log.Err(err).Int64("user_id", identity.UserID).Msg("blog creation failed")
		return models.Blog{}, err
	}

	log.Info().Int64("blog_id", blog.BlogID).Int64("user_id", identity.UserID).Msg("blog created")
	return blog, nil
}

func (s *blogService) GetBlog(ctx context.Context, blogID int64) (models.Blog, error) {
	return s.blogRepository.FindBlogByID(ctx, blogID)
}

// ListBlogs returns one page of blogs, newest first.
func (s *blogService) ListBlogs(ctx context.Context, page models.Page) (models.BlogsPage, error) {
	log := logger.FromContext(ctx).With().Str("func", "*blogService.ListBlogs").Logger()

	page = normalizePage(page, DefaultBlogsLimit)

	total, err := s.blogRepository.CountBlogs(ctx)
	if err != nil {
		log.Err(err).Msg("counting blogs failed")
		return models.BlogsPage{}, err
	}

	blogs, err := s.blogRepository.ListBlogs(ctx, page)
	if err != nil {
		log.Err(err).Msg("listing blogs failed")
		return models.BlogsPage{}, err
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}

	return models.BlogsPage{
		Success:     true,
		Blogs:       blogs,
		TotalBlogs:  total,
		TotalPages:  page.TotalPages(total),
		CurrentPage: page.Number,
	}, nil
}

func (s *blogService) UpdateBlog(ctx context.Context, identity models.Identity, blogID int64, req models.BlogRequest, image *models.ImageFile) (models.Blog, error) {
	log := logger.FromContext(ctx).With().Str("func", "*blogService.UpdateBlog").Logger()

	blog, err := s.blogRepository.FindBlogByID(ctx, blogID)
	if err != nil {
		return models.Blog{}, err
	}

	if err = s.guard.AuthorizeOwnership(identity, blog.UserID); err != nil {
		log.Warn().Int64("blog_id", blogID).Int64("user_id", identity.UserID).Msg("blog update denied")
		return models.Blog{}, err
	}

	var update models.BlogUpdate
	if title := strings.TrimSpace(req.Title); title != "" && title != blog.Title {
		update.Title = &title
	}
	if strings.TrimSpace(req.Body) != "" && req.Body != blog.Body {
		update.Body = &req.Body
	}
	if image != nil {
		if err = s.validator.Validate(ctx, image); err != nil {
			return models.Blog{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}

		uploaded, uploadErr := s.upload(ctx, image)
		if uploadErr != nil {
			return models.Blog{}, uploadErr
		}
		update.Image = &uploaded
	}

	if update.Empty() {
		return blog, nil
	}

	updated, err := s.blogRepository.UpdateBlog(ctx, blogID, identity.UserID, update)
	if err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("blog update failed")
		return models.Blog{}, err
	}

	return updated, nil
}

func (s *blogService) DeleteBlog(ctx context.Context, identity models.Identity, blogID int64) error {
	log := logger.FromContext(ctx).With().Str("func", "*blogService.DeleteBlog").Logger()

	blog, err := s.blogRepository.FindBlogByID(ctx, blogID)
	if err != nil {
		return err
	}

	if err = s.guard.AuthorizeOwnership(identity, blog.UserID); err != nil {
		log.Warn().Int64("blog_id", blogID).Int64("user_id", identity.UserID).Msg("blog deletion denied")
		return err
	}

	if err = s.blogRepository.DeleteBlog(ctx, blogID, identity.UserID); err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("blog deletion failed")
		return err
	}

	return nil
}

func (s *blogService) upload(ctx context.Context, image *models.ImageFile) (models.Image, error) {
	uploaded, err := s.uploader.Upload(ctx, *image)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blogService.upload").Str("file", image.Name).Msg("image upload failed")
		return models.Image{}, fmt.Errorf("%w: %w", ErrImageUploadFailed, err)
	}

	return uploaded, nil
}
