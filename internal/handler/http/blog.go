package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/inkloth/internal/service"
	"github.com/MKhiriev/inkloth/internal/store"
	"github.com/MKhiriev/inkloth/internal/validators"
	"github.com/MKhiriev/inkloth/models"
)

const (
	imageFormField = "image"

	// maxBlogFormBytes bounds the whole multipart body: the image plus the
	// text fields.
	maxBlogFormBytes = validators.MaxImageSize + 1<<20
)

// blogForm reads the title and body fields and the optional "image" file.
// The returned close func must be called once the image has been consumed.
func blogForm(w http.ResponseWriter, r *http.Request) (models.BlogRequest, *models.ImageFile, func(), error) {
	noop := func() {}

	r.Body = http.MaxBytesReader(w, r.Body, maxBlogFormBytes)
	if err := r.ParseMultipartForm(maxBlogFormBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.BlogRequest{}, nil, noop, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrImageTooLarge)
		}
		return models.BlogRequest{}, nil, noop, fmt.Errorf("%w: %w", ErrMalformedForm, err)
	}

	req := models.BlogRequest{
		Title: r.FormValue("title"),
		Body:  r.FormValue("body"),
	}

	file, header, err := r.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return req, nil, noop, nil
	}
	if err != nil {
		return models.BlogRequest{}, nil, noop, fmt.Errorf("%w: %w", ErrMalformedForm, err)
	}

	image := &models.ImageFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}
	return req, image, func() { _ = file.Close() }, nil
}

func blogErrorMessage(err error, id int64, action string) string {
	switch {
	case errors.Is(err, store.ErrBlogNotFound):
		return fmt.Sprintf("Blog not found with ID: %d", id)
	case errors.Is(err, service.ErrForbiddenOwnership):
		return fmt.Sprintf("You are not authorized to %s this blog", action)
	}
	return ""
}

func (h *Handler) createBlog(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrAbort(w, r)
	if !ok {
		return
	}

	req, image, closeImage, err := blogForm(w, r)
	if err != nil {
		respondError(w, r, err, "")
		return
	}
	defer closeImage()

	blog, err := h.services.BlogService.CreateBlog(r.Context(), identity, req, image)
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	respondJSON(w, r, models.BlogResponse{Success: true, Blog: blog}, http.StatusCreated)
}

func (h *Handler) updateBlog(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrAbort(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	req, image, closeImage, err := blogForm(w, r)
	if err != nil {
		respondError(w, r, err, "")
		return
	}
	defer closeImage()

	blog, err := h.services.BlogService.UpdateBlog(r.Context(), identity, id, req, image)
	if err != nil {
		respondError(w, r, err, blogErrorMessage(err, id, "update"))
		return
	}

	respondJSON(w, r, models.BlogResponse{Success: true, Blog: blog}, http.StatusOK)
}

func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrAbort(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	if err = h.services.BlogService.DeleteBlog(r.Context(), identity, id); err != nil {
		respondError(w, r, err, blogErrorMessage(err, id, "delete"))
		return
	}

	respondMessage(w, r, "Blog deleted successfully!", http.StatusOK)
}

func (h *Handler) listBlogs(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.BlogService.ListBlogs(r.Context(), pageFromQuery(r))
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	respondJSON(w, r, page, http.StatusOK)
}

func (h *Handler) getBlog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	blog, err := h.services.BlogService.GetBlog(r.Context(), id)
	if err != nil {
		respondError(w, r, err, blogErrorMessage(err, id, "view"))
		return
	}

	respondJSON(w, r, models.BlogResponse{Success: true, Blog: blog}, http.StatusOK)
}
