package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/inkloth/models"
)

const (
	FieldTitle = "title"
	FieldBody  = "body"
)

// MaxImageSize is the largest blog image accepted, in bytes.
const MaxImageSize = 10 << 20

// BlogValidator implements [Validator] for blog forms and their images.
type BlogValidator struct{}

func NewBlogValidator() Validator {
	return &BlogValidator{}
}

// Validate accepts models.BlogRequest and a *models.ImageFile. A nil image
// means the form carried no file.
func (v *BlogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BlogRequest:
		return v.validateBlog(value, fields...)
	case *models.BlogRequest:
		return v.validateBlog(*value, fields...)
	case *models.ImageFile:
		return validateImage(value)
	case models.ImageFile:
		return validateImage(&value)
	default:
		return ErrUnsupportedType
	}
}

func (v *BlogValidator) validateBlog(request models.BlogRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(request.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldBody:
			if strings.TrimSpace(request.Body) == "" {
				return ErrEmptyBody
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateImage(image *models.ImageFile) error {
	switch {
	case image == nil || image.Content == nil:
		return ErrNoImage
	case image.Size == 0:
		return ErrEmptyImage
	case image.Size > MaxImageSize:
		return ErrImageTooLarge
	case !strings.HasPrefix(image.ContentType, "image/"):
		return ErrNotAnImage
	}
	return nil
}
