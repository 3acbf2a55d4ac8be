package adapter

import "errors"

var (
	// ErrEmptyRecipient is returned by a [Mailer] when the message has no
	// destination address.
	ErrEmptyRecipient = errors.New("email recipient is empty")

	// ErrSendingEmail wraps any transport failure of a [Mailer].
	ErrSendingEmail = errors.New("error sending email")

	// ErrUploadingImage wraps any failure of an [ImageUploader].
	ErrUploadingImage = errors.New("error uploading image")

	// ErrUnknownMailDriver is returned by [NewMailer] for an unsupported
	// driver name.
	ErrUnknownMailDriver = errors.New("unknown mail driver")
)

// Errors mapped from the status code returned by the HTTP mail relay.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("relay unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
