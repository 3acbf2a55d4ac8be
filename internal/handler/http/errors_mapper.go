package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/inkloth/internal/crypto"
	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/service"
	"github.com/MKhiriev/inkloth/internal/store"
	"github.com/MKhiriev/inkloth/internal/utils"
	"github.com/MKhiriev/inkloth/internal/validators"
	"github.com/MKhiriev/inkloth/models"
)

// errorStatuses is ordered like errorMessages. Authentication and
// authorization sentinels come first: an error wrapping one of them must
// never surface as the status of a store error it also wraps.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{utils.ErrTokenIsExpired, http.StatusUnauthorized},
	{utils.ErrTokenIsInvalid, http.StatusUnauthorized},
	{service.ErrForbiddenRole, http.StatusForbidden},
	{service.ErrForbiddenOwnership, http.StatusForbidden},

	{ErrMissingToken, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidID, http.StatusBadRequest},
	{ErrMalformedForm, http.StatusBadRequest},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrPasswordMismatch, http.StatusBadRequest},
	{service.ErrOldPasswordIncorrect, http.StatusBadRequest},
	{service.ErrChallengeInvalid, http.StatusBadRequest},
	{service.ErrNotificationFailed, http.StatusInternalServerError},
	{service.ErrImageUploadFailed, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{crypto.ErrPasswordTooLong, http.StatusBadRequest},
	{crypto.ErrHashingFailed, http.StatusInternalServerError},

	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrBlogNotFound, http.StatusNotFound},
	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrUserNameAlreadyExists, http.StatusConflict},
	{store.ErrPasswordChanged, http.StatusConflict},
	{store.ErrNothingToUpdate, http.StatusBadRequest},
	{store.ErrConstraintViolation, http.StatusBadRequest},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, s := range errorStatuses {
		if errors.Is(err, s.target) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// errorMessages is ordered: the first matching entry wins, so the more
// specific sentinels come before the ones that wrap them.
var errorMessages = []struct {
	target  error
	message string
}{
	{ErrMissingToken, "Please Login to access this resource"},
	{ErrInvalidAuthorizationHeader, "Please Login to access this resource"},
	{ErrInvalidJSON, "Invalid JSON was passed"},
	{ErrInvalidID, "Resource not found. Invalid: id"},
	{ErrMalformedForm, "Invalid form data"},

	{utils.ErrTokenIsExpired, "Json Web Token is Expired, Try again"},
	{utils.ErrTokenIsInvalid, "Json Web Token is invalid, Try again"},
	{service.ErrUnauthenticated, "Please Login to access this resource"},
	{service.ErrInvalidCredentials, "Invalid Email or Password"},
	{service.ErrForbiddenOwnership, "You are not authorized to access this resource"},
	{service.ErrOldPasswordIncorrect, "Old Password is incorrect"},
	{service.ErrPasswordMismatch, "Password does not match"},
	{service.ErrChallengeInvalid, "Reset Password token is invalid or has been expired"},
	{service.ErrNotificationFailed, "Email could not be sent"},
	{service.ErrImageUploadFailed, "Image upload failed!"},

	{validators.ErrEmptyCredentials, "Please enter email and password"},
	{validators.ErrNoImage, "No file uploaded. Please upload an image."},
	{validators.ErrEmptyImage, "Empty file uploaded!"},
	{validators.ErrImageTooLarge, "Uploaded image is larger than 10MB"},
	{validators.ErrNotAnImage, "Please upload an image file"},
	{validators.ErrEmptyTitle, "Please Enter Blog Title"},
	{validators.ErrEmptyBody, "Please Enter Blog Content"},
	{validators.ErrEmptyFirstName, "Please Enter Your First Name"},
	{validators.ErrEmptyLastName, "Please Enter Your Last Name"},
	{validators.ErrEmptyUserName, "Please Enter Your User Name"},
	{validators.ErrInvalidEmail, "Please Enter a valid Email"},
	{validators.ErrEmptyPassword, "Please Enter Your Password"},
	{validators.ErrPasswordTooShort, "Password should be greater than 8 characters"},
	{validators.ErrPasswordTooLong, "Password should not exceed 72 bytes"},
	{crypto.ErrPasswordTooLong, "Password should not exceed 72 bytes"},
	{validators.ErrFieldTooLong, "Name cannot exceed 30 characters"},
	{validators.ErrInvalidRole, "Role must be either User or Admin"},
	{validators.ErrNoFieldsToUpdate, "Nothing to update"},

	{store.ErrEmailAlreadyExists, "Duplicate email Entered"},
	{store.ErrUserNameAlreadyExists, "Duplicate userName Entered"},
	{store.ErrPasswordChanged, "Password was changed meanwhile, Try again"},
	{store.ErrNothingToUpdate, "Nothing to update"},
	{store.ErrConstraintViolation, "Invalid data provided"},
	{store.ErrUserNotFound, "User not found"},
	{store.ErrBlogNotFound, "Blog not found"},
}

func messageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return http.StatusText(statusFromError(err))
}

// respondError writes the {success:false, message} envelope for err.
// A non-empty message replaces the one from the table.
func respondError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := statusFromError(err)
	if message == "" {
		message = messageFromError(err)
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	respondJSON(w, r, models.MessageResponse{Success: false, Message: message}, status)
}

func respondMessage(w http.ResponseWriter, r *http.Request, message string, status int) {
	respondJSON(w, r, models.MessageResponse{Success: true, Message: message}, status)
}

func respondJSON(w http.ResponseWriter, r *http.Request, body any, status int) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}
