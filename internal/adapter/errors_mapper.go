package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var relayStatusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnprocessableEntity: ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrBadGateway,
	http.StatusGatewayTimeout:      ErrBadGateway,
}

// relayError classifies a mail relay response. 2xx is success; anything
// else keeps the relay's own explanation from the body.
func relayError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	reason := strings.TrimSpace(resp.String())
	if reason == "" {
		reason = http.StatusText(status)
	}

	if sentinel, ok := relayStatusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, reason)
	}
	return fmt.Errorf("mail relay answered %d: %s", status, reason)
}
