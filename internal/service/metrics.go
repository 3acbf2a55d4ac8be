package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// Auth event names used as the "event" label.
const (
	eventRegister       = "register"
	eventLogin          = "login"
	eventChangePassword = "change_password"
	eventResetRequest   = "reset_request"
	eventResetPassword  = "reset_password"
	eventTokenVerify    = "token_verify"
	eventAccessDenied   = "access_denied"
)

var authEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "inkloth",
	Subsystem: "auth",
	Name:      "events_total",
	Help:      "Authentication and authorization events by outcome",
}, []string{"event", "outcome"})

func recordAuthEvent(event string, err error) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}
	authEvents.WithLabelValues(event, outcome).Inc()
}
