package api

import (
	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"
)

// errMissingUserContext fires when an authed route runs without the auth
// middleware having populated the context. That is a wiring bug, not a
// client error.
var errMissingUserContext = errs.New("user context missing")

// errBookingHidden covers non-owners probing other users' booking IDs.
var errBookingHidden = errs.New("booking not visible to caller")

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
