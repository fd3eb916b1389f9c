// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/odemir/networth-tracker-backend/internal/api/response"
	"github.com/odemir/networth-tracker-backend/internal/apperrors"
	"github.com/odemir/networth-tracker-backend/internal/validation"
)

// UserIDHeader carries the authenticated user's ID, injected by the
// identity-aware proxy fronting this API.
const UserIDHeader = "X-User-ID"

// RequireUserID rejects requests that carry no valid user identity.
// Handlers read the header via UserID and pass the value explicitly
// into every service call; no request-scoped user state is kept.
func RequireUserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(UserIDHeader)

		if userID == "" {
			response.RespondError(w, http.StatusUnauthorized, apperrors.ErrMissingUserID.Error(), "")
			return
		}

		if err := validation.ValidateUUID(userID); err != nil {
			response.RespondError(w, http.StatusUnauthorized, apperrors.ErrInvalidUUID.Error(), err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// UserID extracts the validated user ID from a request.
func UserID(r *http.Request) string {
	return r.Header.Get(UserIDHeader)
}
