package middleware

import (
	"context"
	"errors"
	"net/http"

	"memo_api/internal/common"
	"memo_api/internal/common/security"
	"memo_api/internal/domain/model"
	"memo_api/internal/domain/repository"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const currentUserCtxKey contextKey = "currentUser"

// Authenticator resolves the bearer token to its user on every protected
// request: signature and expiry via the verifier, then subject lookup in the
// credential store, then the is_active check. An unknown subject is a 401
// like any bad token; an inactive account is a 400.
func Authenticator(jwt *security.JWT, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := jwtauth.TokenFromHeader(r)
			if tokenString == "" {
				common.RespondWithAuthError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			subject, err := jwt.Verify(tokenString)
			if err != nil {
				common.RespondWithAuthError(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}

			user, err := users.FindByUsername(r.Context(), subject)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					common.RespondWithAuthError(w, http.StatusUnauthorized, "Could not validate credentials")
					return
				}
				common.RespondWithError(w, http.StatusInternalServerError, "Failed to resolve user")
				return
			}

			if !user.IsActive {
				common.RespondWithError(w, http.StatusBadRequest, "Inactive user")
				return
			}

			ctx := context.WithValue(r.Context(), currentUserCtxKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the authenticated user stashed by Authenticator.
func CurrentUser(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(currentUserCtxKey).(*model.User)
	return user, ok
}
