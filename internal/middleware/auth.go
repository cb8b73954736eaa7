package middleware

import (
	"context"
	"net/http"
	"slices"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"github.com/google/uuid"
)

// Заголовки выставляет API gateway после проверки сессии
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type identityKey struct{}

func WithIdentity(ctx context.Context, id entities.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFromContext(ctx context.Context) (entities.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(entities.Identity)
	return id, ok
}

// Authenticate reads the requester identity set by the upstream gateway.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		role := entities.Role(r.Header.Get(HeaderUserRole))

		if err := uuid.Validate(userID); err != nil || !role.Valid() {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := WithIdentity(r.Context(), entities.Identity{ID: userID, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequireRole(roles ...entities.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !slices.Contains(roles, id.Role) {
				utils.WriteError(w, "access denied", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
