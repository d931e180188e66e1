package middleware

import (
	"context"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
	"github.com/sharankona/CompanyPortal-sub000/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden unless the caller has the admin
// role. Handlers call it before decoding a body; it is not an http
// middleware.
func RequireAdmin(ctx context.Context) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
