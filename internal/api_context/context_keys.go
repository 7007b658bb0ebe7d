package api_context

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type ctxKey string

const (
	IDKey          ctxKey = "id"
	AuthSubjectKey ctxKey = "authSubject"
	AuthRoleKey    ctxKey = "authRole"
)

func IDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(IDKey).(uuid.UUID)
	return id, ok
}

func AuthSubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(AuthSubjectKey).(string)
	return sub, ok && sub != ""
}

func AuthRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(AuthRoleKey).(string)
	return role, ok
}

// WithAuth returns a copy of ctx carrying the authenticated subject and role.
func WithAuth(ctx context.Context, subject, role string) context.Context {
	ctx = context.WithValue(ctx, AuthSubjectKey, subject)
	return context.WithValue(ctx, AuthRoleKey, role)
}
