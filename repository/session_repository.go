package repository

import (
	"context"

	"compound-interest/domain"
)

type SessionRepository interface {
	Get(ctx context.Context, id string) (domain.Session, bool, error)
	Save(ctx context.Context, session domain.Session) error
}
