package repository

import "context"

// DB reports whether the datastore is reachable. *pgxpool.Pool satisfies it.
type DB interface {
	Ping(ctx context.Context) error
}
