package user

import "context"

type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByIDs(ctx context.Context, ids []int64) ([]User, error)
}
