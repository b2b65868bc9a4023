package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrderByUIDQueryIsNotConstructed = errors.New(
	"GetOrderByUIDQuery must be created via NewGetOrderByUIDQuery constructor",
)

// GetOrderByUIDQuery fetches one order by its public identifier.
type GetOrderByUIDQuery struct {
	uid kernel.UID

	guard guard.ConstructorGuard
}

// NewGetOrderByUIDQuery parses uid; malformed identifiers are rejected before any lookup.
func NewGetOrderByUIDQuery(uid string) (GetOrderByUIDQuery, error) {
	parsed, err := kernel.UIDFromString(uid)
	if err != nil {
		return GetOrderByUIDQuery{}, err
	}

	return GetOrderByUIDQuery{uid: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderByUIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByUIDQueryIsNotConstructed)
}

func (q GetOrderByUIDQuery) UID() kernel.UID {
	return q.uid
}
