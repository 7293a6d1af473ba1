package commands

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// parseActor turns the raw actor fields every mutating command carries into
// a validated domain actor.
func parseActor(id kernel.UUID, role string, vendorID *kernel.UUID) (order.Actor, error) {
	actorRole, err := order.RoleFromString(role)
	if err != nil {
		return order.Actor{}, err
	}

	return order.NewActor(id, actorRole, vendorID)
}
