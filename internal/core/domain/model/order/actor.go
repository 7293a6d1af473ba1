package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ActorRole classifies who is requesting a state change. The upstream
// identity gateway resolves tokens to a role before any mutating call
// reaches the domain.
type ActorRole int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown ActorRole = iota

	// RoleCustomer is the buyer who placed the order.
	RoleCustomer

	// RoleVendor is a seller fulfilling one sub-order of the order.
	RoleVendor

	// RoleAdmin is marketplace staff with access to every scope.
	RoleAdmin

	// RoleSystem marks automatic transitions driven by carrier events.
	RoleSystem
)

// getRoleStrings returns string representations for all ActorRole values.
func getRoleStrings() map[ActorRole]string {
	return map[ActorRole]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleVendor:   "vendor",
		RoleAdmin:    "admin",
		RoleSystem:   "system",
	}
}

// RoleFromString parses a wire-format role name ("customer", "vendor", ...).
func RoleFromString(s string) (ActorRole, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid actor role", s))
}

// String returns the lowercase wire name of the role.
func (r ActorRole) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the role is one of the defined roles.
func (r ActorRole) Validate() error {
	if r != RoleCustomer && r != RoleVendor && r != RoleAdmin && r != RoleSystem {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid actor role", r))
	}
	return nil
}

// ErrVendorIDIsRequired is returned when constructing a vendor actor without
// a vendor identity.
var ErrVendorIDIsRequired = errors.New("vendor actor requires a vendor ID")

// Actor identifies who performs a mutation: a resolved identity plus role,
// and for vendors the vendor they act on behalf of. Actors are resolved by
// the external identity collaborator; the domain only consumes them.
//
// Example:
//
//	actor, err := order.NewActor(staffID, order.RoleAdmin, nil)
//	if err != nil {
//	    return err
//	}
type Actor struct {
	id       kernel.UUID
	role     ActorRole
	vendorID *kernel.UUID
}

// NewActor creates an Actor. Vendor actors must carry the vendorID they act
// for; other roles must not.
func NewActor(id kernel.UUID, role ActorRole, vendorID *kernel.UUID) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	if role == RoleVendor {
		if vendorID == nil {
			return Actor{}, ErrVendorIDIsRequired
		}
		if err := vendorID.Validate(); err != nil {
			return Actor{}, err
		}
	} else {
		vendorID = nil
	}

	return Actor{id: id, role: role, vendorID: vendorID}, nil
}

// SystemActor returns the synthetic actor used for carrier-driven automatic
// transitions. Its identity is minted once per process start.
func SystemActor() Actor {
	return Actor{id: systemActorID, role: RoleSystem}
}

var systemActorID = kernel.NewUUID()

// ID returns the resolved identity of the actor.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() ActorRole {
	return a.role
}

// VendorID returns the vendor the actor acts for, or nil for non-vendor roles.
func (a Actor) VendorID() *kernel.UUID {
	return a.vendorID
}

// ActsForVendor reports whether the actor is a vendor acting for the given
// vendor identity.
func (a Actor) ActsForVendor(vendorID kernel.UUID) bool {
	return a.role == RoleVendor && a.vendorID != nil && a.vendorID.IsEqual(vendorID)
}

// Validate returns an error for zero-value actors.
func (a Actor) Validate() error {
	return errors.Join(a.id.Validate(), a.role.Validate())
}
