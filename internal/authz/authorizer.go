package authz

import (
	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	"github.com/Nduhiu17/treasure-shop-api/pkg/constants"
)

// Authorizer is the single policy component deciding whether an actor may
// touch an order. Pure predicates over the actor's full role set and the
// actor's relationship to the order; no storage, no side effects.
type Authorizer struct{}

func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// IsAdmin reports whether the actor holds admin or super_admin. Roles are
// additive, so a writer who is also an admin passes both checks.
func (a *Authorizer) IsAdmin(actor entities.Actor) bool {
	return actor.HasRole(constants.RoleAdmin) || actor.HasRole(constants.RoleSuperAdmin)
}

// IsAssignedWriter reports whether the actor is a writer and is the
// writer currently assigned to the order.
func (a *Authorizer) IsAssignedWriter(actor entities.Actor, order *entities.Order) bool {
	if !actor.HasRole(constants.RoleWriter) {
		return false
	}
	return order.WriterID != nil && *order.WriterID == actor.ID
}

// IsOwner reports whether the actor is the customer who created the order.
func (a *Authorizer) IsOwner(actor entities.Actor, order *entities.Order) bool {
	return order.CustomerID == actor.ID
}

// CanView gates read access: admins see everything, writers see orders
// assigned to them, customers see their own.
func (a *Authorizer) CanView(actor entities.Actor, order *entities.Order) bool {
	return a.IsAdmin(actor) || a.IsOwner(actor, order) || a.IsAssignedWriter(actor, order)
}
