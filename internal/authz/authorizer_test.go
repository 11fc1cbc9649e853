package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Nduhiu17/treasure-shop-api/internal/entities"
	"github.com/Nduhiu17/treasure-shop-api/pkg/constants"
)

func TestAuthorizer_IsAdmin(t *testing.T) {
	a := NewAuthorizer()

	assert.True(t, a.IsAdmin(entities.Actor{Roles: []string{constants.RoleAdmin}}))
	assert.True(t, a.IsAdmin(entities.Actor{Roles: []string{constants.RoleSuperAdmin}}))
	assert.False(t, a.IsAdmin(entities.Actor{Roles: []string{constants.RoleUser}}))
	assert.False(t, a.IsAdmin(entities.Actor{Roles: []string{constants.RoleWriter}}))
	assert.False(t, a.IsAdmin(entities.Actor{}))

	// roles are additive, never exclusive
	assert.True(t, a.IsAdmin(entities.Actor{Roles: []string{constants.RoleUser, constants.RoleAdmin}}))
}

func TestAuthorizer_IsAssignedWriter(t *testing.T) {
	a := NewAuthorizer()
	writerID := uuid.New()
	order := &entities.Order{WriterID: &writerID}

	assigned := entities.Actor{ID: writerID, Roles: []string{constants.RoleWriter}}
	assert.True(t, a.IsAssignedWriter(assigned, order))

	otherWriter := entities.Actor{ID: uuid.New(), Roles: []string{constants.RoleWriter}}
	assert.False(t, a.IsAssignedWriter(otherWriter, order))

	// matching id without the writer role is not enough
	sameIDNoRole := entities.Actor{ID: writerID, Roles: []string{constants.RoleUser}}
	assert.False(t, a.IsAssignedWriter(sameIDNoRole, order))

	unassigned := &entities.Order{}
	assert.False(t, a.IsAssignedWriter(assigned, unassigned))
}

func TestAuthorizer_IsOwner(t *testing.T) {
	a := NewAuthorizer()
	customerID := uuid.New()
	order := &entities.Order{CustomerID: customerID}

	assert.True(t, a.IsOwner(entities.Actor{ID: customerID}, order))
	assert.False(t, a.IsOwner(entities.Actor{ID: uuid.New()}, order))
}

func TestAuthorizer_CanView(t *testing.T) {
	a := NewAuthorizer()
	customerID := uuid.New()
	writerID := uuid.New()
	order := &entities.Order{CustomerID: customerID, WriterID: &writerID}

	assert.True(t, a.CanView(entities.Actor{ID: customerID, Roles: []string{constants.RoleUser}}, order))
	assert.True(t, a.CanView(entities.Actor{ID: writerID, Roles: []string{constants.RoleWriter}}, order))
	assert.True(t, a.CanView(entities.Actor{ID: uuid.New(), Roles: []string{constants.RoleAdmin}}, order))
	assert.False(t, a.CanView(entities.Actor{ID: uuid.New(), Roles: []string{constants.RoleUser}}, order))
	assert.False(t, a.CanView(entities.Actor{ID: uuid.New(), Roles: []string{constants.RoleWriter}}, order))
}
