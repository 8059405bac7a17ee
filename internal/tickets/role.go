package tickets

import (
	"net/http"

	"duka/internal/shared/errs"
	"duka/internal/shared/schema"
)

// Role is the session role a ticket is issued under
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOperator Role = "operator"
	RoleTicketer Role = "ticketer"

	roleAdmin = "admin"
)

// ErrAdminForbidden is returned for the admin session role
var ErrAdminForbidden = &errs.Error{
	Status:  http.StatusBadRequest,
	Message: "Sorry...you cant create a ticket :(",
}

// UnknownRoleError is returned for any role outside the closed set
type UnknownRoleError struct {
	Role string
}

func (e *UnknownRoleError) Error() string {
	return "Unknown role: " + e.Role
}

func (e *UnknownRoleError) StatusCode() int {
	return http.StatusBadRequest
}

// ParseRole maps x-hasura-role onto a Role
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCustomer, RoleOperator, RoleTicketer:
		return r, nil
	}
	if s == roleAdmin {
		return "", ErrAdminForbidden
	}
	return "", &UnknownRoleError{Role: s}
}

// Mutation is the insert_ticket_one document for the role
func (r Role) Mutation() string {
	switch r {
	case RoleOperator:
		return schema.CreateTicketByOperator
	case RoleTicketer:
		return schema.CreateTicketByTicketer
	default:
		return schema.CreateTicketByCustomer
	}
}

// OwnerField is the ticket column that records the issuing user
func (r Role) OwnerField() string {
	return string(r)
}
