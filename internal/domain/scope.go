package domain

import "github.com/google/uuid"

// Identity is the caller resolved from a bearer token. The zero value is anonymous.
type Identity struct {
	UserID uuid.UUID
	Role   UserRole
}

func (i Identity) Anonymous() bool {
	return i.UserID == uuid.Nil
}

func (i Identity) IsAdmin() bool {
	return !i.Anonymous() && i.Role == RoleAdmin
}

// Scope narrows data access for a request. It is computed once from the
// identity and handed to every store call.
type Scope struct {
	// StaffID pins every query to one staff member when set.
	StaffID *uuid.UUID
	Admin   bool
}

// ScopeFor derives the data scope of an identity. Staff only ever see their own rows.
func ScopeFor(id Identity) Scope {
	if id.IsAdmin() {
		return Scope{Admin: true}
	}
	staff := id.UserID
	return Scope{StaffID: &staff}
}

// StaffFilter resolves the staff filter for a list query. A pinned scope wins
// over whatever the caller asked for.
func (s Scope) StaffFilter(requested *uuid.UUID) *uuid.UUID {
	if s.StaffID != nil {
		return s.StaffID
	}
	return requested
}

// Owns reports whether the scope may see a row belonging to staffID.
func (s Scope) Owns(staffID uuid.UUID) bool {
	return s.StaffID == nil || *s.StaffID == staffID
}
