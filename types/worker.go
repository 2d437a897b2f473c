package types

import (
	"encoding/json"
	"sort"
)

// Role is a capability a worker holds.
type Role string

// Roles recognized by the worker directory.
const (
	RoleAnnotator Role = "annotator"
	RoleReviewer  Role = "reviewer"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is one of the recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAnnotator, RoleReviewer, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleSet is an explicit capability set. A worker may hold several roles
// simultaneously; membership is checked directly rather than inferred from
// the shape of the worker record.
type RoleSet map[Role]struct{}

// NewRoleSet creates a role set from the given roles.
func NewRoleSet(roles ...Role) RoleSet {
	rs := make(RoleSet, len(roles))
	for _, r := range roles {
		rs[r] = struct{}{}
	}

	return rs
}

// Has reports whether the set contains the role.
func (rs RoleSet) Has(role Role) bool {
	_, ok := rs[role]
	return ok
}

// Grant adds a role to the set.
func (rs RoleSet) Grant(role Role) {
	rs[role] = struct{}{}
}

// Revoke removes a role from the set. Revoking an absent role is a no-op.
func (rs RoleSet) Revoke(role Role) {
	delete(rs, role)
}

// Empty reports whether the worker holds no roles. Workers with an empty
// role set are eligible for pruning from the directory.
func (rs RoleSet) Empty() bool {
	return len(rs) == 0
}

// Clone returns an independent copy of the set.
func (rs RoleSet) Clone() RoleSet {
	out := make(RoleSet, len(rs))
	for r := range rs {
		out[r] = struct{}{}
	}

	return out
}

// Slice returns the roles in sorted order for deterministic output.
func (rs RoleSet) Slice() []Role {
	out := make([]Role, 0, len(rs))
	for r := range rs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// MarshalJSON serializes the set as a sorted array of role names.
func (rs RoleSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(rs.Slice())
}

// UnmarshalJSON deserializes an array of role names into the set.
func (rs *RoleSet) UnmarshalJSON(data []byte) error {
	var roles []Role
	if err := json.Unmarshal(data, &roles); err != nil {
		return err
	}

	*rs = NewRoleSet(roles...)

	return nil
}

// Worker represents a person capable of acting as annotator and/or reviewer.
type Worker struct {
	// ID uniquely identifies the worker.
	ID string `json:"id" bson:"_id"`

	// Name is the display name.
	Name string `json:"name" bson:"name"`

	// Email is the contact address.
	Email string `json:"email" bson:"email"`

	// Roles is the set of roles currently granted to the worker.
	Roles RoleSet `json:"roles" bson:"roles"`
}

// CanAnnotate reports whether the worker holds the annotator role.
func (w Worker) CanAnnotate() bool { return w.Roles.Has(RoleAnnotator) }

// CanReview reports whether the worker holds the reviewer role.
func (w Worker) CanReview() bool { return w.Roles.Has(RoleReviewer) }
