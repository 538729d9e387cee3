// Package entities contains core business entities.
package entities

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Role enumerates job titles a team member can hold.
type Role string

const (
	RoleProjectManager    Role = "Project Manager"
	RoleFrontendDeveloper Role = "Frontend Developer"
	RoleBackendDeveloper  Role = "Backend Developer"
	RoleMobileDeveloper   Role = "Mobile Developer"
	RoleDataAnalyst       Role = "Data Analyst"
	RoleDesigner          Role = "UI/UX Designer"
	RoleDevOpsEngineer    Role = "DevOps Engineer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleProjectManager, RoleFrontendDeveloper, RoleBackendDeveloper,
		RoleMobileDeveloper, RoleDataAnalyst, RoleDesigner, RoleDevOpsEngineer:
		return true
	}
	return false
}

const maxPhoneLength = 32

// TeamMember is a person tasks can be assigned to.
type TeamMember struct {
	ID     int64
	Name   string
	Role   Role
	Avatar string
	Email  string
	Phone  string
}

// TeamMemberInput carries user supplied fields for a new team member.
type TeamMemberInput struct {
	Name  string
	Role  Role
	Email string
	Phone string
}

// Normalize trims text fields in place.
func (in *TeamMemberInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
}

// Validate checks the name, role and optional contact fields.
func (in TeamMemberInput) Validate() error {
	c := newFieldChecker("team member")
	checkMemberName(c, in.Name)
	c.check(in.Role.Valid(), "role", "is not a known role")
	if in.Email != "" {
		_, err := mail.ParseAddress(in.Email)
		c.check(err == nil, "email", "is not a valid address")
	}
	c.check(utf8.RuneCountInString(in.Phone) <= maxPhoneLength, "phone", "is too long")
	return c.err()
}

// ValidateMemberName checks a name used for renaming a member.
func ValidateMemberName(name string) error {
	c := newFieldChecker("team member")
	checkMemberName(c, name)
	return c.err()
}

func checkMemberName(c *fieldChecker, name string) {
	c.check(name != "", "name", "is required")
	c.check(utf8.RuneCountInString(name) <= MaxNameLength, "name", "is too long")
}

// Initials builds an avatar from the first letter of every word in name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}
