package domain

import "errors"

// ErrUnknownRole indicates a role string outside of the closed role set.
var ErrUnknownRole = errors.New("unknown role")

// Role is the closed set of user roles.
type Role string

// Supported roles.
const (
	RoleAdmin    Role = "ROLE_ADMIN"
	RoleCustomer Role = "ROLE_CUSTOMER"
)

// ParseRole maps a stored role string onto the closed role set.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleCustomer:
		return r, nil
	}

	return "", ErrUnknownRole
}

// NavItem is one entry of a role navigation table.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

var navigation = map[Role][]NavItem{
	RoleAdmin: {
		{Label: "Dashboard", Path: "/dashboard/admin"},
		{Label: "Accounts", Path: "/dashboard/admin/accounts"},
		{Label: "Cards", Path: "/dashboard/admin/cards"},
		{Label: "Transfers", Path: "/dashboard/admin/transfers"},
		{Label: "Loans", Path: "/dashboard/admin/loans"},
		{Label: "Currency & Gold", Path: "/dashboard/admin/currency-gold"},
	},
	RoleCustomer: {
		{Label: "Dashboard", Path: "/dashboard/customer"},
		{Label: "Accounts", Path: "/dashboard/customer/accounts"},
		{Label: "Cards", Path: "/dashboard/customer/cards"},
		{Label: "Transfers", Path: "/dashboard/customer/transfers"},
		{Label: "Loans", Path: "/dashboard/customer/loans"},
		{Label: "Currency & Gold", Path: "/dashboard/customer/currency-gold"},
	},
}

// Navigation returns a copy of the role's fixed navigation table.
func (r Role) Navigation() []NavItem {
	items := navigation[r]

	out := make([]NavItem, len(items))
	copy(out, items)

	return out
}

// Home returns the landing path of the role.
func (r Role) Home() string {
	if items := navigation[r]; len(items) > 0 {
		return items[0].Path
	}

	return "/login"
}
