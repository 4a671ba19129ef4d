package account

type Role string

const (
	RoleCustomer        Role = "CUSTOMER"
	RoleServiceProvider Role = "SERVICE_PROVIDER"
)

func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleCustomer, RoleServiceProvider:
		return r, true
	}
	return "", false
}
