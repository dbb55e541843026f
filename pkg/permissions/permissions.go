package permissions

// Role names understood by the session layer. Anything else resolves to no
// permissions at all.
const (
	RoleAdmin     = "admin"
	RoleOrganizer = "organizer"
	RoleReferee   = "referee"
	RoleSocio     = "socio"
	RoleFan       = "fan"
)

// roleTable is the static role -> permission-key mapping. There are no
// per-tenant overrides; order is fixed so issued tokens stay stable.
var roleTable = map[string][]string{
	RoleAdmin: {
		"teams:manage",
		"matches:manage",
		"news:publish",
		"plans:manage",
		"store:manage",
		"championships:manage",
		"store:purchase",
		"plans:subscribe",
	},
	RoleOrganizer: {
		"matches:manage",
		"championships:manage",
		"store:purchase",
		"plans:subscribe",
	},
	RoleReferee: {
		"matches:officiate",
		"store:purchase",
	},
	RoleSocio: {
		"store:purchase",
		"plans:subscribe",
		"streams:watch",
	},
	RoleFan: {
		"store:purchase",
		"plans:subscribe",
	},
}

// Resolve maps a role name to its fixed set of permission keys. Unknown
// roles fail closed with an empty set.
func Resolve(role string) []string {
	perms, ok := roleTable[role]
	if !ok {
		return []string{}
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// Has reports whether the resolved permission set for role contains key.
func Has(role, key string) bool {
	for _, p := range roleTable[role] {
		if p == key {
			return true
		}
	}
	return false
}
