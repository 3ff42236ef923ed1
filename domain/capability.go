package domain

const CapabilityManage = "manage"

// Capabilities is computed by the authorization collaborator and passed through untouched.
type Capabilities struct {
	Manage bool            `json:"manage"`
	Named  map[string]bool `json:"named,omitempty"`
}

// Has reports whether the named capability is granted.
func (c Capabilities) Has(name string) bool {
	if name == CapabilityManage {
		return c.Manage
	}
	return c.Named[name]
}
