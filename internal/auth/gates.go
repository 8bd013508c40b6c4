package auth

// Gate is a named permission threshold. A session passes when its
// level meets MinLevel, or when ExtraRole is non-empty and the profile
// holds that role.
type Gate struct {
	Name      string `json:"name"`
	MinLevel  int    `json:"min_level"`
	ExtraRole string `json:"extra_role,omitempty"`
}

// RoleGAM is the registry-keeper role that bypasses the document
// registry level requirement.
const RoleGAM = "GAM"

// Permission gates for the portal's protected surfaces.
var (
	// GatePersonnel guards personnel management.
	GatePersonnel = Gate{Name: "personnel", MinLevel: 11}
	// GateMagistratura guards the case, assignment, and workload screens.
	GateMagistratura = Gate{Name: "magistratura", MinLevel: 8}
	// GateDocuments guards the document registry.
	GateDocuments = Gate{Name: "documents", MinLevel: 8, ExtraRole: RoleGAM}
)

// AllGates lists every defined gate, in the order clients render them.
func AllGates() []Gate {
	return []Gate{GatePersonnel, GateMagistratura, GateDocuments}
}
