package format

import "github.com/arloliu/edgebreaker/errs"

// AttributeRole is a closed enumeration of the semantic roles an attribute
// can play in the mesh: Position, Normal, Color, TextureCoordinate, Tangent,
// Material, Joint, Weight, Connectivity, Custom. Each role has a stable
// identifier in [0, 9] for on-wire tagging and a minimum dependency set of
// other roles that must precede it in the attribute DAG.
type AttributeRole uint8

const (
	Position AttributeRole = iota
	Normal
	Color
	TextureCoordinate
	Tangent
	Material
	Joint
	Weight
	Connectivity
	Custom
)

// ID returns the stable on-wire identifier for this role.
func (r AttributeRole) ID() uint8 {
	return uint8(r)
}

// AttributeRoleFromID reconstructs an AttributeRole from its on-wire
// identifier. Returns errs.ErrUnknownAttributeRoleID for any id outside
// [0, 9].
func AttributeRoleFromID(id uint8) (AttributeRole, error) {
	if id > uint8(Custom) {
		return 0, errs.ErrUnknownAttributeRoleID
	}

	return AttributeRole(id), nil
}

// MinimumDependency returns the set of roles that must appear among an
// attribute's parents before an attribute of this role can be added to a
// Collection.
//
//   - Position, Color, Tangent, Material, Joint, Weight, Connectivity, Custom: none
//   - Normal: Connectivity
//   - TextureCoordinate: Position, Connectivity
func (r AttributeRole) MinimumDependency() []AttributeRole {
	switch r {
	case Normal:
		return []AttributeRole{Connectivity}
	case TextureCoordinate:
		return []AttributeRole{Position, Connectivity}
	default:
		return nil
	}
}

func (r AttributeRole) String() string {
	switch r {
	case Position:
		return "Position"
	case Normal:
		return "Normal"
	case Color:
		return "Color"
	case TextureCoordinate:
		return "TextureCoordinate"
	case Tangent:
		return "Tangent"
	case Material:
		return "Material"
	case Joint:
		return "Joint"
	case Weight:
		return "Weight"
	case Connectivity:
		return "Connectivity"
	case Custom:
		return "Custom"
	default:
		return "Unknown"
	}
}
