package model

// Normatively recognized property keys. These are ordinary keys in an
// Element's props map; the map tolerates any key, but these are read by
// graph and resolve operations (visibility filtering, namespace detection,
// reference resolution).
const (
	PropVisibility      = "visibility"
	PropIsNamespace     = "isNamespace"
	PropIsAbstract      = "isAbstract"
	PropIsVariation     = "isVariation"
	PropIsReadOnly      = "isReadOnly"
	PropIsDerived       = "isDerived"
	PropIsEnd           = "isEnd"
	PropDirection       = "direction"
	PropMultiplicityLo  = "multiplicityLower"
	PropMultiplicityHi  = "multiplicityUpper"
	PropValueExpression = "valueExpression"
	PropMemberName      = "memberName"
)

// Visibility is the value domain of the "visibility" property.
type Visibility string

const (
	Public    Visibility = "public"
	Private   Visibility = "private"
	Protected Visibility = "protected"
)

// Direction is the value domain of the "direction" property on directed
// features (ports, parameters).
type Direction string

const (
	DirectionIn    Direction = "in"
	DirectionOut   Direction = "out"
	DirectionInOut Direction = "inout"
)

// VisibilityOf reads the "visibility" property from props, defaulting to
// Public when absent or malformed (SysML v2 members default to public).
func VisibilityOf(props map[string]Value) Visibility {
	v, ok := props[PropVisibility]
	if !ok {
		return Public
	}
	s, ok := v.AsString()
	if !ok {
		return Public
	}
	switch Visibility(s) {
	case Public, Private, Protected:
		return Visibility(s)
	default:
		return Public
	}
}

// IsNamespaceOf reads the "isNamespace" boolean property, defaulting to
// false when absent.
func IsNamespaceOf(props map[string]Value) bool {
	v, ok := props[PropIsNamespace]
	if !ok {
		return false
	}
	b, _ := v.AsBool()
	return b
}
