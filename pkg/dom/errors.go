package dom

import "errors"

var (
	// ErrTypeMismatch reports an attribute write whose value type does not
	// match the attribute's registered kind. The stored value is unchanged.
	ErrTypeMismatch = errors.New("dom: attribute value type mismatch")

	// ErrUnknownAttribute reports a typed access to an attribute name the
	// element type does not declare.
	ErrUnknownAttribute = errors.New("dom: unknown attribute")

	// ErrDuplicateID reports an identifier collision without
	// uniqueness-forcing. The original identifier is retained.
	ErrDuplicateID = errors.New("dom: identifier already in use")

	// ErrInvalidID reports an identifier that cannot be used, such as one
	// containing whitespace or '/'.
	ErrInvalidID = errors.New("dom: invalid identifier")

	// ErrInvalidOperation reports a structural mutation that would corrupt
	// the tree: adding an attached node, removing a non-child, or creating
	// a cycle. The tree is unchanged.
	ErrInvalidOperation = errors.New("dom: invalid structural operation")

	// ErrUnsupportedElement reports an attempt to construct a node type
	// from markup when the type has no markup form.
	ErrUnsupportedElement = errors.New("dom: element cannot be constructed from markup")
)
