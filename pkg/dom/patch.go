package dom

// PatchOp is the type of attribute patch operation.
type PatchOp uint8

const (
	PatchSetAttr    PatchOp = 0x01 // Set/update attribute
	PatchRemoveAttr PatchOp = 0x02 // Remove attribute
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	default:
		return "Unknown"
	}
}

// Patch is a single attribute change for the host adapter to apply
// after a successful match. Hydration only produces these; it never
// applies them.
type Patch struct {
	Op    PatchOp // Operation type
	Key   string  // Attribute key
	Value string  // New value (SetAttr only)
}

// AttributeDiffer computes the attribute changes needed to bring a
// matched element in line with the expected props. It is implemented
// by the host adapter; hydration treats the payload as opaque.
//
// The second return value lists attribute names present on the element
// but absent from the expected props ("server-only" attributes). These
// never produce patches; they only feed diagnostics.
type AttributeDiffer interface {
	DiffAttributes(el Element, expected map[string]any) (payload []Patch, extra []string)
}
