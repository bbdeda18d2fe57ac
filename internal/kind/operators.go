package kind

// Op enumerates the supported element-wise binary operations.
type Op uint8

const (
	OpInvalid Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	case OpDiv:
		return "divide"
	case OpEq:
		return "equal"
	case OpNe:
		return "not_equal"
	case OpLt:
		return "less"
	case OpLe:
		return "less_equal"
	case OpGt:
		return "greater"
	case OpGe:
		return "greater_equal"
	default:
		return "invalid"
	}
}

// OpFromName resolves an operation by its ufunc name or symbol.
func OpFromName(name string) (Op, bool) {
	switch name {
	case "add", "+":
		return OpAdd, true
	case "subtract", "sub", "-":
		return OpSub, true
	case "multiply", "mul", "*":
		return OpMul, true
	case "divide", "div", "/":
		return OpDiv, true
	case "equal", "eq", "==":
		return OpEq, true
	case "not_equal", "ne", "!=":
		return OpNe, true
	case "less", "lt", "<":
		return OpLt, true
	case "less_equal", "le", "<=":
		return OpLe, true
	case "greater", "gt", ">":
		return OpGt, true
	case "greater_equal", "ge", ">=":
		return OpGe, true
	}
	return OpInvalid, false
}

// OpClass splits operations into arithmetic and comparison behavior.
// Comparisons produce Bool results and are exempt from the dtype-change
// advisory, which would be too noisy for them.
type OpClass uint8

const (
	ClassArith OpClass = iota
	ClassCompare
)

// BinarySpec lists operand families and result behavior for an operation.
type BinarySpec struct {
	Left  Family
	Right Family
	Class OpClass
}

var binarySpecTable = map[Op]BinarySpec{
	OpAdd: {Left: FamilyNumeric | FamilyBool, Right: FamilyNumeric | FamilyBool, Class: ClassArith},
	OpSub: {Left: FamilyNumeric, Right: FamilyNumeric, Class: ClassArith},
	OpMul: {Left: FamilyNumeric | FamilyBool, Right: FamilyNumeric | FamilyBool, Class: ClassArith},
	OpDiv: {Left: FamilyNumeric, Right: FamilyNumeric, Class: ClassArith},
	OpEq:  {Left: FamilyAny, Right: FamilyAny, Class: ClassCompare},
	OpNe:  {Left: FamilyAny, Right: FamilyAny, Class: ClassCompare},
	OpLt:  {Left: FamilyAny &^ FamilyComplex, Right: FamilyAny &^ FamilyComplex, Class: ClassCompare},
	OpLe:  {Left: FamilyAny &^ FamilyComplex, Right: FamilyAny &^ FamilyComplex, Class: ClassCompare},
	OpGt:  {Left: FamilyAny &^ FamilyComplex, Right: FamilyAny &^ FamilyComplex, Class: ClassCompare},
	OpGe:  {Left: FamilyAny &^ FamilyComplex, Right: FamilyAny &^ FamilyComplex, Class: ClassCompare},
}

// SpecFor returns the operand rules for the given operation.
func SpecFor(op Op) (BinarySpec, bool) {
	spec, ok := binarySpecTable[op]
	return spec, ok
}

// Comparison reports whether the operation belongs to the comparison class.
func (op Op) Comparison() bool {
	spec, ok := binarySpecTable[op]
	return ok && spec.Class == ClassCompare
}
