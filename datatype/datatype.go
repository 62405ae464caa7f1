// Package datatype implements the DataType lattice described in
// SPEC_FULL.md §3.2: primitive scalars, composite container/callable/class
// types, and the parser-only Pending placeholder the analyzer must resolve
// away before IR is emitted.
package datatype

import (
	"fmt"
	"strings"
)

// Primitive enumerates the scalar and marker kinds of DataType.
type Primitive int

const (
	IntP Primitive = iota
	FloatP
	BooleanP
	StringP
	CharP
	VoidP
	NullP
	// NoneP is the builtin-parameter wildcard: "accepts anything". It is
	// never used to mean "value is absent" — that role belongs to NullP.
	// See SPEC_FULL.md §9 for the Open Question this resolves.
	NoneP
	// PendingP is a parser-emitted placeholder only. SPEC_FULL.md §3.2
	// invariant: the analyzer replaces every Pending with a concrete type
	// before emitting IR; Pending must never reach a backend.
	PendingP
)

func (p Primitive) String() string {
	switch p {
	case IntP:
		return "int"
	case FloatP:
		return "float"
	case BooleanP:
		return "boolean"
	case StringP:
		return "string"
	case CharP:
		return "char"
	case VoidP:
		return "void"
	case NullP:
		return "null"
	case NoneP:
		return "none"
	case PendingP:
		return "pending"
	default:
		return "unknown"
	}
}

// Kind discriminates the composite shape of a DataType.
type Kind int

const (
	Scalar Kind = iota
	Array
	Callable
	ClassType
	Variable // unresolved identifier reference, resolved during analysis
	GenericType
	UnionType
	IntersectionType
	TupleType
	AliasType
)

// DataType is the single representation for both the parser's inline
// inference and the analyzer's authoritative typing. Composite variants
// populate only the fields relevant to their Kind; the zero value of the
// others is ignored.
type DataType struct {
	Kind Kind

	// Scalar
	Primitive Primitive

	// Array
	Element *DataType

	// Callable
	Params []DataType
	Result *DataType

	// ClassType / Variable / AliasType
	Name string

	// GenericType
	Base       string
	TypeParams []DataType

	// UnionType / IntersectionType / TupleType
	Members []DataType
}

// Scalar constructors.
func Int() DataType     { return DataType{Kind: Scalar, Primitive: IntP} }
func Float() DataType   { return DataType{Kind: Scalar, Primitive: FloatP} }
func Boolean() DataType { return DataType{Kind: Scalar, Primitive: BooleanP} }
func String() DataType  { return DataType{Kind: Scalar, Primitive: StringP} }
func Char() DataType    { return DataType{Kind: Scalar, Primitive: CharP} }
func Void() DataType    { return DataType{Kind: Scalar, Primitive: VoidP} }
func Null() DataType    { return DataType{Kind: Scalar, Primitive: NullP} }
func None() DataType    { return DataType{Kind: Scalar, Primitive: NoneP} }
func Pending() DataType { return DataType{Kind: Scalar, Primitive: PendingP} }

// NewArray wraps element as Array(element).
func NewArray(element DataType) DataType {
	return DataType{Kind: Array, Element: &element}
}

// NewCallable builds a Callable(params, ret) type.
func NewCallable(params []DataType, result DataType) DataType {
	return DataType{Kind: Callable, Params: params, Result: &result}
}

// NewClass builds a ClassType(name) reference. Per SPEC_FULL.md §9 design
// notes, classes are looked up by name in the current file's IR list —
// this type never embeds a pointer back to the class definition, avoiding
// the cyclic-reference problem a direct pointer would create.
func NewClass(name string) DataType { return DataType{Kind: ClassType, Name: name} }

// NewVariable builds an unresolved identifier-reference type, emitted by
// the parser as the placeholder type of an identifier expression until the
// analyzer resolves the name. (A class name in a type annotation becomes a
// ClassType, not a Variable.)
func NewVariable(name string) DataType { return DataType{Kind: Variable, Name: name} }

// NewGeneric builds a GenericType{base, params}.
func NewGeneric(base string, params []DataType) DataType {
	return DataType{Kind: GenericType, Base: base, TypeParams: params}
}

// NewUnion, NewIntersection, NewTuple build the corresponding composite
// variants.
func NewUnion(members []DataType) DataType        { return DataType{Kind: UnionType, Members: members} }
func NewIntersection(members []DataType) DataType { return DataType{Kind: IntersectionType, Members: members} }
func NewTuple(members []DataType) DataType        { return DataType{Kind: TupleType, Members: members} }

// NewAlias builds an AliasType(name) reference.
func NewAlias(name string) DataType { return DataType{Kind: AliasType, Name: name} }

// IsPending reports whether t is the parser placeholder.
func (t DataType) IsPending() bool { return t.Kind == Scalar && t.Primitive == PendingP }

// IsNumeric reports whether t is Int or Float.
func (t DataType) IsNumeric() bool {
	return t.Kind == Scalar && (t.Primitive == IntP || t.Primitive == FloatP)
}

// IsScalarPrimitive reports whether t is one of the primitive scalar kinds
// usable as an operand of `!` (analyzer §4.3 unary rule).
func (t DataType) IsScalarPrimitive() bool {
	return t.Kind == Scalar && t.Primitive != PendingP
}

// Equal reports structural equality between two DataTypes.
func (t DataType) Equal(other DataType) bool {
	return t.String() == other.String()
}

// String renders a canonical, human-readable form, used both for debug
// dumps and as the basis of DataType equality.
func (t DataType) String() string {
	switch t.Kind {
	case Scalar:
		return t.Primitive.String()
	case Array:
		if t.Element == nil {
			return "array<?>"
		}
		return fmt.Sprintf("array<%s>", t.Element.String())
	case Callable:
		parts := make([]string, 0, len(t.Params))
		for _, p := range t.Params {
			parts = append(parts, p.String())
		}
		ret := "void"
		if t.Result != nil {
			ret = t.Result.String()
		}
		return fmt.Sprintf("(%s)->%s", strings.Join(parts, ","), ret)
	case ClassType:
		return "class:" + t.Name
	case Variable:
		return "var:" + t.Name
	case GenericType:
		parts := make([]string, 0, len(t.TypeParams))
		for _, p := range t.TypeParams {
			parts = append(parts, p.String())
		}
		return fmt.Sprintf("%s<%s>", t.Base, strings.Join(parts, ","))
	case UnionType:
		return joinMembers(t.Members, "|")
	case IntersectionType:
		return joinMembers(t.Members, "&")
	case TupleType:
		return "(" + joinMembers(t.Members, ",") + ")"
	case AliasType:
		return "alias:" + t.Name
	default:
		return "unknown"
	}
}

func joinMembers(members []DataType, sep string) string {
	parts := make([]string, 0, len(members))
	for _, m := range members {
		parts = append(parts, m.String())
	}
	return strings.Join(parts, sep)
}
