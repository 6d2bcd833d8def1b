package ir

import "fmt"

// TypeKind enumerates signal type kinds.
type TypeKind uint8

const (
	// TypeClock is the clock type.
	TypeClock TypeKind = iota
	// TypeReset is the reset type.
	TypeReset
	// TypeUInt is an unsigned integer of fixed width.
	TypeUInt
	// TypeSInt is a signed integer of fixed width.
	TypeSInt
)

// Type is a signal type. Width is meaningful for TypeUInt and TypeSInt only.
type Type struct {
	Kind  TypeKind
	Width uint32
}

func (t Type) String() string {
	switch t.Kind {
	case TypeClock:
		return "clock"
	case TypeReset:
		return "reset"
	case TypeUInt:
		return fmt.Sprintf("uint<%d>", t.Width)
	case TypeSInt:
		return fmt.Sprintf("sint<%d>", t.Width)
	}
	return "invalid"
}

// UInt returns the unsigned integer type of the given width.
func UInt(width uint32) Type { return Type{Kind: TypeUInt, Width: width} }

// SInt returns the signed integer type of the given width.
func SInt(width uint32) Type { return Type{Kind: TypeSInt, Width: width} }

// Clock returns the clock type.
func Clock() Type { return Type{Kind: TypeClock} }

// Reset returns the reset type.
func Reset() Type { return Type{Kind: TypeReset} }
