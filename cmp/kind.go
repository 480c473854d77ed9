// Copyright 2026 numgo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmp

import "strconv"

// Kind identifies one of the six relational operators.
type Kind uint8

const (
	KindEqual Kind = iota
	KindNotEqual
	KindLess
	KindLessEqual
	KindGreater
	KindGreaterEqual
)

// String returns the operator's registered name.
func (k Kind) String() string {
	switch k {
	case KindEqual:
		return "equal"
	case KindNotEqual:
		return "not_equal"
	case KindLess:
		return "less"
	case KindLessEqual:
		return "less_equal"
	case KindGreater:
		return "greater"
	case KindGreaterEqual:
		return "greater_equal"
	default:
		return "unknown"
	}
}

// Kinds lists all six operators in registration order.
var Kinds = []Kind{
	KindEqual, KindNotEqual, KindLess, KindLessEqual, KindGreater, KindGreaterEqual,
}

// Type identifies one element type of the catalog. The names follow the
// classic C-derived spellings: LONG/ULONG are the platform word (Go int and
// uint), LONGLONG/ULONGLONG are always 64-bit.
type Type uint8

const (
	TypeBool Type = iota
	TypeByte
	TypeUByte
	TypeShort
	TypeUShort
	TypeInt
	TypeUInt
	TypeLong
	TypeULong
	TypeLongLong
	TypeULongLong
	TypeFloat
	TypeDouble
)

// Types lists the full element type catalog in registration order.
var Types = []Type{
	TypeBool,
	TypeUByte, TypeByte,
	TypeUShort, TypeShort,
	TypeUInt, TypeInt,
	TypeULong, TypeLong,
	TypeULongLong, TypeLongLong,
	TypeFloat, TypeDouble,
}

// String returns the type's registration name.
func (t Type) String() string {
	switch t {
	case TypeBool:
		return "BOOL"
	case TypeByte:
		return "BYTE"
	case TypeUByte:
		return "UBYTE"
	case TypeShort:
		return "SHORT"
	case TypeUShort:
		return "USHORT"
	case TypeInt:
		return "INT"
	case TypeUInt:
		return "UINT"
	case TypeLong:
		return "LONG"
	case TypeULong:
		return "ULONG"
	case TypeLongLong:
		return "LONGLONG"
	case TypeULongLong:
		return "ULONGLONG"
	case TypeFloat:
		return "FLOAT"
	case TypeDouble:
		return "DOUBLE"
	default:
		return "UNKNOWN"
	}
}

// Size returns the element size in bytes.
func (t Type) Size() int {
	switch t {
	case TypeBool, TypeByte, TypeUByte:
		return 1
	case TypeShort, TypeUShort:
		return 2
	case TypeInt, TypeUInt, TypeFloat:
		return 4
	case TypeLong, TypeULong:
		return strconv.IntSize / 8
	case TypeLongLong, TypeULongLong, TypeDouble:
		return 8
	default:
		return 0
	}
}

// IsInteger reports whether t is a (signed or unsigned) integer type.
func (t Type) IsInteger() bool {
	switch t {
	case TypeByte, TypeUByte, TypeShort, TypeUShort, TypeInt, TypeUInt,
		TypeLong, TypeULong, TypeLongLong, TypeULongLong:
		return true
	}
	return false
}

// IsFloat reports whether t is a floating-point type.
func (t Type) IsFloat() bool {
	return t == TypeFloat || t == TypeDouble
}

// fixed maps the platform-width types onto their fixed-width equivalents,
// so LONG and INT (or LONG and LONGLONG) share one kernel.
func (t Type) fixed() Type {
	switch t {
	case TypeLong:
		if strconv.IntSize == 32 {
			return TypeInt
		}
		return TypeLongLong
	case TypeULong:
		if strconv.IntSize == 32 {
			return TypeUInt
		}
		return TypeULongLong
	}
	return t
}

// unsigned returns the unsigned integer type of the same width.
func (t Type) unsigned() Type {
	switch t {
	case TypeByte:
		return TypeUByte
	case TypeShort:
		return TypeUShort
	case TypeInt:
		return TypeUInt
	case TypeLong:
		return TypeULong
	case TypeLongLong:
		return TypeULongLong
	}
	return t
}
