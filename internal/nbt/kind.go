package nbt

// Kind is the NBT tag id.
type Kind uint8

const (
	KindEnd Kind = iota
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindByteArray
	KindString
	KindList
	KindCompound
	KindIntArray
	KindLongArray
)

var kindNames = [...]string{
	KindEnd:       "end",
	KindByte:      "byte",
	KindShort:     "short",
	KindInt:       "int",
	KindLong:      "long",
	KindFloat:     "float",
	KindDouble:    "double",
	KindByteArray: "byte_array",
	KindString:    "string",
	KindList:      "list",
	KindCompound:  "compound",
	KindIntArray:  "int_array",
	KindLongArray: "long_array",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsArray reports whether k is one of the typed numeric array kinds.
func (k Kind) IsArray() bool {
	return k == KindByteArray || k == KindIntArray || k == KindLongArray
}

// IsNumeric reports whether k is a numeric scalar kind.
func (k Kind) IsNumeric() bool {
	return k >= KindByte && k <= KindDouble
}
