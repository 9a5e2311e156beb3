package nbt

import "iter"

// Tag is a node of the tree.
type Tag interface {
	Kind() Kind
}

type (
	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	String string
)

func (Byte) Kind() Kind   { return KindByte }
func (Short) Kind() Kind  { return KindShort }
func (Int) Kind() Kind    { return KindInt }
func (Long) Kind() Kind   { return KindLong }
func (Float) Kind() Kind  { return KindFloat }
func (Double) Kind() Kind { return KindDouble }
func (String) Kind() Kind { return KindString }

// Bool returns the byte encoding of a boolean.
func Bool(b bool) Byte {
	if b {
		return 1
	}
	return 0
}

// Array tags box their elements on access: Index on a ByteArray returns a Byte.
type (
	ByteArray []int8
	IntArray  []int32
	LongArray []int64
)

func (ByteArray) Kind() Kind { return KindByteArray }
func (IntArray) Kind() Kind  { return KindIntArray }
func (LongArray) Kind() Kind { return KindLongArray }

func (a ByteArray) Len() int { return len(a) }
func (a IntArray) Len() int  { return len(a) }
func (a LongArray) Len() int { return len(a) }

func (a ByteArray) Index(i int) Tag { return Byte(a[i]) }
func (a IntArray) Index(i int) Tag  { return Int(a[i]) }
func (a LongArray) Index(i int) Tag { return Long(a[i]) }

func (a ByteArray) All() iter.Seq[Tag] { return sequence(a) }
func (a IntArray) All() iter.Seq[Tag]  { return sequence(a) }
func (a LongArray) All() iter.Seq[Tag] { return sequence(a) }

// Sequence is implemented by lists and arrays.
type Sequence interface {
	Tag
	Len() int
	Index(i int) Tag
	All() iter.Seq[Tag]
}

func sequence(s interface {
	Len() int
	Index(int) Tag
}) iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		for i := range s.Len() {
			if !yield(s.Index(i)) {
				return
			}
		}
	}
}

// List is an ordered sequence of tags. Elements need not share a kind.
type List struct {
	elems []Tag
}

func NewList(tags ...Tag) *List {
	return &List{elems: tags}
}

func (*List) Kind() Kind { return KindList }

func (l *List) Len() int { return len(l.elems) }

func (l *List) Index(i int) Tag { return l.elems[i] }

func (l *List) Append(tags ...Tag) {
	l.elems = append(l.elems, tags...)
}

func (l *List) All() iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		for _, t := range l.elems {
			if !yield(t) {
				return
			}
		}
	}
}

// ElemKind returns the kind of the first element, or KindEnd for an empty list.
func (l *List) ElemKind() Kind {
	if len(l.elems) == 0 {
		return KindEnd
	}
	return l.elems[0].Kind()
}

// Compound maps unique names to tags and remembers insertion order.
type Compound struct {
	names []string
	tags  map[string]Tag
}

func NewCompound() *Compound {
	return &Compound{tags: make(map[string]Tag)}
}

func (*Compound) Kind() Kind { return KindCompound }

// Set adds or replaces a child. Replacing keeps the original position.
func (c *Compound) Set(name string, t Tag) *Compound {
	if c.tags == nil {
		c.tags = make(map[string]Tag)
	}
	if _, ok := c.tags[name]; !ok {
		c.names = append(c.names, name)
	}
	c.tags[name] = t
	return c
}

func (c *Compound) Get(name string) (Tag, bool) {
	t, ok := c.tags[name]
	return t, ok
}

func (c *Compound) Len() int { return len(c.names) }

// Names returns child names in insertion order.
func (c *Compound) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *Compound) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for _, name := range c.names {
			if !yield(name, c.tags[name]) {
				return
			}
		}
	}
}
