package trng

// Subscribers maps a packet tag to the handler for packets with that tag
type Subscribers map[string]func(*Packet)

// Thinger is a device served on a console by a Runner
type Thinger interface {
	// Subscribers returns the packet handlers to install on the bus
	Subscribers() Subscribers
	// Banner is written once to the console before serving
	Banner() []byte
	Id() string
	Model() string
	Name() string
	String() string
	SetFlag(uint32)
	TestFlag(uint32) bool
}

// ThingMsg is embedded in a thing so the Path travels with the thing's state
// when the thing is marshaled
type ThingMsg struct {
	Path string
}

type Thing struct {
	id    string
	model string
	name  string
	flags uint32
}

// NewThing returns a thing with the given identity.  NewThing panics if any
// of id, model, or name is not a valid ID.
func NewThing(id, model, name string) Thing {
	if !ValidId(id) || !ValidId(model) || !ValidId(name) {
		panic("something invalid: id = \"" + id + "\", model = \"" +
			model + "\", name = \"" + name + "\"")
	}
	return Thing{id: id, model: model, name: name}
}

const (
	// Thing is attached to a real port by a Runner
	ThingFlagMetal uint32 = 1 << iota
	// Thing replies with JSON lines instead of framed console text
	ThingFlagJSON
)

func (t *Thing) Subscribers() Subscribers  { return nil }
func (t *Thing) Banner() []byte            { return nil }
func (t *Thing) Id() string                { return t.id }
func (t *Thing) Model() string             { return t.model }
func (t *Thing) Name() string              { return t.name }
func (t *Thing) SetFlag(flag uint32)       { t.flags |= flag }
func (t *Thing) TestFlag(flag uint32) bool { return (t.flags & flag) != 0 }
func (t *Thing) IsMetal() bool             { return t.TestFlag(ThingFlagMetal) }

func (t *Thing) String() string {
	return "[Id: " + t.id + ", Model: " + t.model + ", Name: " + t.name + "]"
}

// A valid ID is a non-empty string with only [a-z], [A-Z], [0-9], or
// underscore characters.
func ValidId(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') &&
			(r < 'A' || r > 'Z') &&
			(r < '0' || r > '9') &&
			(r != '_') {
			return false
		}
	}
	return len(s) > 0
}
