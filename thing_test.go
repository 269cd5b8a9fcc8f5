package trng

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestEmptyId(t *testing.T) {
	c := qt.New(t)
	// should panic with empty Id
	c.Assert(func() { NewThing("", "foo", "bar") }, qt.PanicMatches, `something invalid.*`)
}

func TestEmptyModel(t *testing.T) {
	c := qt.New(t)
	c.Assert(func() { NewThing("foo", "", "bar") }, qt.PanicMatches, `something invalid.*`)
}

func TestEmptyName(t *testing.T) {
	c := qt.New(t)
	c.Assert(func() { NewThing("foo", "bar", "") }, qt.PanicMatches, `something invalid.*`)
}

func TestValidId(t *testing.T) {
	c := qt.New(t)
	for _, tt := range []struct {
		id    string
		valid bool
	}{
		{"trng_01", true},
		{"ABCxyz019", true},
		{"", false},
		{"has space", false},
		{"dash-ed", false},
		{"ünicode", false},
	} {
		c.Check(ValidId(tt.id), qt.Equals, tt.valid, qt.Commentf("id %q", tt.id))
	}
}

func TestThingFlags(t *testing.T) {
	c := qt.New(t)
	thing := NewThing("id", "model", "name")
	c.Assert(thing.TestFlag(ThingFlagJSON), qt.IsFalse)
	thing.SetFlag(ThingFlagJSON)
	c.Assert(thing.TestFlag(ThingFlagJSON), qt.IsTrue)
	c.Assert(thing.IsMetal(), qt.IsFalse)
	c.Assert(thing.String(), qt.Equals, "[Id: id, Model: model, Name: name]")
}
