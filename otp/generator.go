package otp

import (
	"github.com/merliot/trng"
	"github.com/merliot/trng/entropy"
)

// Generator is a thing replying to each Enter on its console with a
// one-time password read from a TRNG
type Generator struct {
	trng.Thing
	trng.ThingMsg
	Otp      string
	Count    uint32
	Failures uint32 `json:"-"`
	mu       trng.Mutex
	source   entropy.Source
}

func New(id, model, name string, source entropy.Source) *Generator {
	return &Generator{
		Thing:  trng.NewThing(id, model, name),
		source: source,
	}
}

func (g *Generator) Banner() []byte {
	if g.TestFlag(trng.ThingFlagJSON) {
		return nil
	}
	return []byte(Banner())
}

func (g *Generator) Subscribers() trng.Subscribers {
	return trng.Subscribers{
		trng.TagEnter: g.generate,
	}
}

// Generate reads one sample and returns it.  A failed sample is counted and
// returned as is; there is no retry.
func (g *Generator) Generate() (uint32, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	v, err := g.source.Uint32()
	if err != nil {
		g.Failures++
		return 0, err
	}
	g.Count++
	g.Otp = "0x" + Hex(v)
	return v, nil
}

func (g *Generator) generate(pkt *trng.Packet) {
	v, err := g.Generate()
	if err != nil {
		trng.Logf("%s: %s", g, err)
		return
	}

	if g.TestFlag(trng.ThingFlagJSON) {
		g.mu.Lock()
		g.Path = "otp"
		pkt.Marshal(g).Append("\r\n")
		g.mu.Unlock()
	} else {
		pkt.Set([]byte(Reply(v)))
	}

	pkt.Reply().Broadcast()
}
