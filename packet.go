package trng

import (
	"encoding/json"
)

// Packet is sent and received on a bus via a socket.  The tag selects the bus
// handler for a received packet.
type Packet struct {
	bus     *Bus
	src     Socketer
	tag     string
	message []byte // payload
}

// NewPacket returns an empty packet with tag
func NewPacket(tag string) *Packet {
	return &Packet{tag: tag}
}

// Tag returns the packet tag
func (p *Packet) Tag() string {
	return p.tag
}

// SetTag sets the packet tag
func (p *Packet) SetTag(tag string) *Packet {
	p.tag = tag
	return p
}

// Bytes returns the packet message
func (p *Packet) Bytes() []byte {
	return p.message
}

// Set replaces the packet message
func (p *Packet) Set(message []byte) *Packet {
	p.message = message
	return p
}

// Append adds s to the end of the packet message
func (p *Packet) Append(s string) *Packet {
	p.message = append(p.message, s...)
	return p
}

func (p *Packet) String() string {
	return string(p.message)
}

// Reply sends the packet back to sender
func (p *Packet) Reply() *Packet {
	if p.src == nil {
		Logf("Can't reply to sender: source is nil")
		return p
	}
	if err := p.src.Send(p); err != nil {
		Logf("Reply to %s failed: %s", p.src, err)
	}
	return p
}

// Broadcast the packet to all other matching-tagged sockets on the bus.  The
// source socket is excluded.
func (p *Packet) Broadcast() *Packet {
	if p.bus == nil {
		Logf("Can't broadcast packet: bus is nil")
		return p
	}
	p.bus.broadcast(p)
	return p
}

// Unmarshal the packet message as JSON into v
func (p *Packet) Unmarshal(v any) *Packet {
	err := json.Unmarshal(p.message, v)
	if err != nil {
		Logf("JSON unmarshal error %s", err.Error())
	}
	return p
}

// Marshal the packet message as JSON from v
func (p *Packet) Marshal(v any) *Packet {
	var err error
	p.message, err = json.Marshal(v)
	if err != nil {
		Logf("JSON marshal error %s", err.Error())
	}
	return p
}
