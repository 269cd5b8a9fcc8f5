package trng

var defaultMaxSockets = 4

// Bus is a logical packet bus.  Packets arrive on sockets connected to the
// bus and are dispatched to the handler registered for the packet tag.  A
// handled packet can be replied back to the sender, or broadcast to the other
// sockets.  A socket has a tag, and the bus segregates the sockets by tag.
// Packets arriving on a tagged socket will be broadcast only to other sockets
// with same tag.  The empty tag "" is the default tag on the bus.
type Bus struct {
	name       string
	socketsMu  rwMutex
	sockets    map[Socketer]bool
	socketQ    chan bool
	handlersMu rwMutex
	handlers   map[string]func(*Packet)
	connect    func(Socketer)
	disconnect func(Socketer)
}

// NewBus returns a new bus with connect and disconnect callbacks
func NewBus(name string, connect, disconnect func(Socketer)) *Bus {
	if connect == nil {
		connect = func(Socketer) { /* don't notify */ }
	}
	if disconnect == nil {
		disconnect = func(Socketer) { /* don't notify */ }
	}
	return &Bus{
		name:       name,
		sockets:    make(map[Socketer]bool),
		socketQ:    make(chan bool, defaultMaxSockets),
		handlers:   make(map[string]func(*Packet)),
		connect:    connect,
		disconnect: disconnect,
	}
}

// Handle sets the packet handler for a packet tag
func (b *Bus) Handle(tag string, handler func(*Packet)) bool {
	if handler == nil {
		panic("handler is nil")
	}
	b.handlersMu.Lock()
	defer b.handlersMu.Unlock()
	if _, ok := b.handlers[tag]; !ok {
		b.handlers[tag] = handler
		return true
	}
	return false
}

// Unhandle removes the packet handle for the packet tag
func (b *Bus) Unhandle(tag string) {
	b.handlersMu.Lock()
	defer b.handlersMu.Unlock()
	delete(b.handlers, tag)
}

func (b *Bus) Name() string {
	return b.name
}

// MaxSockets sets the maximum number of sockets that can be plugged into the
// bus.  Any plugin attempts past the maximum will block until other sockets
// drop.
func (b *Bus) MaxSockets(maxSockets int) {
	b.socketQ = make(chan bool, maxSockets)
}

// plugin the socket to the bus
func (b *Bus) plugin(s Socketer) {
	// block here when socketQ is full
	b.socketQ <- true

	b.socketsMu.Lock()
	b.sockets[s] = true
	b.socketsMu.Unlock()

	// call connect callback
	b.connect(s)
}

// unplug the socket from the bus
func (b *Bus) unplug(s Socketer) {
	b.socketsMu.Lock()
	if _, ok := b.sockets[s]; !ok {
		b.socketsMu.Unlock()
		return
	}
	delete(b.sockets, s)
	b.socketsMu.Unlock()

	// call disconnect callback
	b.disconnect(s)

	// release one from the socketQ
	<-b.socketQ
}

// broadcast packet to all sockets with matching tag, skipping the source
// socket src
func (b *Bus) broadcast(pkt *Packet) {
	b.socketsMu.RLock()
	defer b.socketsMu.RUnlock()
	for sock := range b.sockets {
		if pkt.src != sock &&
			pkt.src.Tag() == sock.Tag() &&
			sock.TestFlag(SocketFlagBcast) {
			if err := sock.Send(pkt); err != nil {
				Logf("Bcast  src %s dst %s failed: %s", pkt.src, sock, err)
			}
		}
	}
}

// receive will call the packet handler for the packet tag.  Packets with no
// handler are dropped.
func (b *Bus) receive(pkt *Packet) {
	b.handlersMu.RLock()
	handler, ok := b.handlers[pkt.tag]
	b.handlersMu.RUnlock()
	if ok {
		handler(pkt)
	}
}
