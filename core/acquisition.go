package core

// Source is the uniform "sample now" operation behind every acquisition
// mode. Sample runs inside the tick handler and must return immediately.
type Source interface {
	Sample() byte
}

// sampleTask is the one task body every session binds: read the source and
// push the byte out. The five logic analyzer bodies and the shared scope
// body differ only in the Source.
type sampleTask struct {
	source    Source
	transport *Transport
}

func (t *sampleTask) Run() {
	t.transport.Send(t.source.Sample())
}
