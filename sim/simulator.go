package sim

// Simulator bundles the detector, resolver and integrator over one block
// source and one immutable config. It is the entry point for both the
// server tick and the client prediction path; identical inputs produce
// identical outputs, so prediction can replay ticks and reconcile.
type Simulator struct {
	Detector   *Detector
	Resolver   *Resolver
	Integrator *Integrator
}

// NewSimulator wires the three components together. sink may be nil to
// discard collision events.
func NewSimulator(source BlockSource, conf PhysicsConfig, sink EventSink) *Simulator {
	det := NewDetector(source, conf)
	res := NewResolver(det, sink)
	return &Simulator{
		Detector:   det,
		Resolver:   res,
		Integrator: NewIntegrator(res),
	}
}
