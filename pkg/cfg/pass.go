package cfg

// SimplifyCfg is the pass-manager-facing wrapper around Simplify and
// RemoveDeadBlocks. Host pass managers (out of scope for this package —
// see the Non-goals) may schedule the same simplifier multiple times
// during a pipeline (for instance once right after desugaring and again
// as a final cleanup); the label distinguishes those runs for logging and
// diagnostics without this package needing to know anything about the
// host's scheduling.
type SimplifyCfg struct {
	label string
}

// NewSimplifyCfg returns a simplifier pass identified by label.
func NewSimplifyCfg(label string) *SimplifyCfg {
	return &SimplifyCfg{label: label}
}

// Run simplifies fn to its fixed point and then compacts away dead blocks,
// in that order.
func (p *SimplifyCfg) Run(fn *Function) {
	Simplify(fn)
	RemoveDeadBlocks(fn)
}

// Disambiguator returns the opaque label used to tell repeated schedulings
// of this pass apart.
func (p *SimplifyCfg) Disambiguator() string {
	return p.label
}
