package overlay

// Phase is the lifecycle state of an overlay.
type Phase int

const (
	Collapsed Phase = iota
	Expanding
	Expanded
	Collapsing
)

var phaseNames = [...]string{
	Collapsed:  "collapsed",
	Expanding:  "expanding",
	Expanded:   "expanded",
	Collapsing: "collapsing",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}
