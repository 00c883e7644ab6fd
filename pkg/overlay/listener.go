package overlay

// Listener observes overlay lifecycle transitions. Each method receives the
// overlay that fired it.
type Listener interface {
	WillExpand(o *Overlay)
	DidExpand(o *Overlay)
	WillCollapse(o *Overlay)
	DidCollapse(o *Overlay)
}

// ListenerFuncs adapts optional functions to a Listener. Nil fields are
// skipped.
type ListenerFuncs struct {
	OnWillExpand   func(*Overlay)
	OnDidExpand    func(*Overlay)
	OnWillCollapse func(*Overlay)
	OnDidCollapse  func(*Overlay)
}

func (l ListenerFuncs) WillExpand(o *Overlay)   { call(l.OnWillExpand, o) }
func (l ListenerFuncs) DidExpand(o *Overlay)    { call(l.OnDidExpand, o) }
func (l ListenerFuncs) WillCollapse(o *Overlay) { call(l.OnWillCollapse, o) }
func (l ListenerFuncs) DidCollapse(o *Overlay)  { call(l.OnDidCollapse, o) }

func call(fn func(*Overlay), o *Overlay) {
	if fn != nil {
		fn(o)
	}
}
