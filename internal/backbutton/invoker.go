package backbutton

// Invoker owns the application's registry. Until Initialize is called,
// and after Teardown, every call is a no-op so handlers created during
// startup or shutdown do not need to check.
type Invoker struct {
	registry *Registry
}

// Initialize creates the registry. Calling it again keeps the existing one.
func (i *Invoker) Initialize(opts ...Option) {
	if i.registry != nil {
		return
	}
	i.registry = New(opts...)
}

func (i *Invoker) Teardown() {
	i.registry = nil
}

func (i *Invoker) Initialized() bool {
	return i != nil && i.registry != nil
}

// Registry returns the current registry, nil when not initialized.
func (i *Invoker) Registry() *Registry {
	if i == nil {
		return nil
	}
	return i.registry
}

func (i *Invoker) Register(h Handler)   { i.Registry().Register(h) }
func (i *Invoker) Deregister(h Handler) { i.Registry().Deregister(h) }
func (i *Invoker) Dispatch() bool       { return i.Registry().Dispatch() }
func (i *Invoker) Len() int             { return i.Registry().Len() }
