package profile

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Profiler describes a profiling session.
type Profiler struct {
	// Mode is one of [Modes]. An empty or unknown mode disables profiling.
	Mode string
	// Path is the output directory. Empty selects a temporary directory.
	Path string
	// Quiet suppresses the profiler's own log output.
	Quiet bool
}

// Start begins profiling and returns a [Stopper] that ends it.
// Both Start and Stop are always safe to call; when profiling is unavailable
// or disabled they do nothing.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return nop{}
	}

	return start(p)
}

type nop struct{}

func (nop) Stop() {}
