//go:build !pprof

package profile

// Enabled reports whether profiling was compiled in.
const Enabled = false

// Modes returns nil; profiling was not compiled in.
func Modes() []string { return nil }

func start(Profiler) Stopper { return nop{} }
