package compute

// Backend runs fn over disjoint sub-ranges that together cover [0, n).
type Backend interface {
	Name() string
	Workers() int
	For(n int, fn func(start, end int))
}

// minParallelWork is the smallest range worth splitting across workers.
const minParallelWork = 16

// AutoSelectBackend picks the CPU backend for ranges large enough to benefit
// and the serial backend otherwise.
func AutoSelectBackend(n int) Backend {
	if n < minParallelWork {
		return NewSerialBackend()
	}
	return NewCPUBackend(0)
}

// ByName resolves a backend from its CLI name. Unknown names return nil.
func ByName(name string, workers int) Backend {
	switch name {
	case "serial":
		return NewSerialBackend()
	case "cpu", "parallel":
		return NewCPUBackend(workers)
	default:
		return nil
	}
}

type SerialBackend struct{}

func NewSerialBackend() *SerialBackend { return &SerialBackend{} }

func (SerialBackend) Name() string { return "serial" }
func (SerialBackend) Workers() int { return 1 }

func (SerialBackend) For(n int, fn func(start, end int)) {
	if n > 0 {
		fn(0, n)
	}
}
