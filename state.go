// FILE: state.go
package dayroll

import (
	"sync/atomic"
)

// State encapsulates the runtime state of the engine
type State struct {
	IsInitialized    atomic.Bool
	Disabled         atomic.Bool
	ShutdownCalled   atomic.Bool
	RotationDisabled atomic.Bool // Set after a panic mid-rotation; never cleared

	CurrentFile   atomic.Value // stores *os.File, the append handle of the active file
	ConsoleWriter atomic.Value // stores sink (os.Stdout, os.Stderr, or io.Discard)
	UIHook        atomic.Value // stores uiHook, optional host UI surface
	Rotation      atomic.Value // stores *rotationState; nil until startup rotation ran

	// Statistics
	TotalEvents    atomic.Uint64 // Events formatted and dispatched
	TotalRotations atomic.Uint64 // Successful day or startup rotations
	TotalDeletions atomic.Uint64 // Archives removed by the retention sweep
}
