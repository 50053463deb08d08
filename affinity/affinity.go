// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for pinning the producer and consumer threads of
// an SPSC ring to dedicated CPUs. Real-time audio/streaming paths pin
// both sides so the scheduler never migrates them mid-stream.
// Platform-specific implementations live in affinity_linux.go and
// affinity_stub.go, guarded by build tags.

package affinity

import "runtime"

// Pin locks the calling goroutine to its OS thread and binds that
// thread to the given logical CPU. Callers must invoke Unpin from the
// same goroutine when done. cpuID < 0 is a no-op so configs can
// disable pinning without branching at the call site.
func Pin(cpuID int) error {
	if cpuID < 0 {
		return nil
	}
	runtime.LockOSThread()
	if err := setAffinityPlatform(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// Unpin releases the OS thread lock taken by Pin. The kernel affinity
// mask is left in place; the thread returns to the runtime's pool.
func Unpin() {
	runtime.UnlockOSThread()
}
