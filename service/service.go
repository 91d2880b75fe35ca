package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services own long-lived resources outside the tick loop, such as the audio device
//
// Lifecycle:
//  1. Construction (via the owning package)
//  2. Start() - acquire resources, launch goroutines if any
//  3. [runtime operation]
//  4. Stop() - release resources; must be idempotent
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	Stop() error
}
