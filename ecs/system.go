package ecs

// System represents a behavior that runs once per frame.
// Systems may embed Singleton fields; the Scheduler initializes them on
// registration. Any other fields persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
