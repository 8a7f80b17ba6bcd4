package ecs

// System represents a behavior that operates on entities with specific components.
// Systems can declare Query, Singleton and *Store fields, which the Scheduler
// binds on registration, as well as custom state fields that persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
