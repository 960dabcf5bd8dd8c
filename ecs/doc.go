// Package ecs provides ECS adapters for turtle interpreters.
//
// The primary adapter is [NewDonburiObserver], which publishes every
// interpreter step into a [Donburi] world as a typed event and mirrors the
// actor's placement into an entity. Subscribe to [StepEventType] in your ECS
// systems to receive steps.
//
// Usage:
//
//	obs := ecs.NewDonburiObserver(world)
//	interp.SetObserver(obs)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
