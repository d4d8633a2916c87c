// Package ecs provides typed, dense component storage keyed by entity.
package ecs

// Entity is a stable entity identifier. Identifiers are never reused within a World.
type Entity uint64

// NoEntity is the zero Entity; CreateEntity never returns it.
const NoEntity Entity = 0
