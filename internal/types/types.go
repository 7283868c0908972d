package types

// EntityID identifies a tower or an enemy for the lifetime of a game session.
type EntityID uint64
