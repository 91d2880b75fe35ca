package core

// Entity is a stable identity for a live field instance, distinct from its element id
type Entity uint64

// NoEntity is the zero handle, never issued by a store
const NoEntity Entity = 0
