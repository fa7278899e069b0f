package core

import "github.com/google/uuid"

// EntityID uniquely identifies an Entity within a graph.
type EntityID string

// PredicateID uniquely identifies a Predicate within a graph.
type PredicateID string

// ContextID uniquely identifies a Context within a graph.
type ContextID string

// LigatureID identifies an explicit identity-join grouping of entities.
type LigatureID string

// ItemID is the union of EntityID, PredicateID, and ContextID. Context item
// sets and transformation target sets hold ItemIDs; callers convert back with
// a plain type conversion.
type ItemID string

// NewEntityID mints a fresh unique EntityID.
func NewEntityID() EntityID { return EntityID(uuid.NewString()) }

// NewPredicateID mints a fresh unique PredicateID.
func NewPredicateID() PredicateID { return PredicateID(uuid.NewString()) }

// NewContextID mints a fresh unique ContextID.
func NewContextID() ContextID { return ContextID(uuid.NewString()) }

// NewLigatureID mints a fresh unique LigatureID.
func NewLigatureID() LigatureID { return LigatureID(uuid.NewString()) }
