package components

import "github.com/yohamta/donburi"

// ParentData links a child entity to the entity whose transform it is relative to.
type ParentData struct {
	Entity donburi.Entity
}

var Parent = donburi.NewComponentType[ParentData]()

// ChildrenData lists the entities parented to this one. Despawning the parent despawns them.
type ChildrenData struct {
	Entities []donburi.Entity
}

var Children = donburi.NewComponentType[ChildrenData]()
