package systems

import (
	"github.com/automoto/tower-defense/components"
	"github.com/yohamta/donburi"
)

// DespawnRecursive removes entry and every entity below it in the Children hierarchy.
// Entries that are already gone are skipped, so calling it twice is harmless.
func DespawnRecursive(w donburi.World, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}

	if entry.HasComponent(components.Children) {
		// Copy first: removing a child must not mutate the slice being walked.
		children := append([]donburi.Entity(nil), components.Children.Get(entry).Entities...)
		for _, c := range children {
			if w.Valid(c) {
				DespawnRecursive(w, w.Entry(c))
			}
		}
	}

	detachFromParent(w, entry)
	w.Remove(entry.Entity())
}

// detachFromParent drops entry from its parent's Children list, if the parent still exists.
func detachFromParent(w donburi.World, entry *donburi.Entry) {
	if !entry.HasComponent(components.Parent) {
		return
	}
	parentEntity := components.Parent.Get(entry).Entity
	if !w.Valid(parentEntity) {
		return
	}
	parent := w.Entry(parentEntity)
	if !parent.HasComponent(components.Children) {
		return
	}
	children := components.Children.Get(parent)
	for i, c := range children.Entities {
		if c == entry.Entity() {
			children.Entities = append(children.Entities[:i], children.Entities[i+1:]...)
			return
		}
	}
}

// WorldTransform composes entry's Transform with those of all its ancestors.
func WorldTransform(w donburi.World, entry *donburi.Entry) components.TransformData {
	t := *components.Transform.Get(entry)
	for depth := 0; entry.HasComponent(components.Parent) && depth < maxHierarchyDepth; depth++ {
		parentEntity := components.Parent.Get(entry).Entity
		if !w.Valid(parentEntity) {
			break
		}
		entry = w.Entry(parentEntity)
		if !entry.HasComponent(components.Transform) {
			break
		}
		t = components.Transform.Get(entry).Mul(t)
	}
	return t
}

// guards against accidental parent cycles
const maxHierarchyDepth = 32
