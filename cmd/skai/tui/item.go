package tui

// Item is a node in the catalog tree handed to a prompt: either a leaf
// carrying a payload or a group carrying children, never both. Use Leaf and
// Group to construct nodes; the zero value is not a valid Item. Items are
// immutable for the lifetime of a prompt; selection and enabled state are
// tracked outside the tree, keyed by ID.
type Item[T any] struct {
	ID       string
	Label    string
	Hint     string
	Payload  T
	Children []Item[T]
	group    bool
}

// Leaf builds a selectable catalog entry.
func Leaf[T any](id, label, hint string, payload T) Item[T] {
	return Item[T]{ID: id, Label: label, Hint: hint, Payload: payload}
}

// Group builds a named collection of child items. A group may be empty.
func Group[T any](id, label string, children ...Item[T]) Item[T] {
	return Item[T]{ID: id, Label: label, Children: children, group: true}
}

// IsGroup reports whether the item is a group node.
func (it Item[T]) IsGroup() bool {
	return it.group
}

// FlatNode is one row of a flattened tree: the item, its nesting depth, and
// the ID of its immediate parent group ("" at the root).
type FlatNode[T any] struct {
	Item     Item[T]
	Depth    int
	ParentID string
}

// Flatten walks items depth-first in pre-order. A group's children are
// emitted only when the group's ID is in expanded. The result is rebuilt
// from scratch on every call; nothing is cached across calls.
func Flatten[T any](items []Item[T], expanded map[string]bool) []FlatNode[T] {
	var out []FlatNode[T]
	var walk func(items []Item[T], depth int, parentID string)
	walk = func(items []Item[T], depth int, parentID string) {
		for _, it := range items {
			out = append(out, FlatNode[T]{Item: it, Depth: depth, ParentID: parentID})
			if it.IsGroup() && expanded[it.ID] {
				walk(it.Children, depth+1, it.ID)
			}
		}
	}
	walk(items, 0, "")
	return out
}

// Count pairs a selected tally with a total tally.
type Count struct {
	Selected int
	Total    int
}

// CountSelected tallies leaves under an item against the selected ID set.
// A leaf counts (1,1) when selected and (0,1) otherwise; a group sums its
// children recursively, so an empty group counts (0,0).
func CountSelected[T any](it Item[T], selected map[string]bool) Count {
	if !it.IsGroup() {
		if selected[it.ID] {
			return Count{Selected: 1, Total: 1}
		}
		return Count{Selected: 0, Total: 1}
	}
	var c Count
	for _, child := range it.Children {
		cc := CountSelected(child, selected)
		c.Selected += cc.Selected
		c.Total += cc.Total
	}
	return c
}

// CollectLeafIDs returns the IDs of every leaf under an item in pre-order.
// A leaf yields itself; a childless group yields nothing.
func CollectLeafIDs[T any](it Item[T]) []string {
	if !it.IsGroup() {
		return []string{it.ID}
	}
	var ids []string
	for _, child := range it.Children {
		ids = append(ids, CollectLeafIDs(child)...)
	}
	return ids
}

// Option is one selectable entry presented by a prompt, detached from its
// position in the tree.
type Option[T any] struct {
	ID          string
	Label       string
	Hint        string
	Description string
	Value       T
}

// Category is a named list of options in catalog order.
type Category[T any] struct {
	Name    string
	Options []Option[T]
}

// Categorized is the two-level view of a catalog: top-level bare leaves
// plus named groups.
type Categorized[T any] struct {
	Ungrouped []Option[T]
	Groups    []Category[T]
}

// Categorize splits top-level items into ungrouped leaves and named groups.
// A group nested inside another group surfaces as its own top-level group
// (sibling, not sub-list); groups sharing a name are merged in first-seen
// order. Empty groups are kept so their names still appear.
func Categorize[T any](items []Item[T]) Categorized[T] {
	var cat Categorized[T]
	groupIdx := make(map[string]int)

	ensureGroup := func(name string) int {
		if i, ok := groupIdx[name]; ok {
			return i
		}
		cat.Groups = append(cat.Groups, Category[T]{Name: name})
		groupIdx[name] = len(cat.Groups) - 1
		return len(cat.Groups) - 1
	}

	var addGroup func(g Item[T])
	addGroup = func(g Item[T]) {
		i := ensureGroup(g.Label)
		for _, child := range g.Children {
			if child.IsGroup() {
				addGroup(child)
				continue
			}
			cat.Groups[i].Options = append(cat.Groups[i].Options, optionOf(child))
		}
	}

	for _, it := range items {
		if it.IsGroup() {
			addGroup(it)
			continue
		}
		cat.Ungrouped = append(cat.Ungrouped, optionOf(it))
	}
	return cat
}

func optionOf[T any](it Item[T]) Option[T] {
	return Option[T]{ID: it.ID, Label: it.Label, Hint: it.Hint, Value: it.Payload}
}
