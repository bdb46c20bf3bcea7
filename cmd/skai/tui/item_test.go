package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafAndGroupConstruction(t *testing.T) {
	leaf := Leaf("a", "alpha", "first", 1)
	assert.False(t, leaf.IsGroup())
	assert.Equal(t, 1, leaf.Payload)

	grp := Group[int]("g", "grouped")
	assert.True(t, grp.IsGroup())
	assert.Empty(t, grp.Children) // empty groups are legal
}

func TestFlattenCollapsed(t *testing.T) {
	items := []Item[int]{
		Group("g1", "one", Leaf("a", "a", "", 0), Leaf("b", "b", "", 0)),
		Leaf("c", "c", "", 0),
	}

	flat := Flatten(items, map[string]bool{})
	require.Len(t, flat, 2)
	assert.Equal(t, "g1", flat[0].Item.ID)
	assert.Equal(t, "c", flat[1].Item.ID)
	assert.Equal(t, 0, flat[0].Depth)
	assert.Equal(t, "", flat[0].ParentID)
}

func TestFlattenExpanded(t *testing.T) {
	items := []Item[int]{
		Group("g1", "one", Leaf("a", "a", "", 0), Leaf("b", "b", "", 0)),
		Leaf("c", "c", "", 0),
	}

	flat := Flatten(items, map[string]bool{"g1": true})
	require.Len(t, flat, 4)
	assert.Equal(t, []string{"g1", "a", "b", "c"}, flatIDs(flat))
	assert.Equal(t, 1, flat[1].Depth)
	assert.Equal(t, "g1", flat[1].ParentID)
	assert.Equal(t, 0, flat[3].Depth)
}

func TestFlattenNestedGroups(t *testing.T) {
	items := []Item[int]{
		Group("outer", "outer",
			Leaf("a", "a", "", 0),
			Group("inner", "inner", Leaf("b", "b", "", 0)),
		),
	}

	// Inner stays collapsed until its own ID is expanded.
	flat := Flatten(items, map[string]bool{"outer": true})
	assert.Equal(t, []string{"outer", "a", "inner"}, flatIDs(flat))

	flat = Flatten(items, map[string]bool{"outer": true, "inner": true})
	require.Len(t, flat, 4)
	assert.Equal(t, []string{"outer", "a", "inner", "b"}, flatIDs(flat))
	assert.Equal(t, 2, flat[3].Depth)
	assert.Equal(t, "inner", flat[3].ParentID)
}

func TestCountSelected(t *testing.T) {
	tree := Group("g", "g",
		Leaf("a", "a", "", 0),
		Leaf("b", "b", "", 0),
		Group("sub", "sub", Leaf("c", "c", "", 0)),
	)

	c := CountSelected(tree, map[string]bool{})
	assert.Equal(t, Count{Selected: 0, Total: 3}, c)

	c = CountSelected(tree, map[string]bool{"a": true, "c": true})
	assert.Equal(t, Count{Selected: 2, Total: 3}, c)
	assert.LessOrEqual(t, c.Selected, c.Total)

	leaf := CountSelected(Leaf("x", "x", "", 0), map[string]bool{"x": true})
	assert.Equal(t, Count{Selected: 1, Total: 1}, leaf)

	empty := CountSelected(Group[int]("e", "e"), map[string]bool{"a": true})
	assert.Equal(t, Count{Selected: 0, Total: 0}, empty)
}

func TestCollectLeafIDs(t *testing.T) {
	tree := Group("g", "g",
		Leaf("a", "a", "", 0),
		Group("sub", "sub", Leaf("b", "b", "", 0)),
		Leaf("c", "c", "", 0),
	)

	assert.Equal(t, []string{"a", "b", "c"}, CollectLeafIDs(tree))
	assert.Equal(t, []string{"x"}, CollectLeafIDs(Leaf("x", "x", "", 0)))
	assert.Empty(t, CollectLeafIDs(Group[int]("e", "e")))
}

func TestCategorize(t *testing.T) {
	items := []Item[int]{
		Leaf("a", "a", "", 1),
		Group("g1", "review", Leaf("b", "b", "", 2)),
		Leaf("c", "c", "", 3),
		Group("g2", "docs", Leaf("d", "d", "", 4)),
	}

	cat := Categorize(items)
	require.Len(t, cat.Ungrouped, 2)
	assert.Equal(t, "a", cat.Ungrouped[0].ID)
	assert.Equal(t, "c", cat.Ungrouped[1].ID)

	require.Len(t, cat.Groups, 2)
	assert.Equal(t, "review", cat.Groups[0].Name)
	assert.Equal(t, "docs", cat.Groups[1].Name)
	require.Len(t, cat.Groups[0].Options, 1)
	assert.Equal(t, 2, cat.Groups[0].Options[0].Value)
}

func TestCategorizeNestedGroupBecomesSibling(t *testing.T) {
	items := []Item[int]{
		Group("outer", "outer",
			Leaf("a", "a", "", 1),
			Group("inner", "inner", Leaf("b", "b", "", 2)),
		),
	}

	cat := Categorize(items)
	assert.Empty(t, cat.Ungrouped)
	require.Len(t, cat.Groups, 2)

	// The nested group surfaces as its own top-level category; the outer
	// group keeps only its direct leaves.
	assert.Equal(t, "outer", cat.Groups[0].Name)
	require.Len(t, cat.Groups[0].Options, 1)
	assert.Equal(t, "a", cat.Groups[0].Options[0].ID)

	assert.Equal(t, "inner", cat.Groups[1].Name)
	require.Len(t, cat.Groups[1].Options, 1)
	assert.Equal(t, "b", cat.Groups[1].Options[0].ID)
}

func TestCategorizeKeepsEmptyGroup(t *testing.T) {
	cat := Categorize([]Item[int]{Group[int]("g", "empty")})
	require.Len(t, cat.Groups, 1)
	assert.Equal(t, "empty", cat.Groups[0].Name)
	assert.Empty(t, cat.Groups[0].Options)
}

func TestCategorizeMergesSameName(t *testing.T) {
	items := []Item[int]{
		Group("g1", "tools", Leaf("a", "a", "", 1)),
		Group("g2", "tools", Leaf("b", "b", "", 2)),
	}

	cat := Categorize(items)
	require.Len(t, cat.Groups, 1)
	assert.Equal(t, []string{"a", "b"}, optionIDs(cat.Groups[0].Options))
}

func flatIDs[T any](flat []FlatNode[T]) []string {
	ids := make([]string, 0, len(flat))
	for _, n := range flat {
		ids = append(ids, n.Item.ID)
	}
	return ids
}

func optionIDs[T any](opts []Option[T]) []string {
	ids := make([]string, 0, len(opts))
	for _, o := range opts {
		ids = append(ids, o.ID)
	}
	return ids
}
