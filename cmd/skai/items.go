package main

import (
	"github.com/pproenca/skai-sub000/cmd/skai/tui"
	"github.com/pproenca/skai-sub000/internal/catalog"
	"github.com/pproenca/skai-sub000/internal/paths"
)

// skillItems builds the pick-many tree from discovered entries: bare
// leaves for uncategorized skills, one group per category in discovery
// order.
func skillItems(entries []catalog.Entry) []tui.Item[catalog.Entry] {
	var items []tui.Item[catalog.Entry]
	groups := make(map[string]int)
	for _, e := range entries {
		leaf := tui.Leaf(e.Key, e.Name(), e.Skill.Description, e)
		if e.Category == "" {
			items = append(items, leaf)
			continue
		}
		i, ok := groups[e.Category]
		if !ok {
			items = append(items, tui.Group[catalog.Entry]("category:"+e.Category, e.Category))
			i = len(items) - 1
			groups[e.Category] = i
		}
		items[i].Children = append(items[i].Children, leaf)
	}
	return items
}

// managerRows converts installed entries into toggle-pending rows. Tabs
// come from the origin, but only when more than one origin is present, so
// a global-only scan does not grow a redundant tab.
func managerRows(entries []catalog.Entry) []tui.ManagerEntry {
	origins := make(map[string]bool)
	for _, e := range entries {
		origins[e.Origin] = true
	}
	multi := len(origins) > 1

	rows := make([]tui.ManagerEntry, 0, len(entries))
	for _, e := range entries {
		row := tui.ManagerEntry{
			Key:         e.Key,
			Label:       e.Name(),
			Description: e.Skill.Description,
			Source:      e.Origin,
			Enabled:     e.Skill.Enabled,
		}
		if multi {
			row.Category = e.Origin
		}
		rows = append(rows, row)
	}
	return rows
}

// scanInstalled discovers skills in the configured targets: --target
// alone when set, the project dir alone under --project, otherwise the
// global and project dirs together.
func scanInstalled() ([]catalog.Entry, error) {
	if flagTarget != "" {
		return catalog.Discover(flagTarget, "target")
	}
	if flagProject {
		return catalog.Discover(paths.ProjectSkills("."), "project")
	}
	entries, err := catalog.Discover(paths.GlobalSkills(), "global")
	if err != nil {
		return nil, err
	}
	project, err := catalog.Discover(paths.ProjectSkills("."), "project")
	if err != nil {
		return nil, err
	}
	return append(entries, project...), nil
}
