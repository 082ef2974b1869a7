package aggregate

import "comanda/internal/model"

// Occupancy recomputes every table's status from the current open-tabs
// list: a table is BUSY when the first open tab with a matching table
// number exists, FREE otherwise. The returned slice is a fresh copy; the
// attached tab is a weak reference resolved on this reload only, never a
// stored link. If two open tabs reference the same table the first one in
// list order wins.
func Occupancy(tables []model.Table, openTabs []model.Tab) []model.Table {
	out := make([]model.Table, len(tables))
	for i, table := range tables {
		table.Tab = nil
		table.Status = model.TableFree
		for j := range openTabs {
			if openTabs[j].Status != model.TabOpen {
				continue
			}
			if openTabs[j].TableNumber == table.Number {
				tab := openTabs[j]
				table.Status = model.TableBusy
				table.Tab = &tab
				break
			}
		}
		out[i] = table
	}
	return out
}

// FreeTables returns only the tables currently marked FREE, preserving
// order. Used by the seat-customer flow, which offers free tables only.
func FreeTables(tables []model.Table) []model.Table {
	free := make([]model.Table, 0, len(tables))
	for _, t := range tables {
		if t.Status == model.TableFree {
			free = append(free, t)
		}
	}
	return free
}
