package ifaddr

// qualifies reports whether an entry participates in grouping. Only IPv4
// and IPv6 entries that actually carry address bytes count; link-layer and
// other families are invisible to the output.
func qualifies(e Entry) bool {
	return (e.Family == FamilyIPv4 || e.Family == FamilyIPv6) && len(e.Addr) > 0
}

// GroupEntries collapses the raw entry list into one Group per interface
// name. Group order follows the first qualifying appearance of each name
// and entries keep their original order within a group. An interface whose
// entries all fail to qualify produces no group at all.
func GroupEntries(entries []Entry) []Group {
	var groups []Group
	index := make(map[string]int, len(entries))
	for _, e := range entries {
		if !qualifies(e) {
			continue
		}
		i, ok := index[e.Name]
		if !ok {
			i = len(groups)
			index[e.Name] = i
			groups = append(groups, Group{Name: e.Name})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// filterByName keeps only the entries bound to the given interface name,
// preserving order.
func filterByName(entries []Entry, name string) []Entry {
	var matched []Entry
	for _, e := range entries {
		if e.Name == name {
			matched = append(matched, e)
		}
	}
	return matched
}
