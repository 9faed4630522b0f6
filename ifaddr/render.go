package ifaddr

import (
	"fmt"
	"io"
	"log"
)

// Render writes each group as a header line naming the interface, one line
// per address in group order, and a trailing blank line. An entry whose
// address cannot be converted is skipped; the rest of its group still
// prints.
func Render(w io.Writer, groups []Group) {
	for _, g := range groups {
		fmt.Fprintf(w, "%s:\n", g.Name)
		for _, e := range g.Entries {
			f, err := FormatEntry(e)
			if err != nil {
				log.Printf("Skipping address on %s: %v", g.Name, err)
				continue
			}
			fmt.Fprintln(w, renderLine(f))
		}
		fmt.Fprintln(w)
	}
}

// renderLine picks one of the three address line forms, in precedence
// order: prefix with dotted mask, prefix only, bare address.
func renderLine(f FormattedAddress) string {
	switch {
	case f.HasPrefix && f.Mask != "":
		return fmt.Sprintf(" - %s/%d (%s)", f.Addr, f.Prefix, f.Mask)
	case f.HasPrefix:
		return fmt.Sprintf(" - %s/%d", f.Addr, f.Prefix)
	default:
		return fmt.Sprintf(" - %s", f.Addr)
	}
}

// RenderAll writes every group derived from the raw entry list in
// first-seen order. A host with no IP-bearing interfaces produces no
// output at all.
func RenderAll(w io.Writer, entries []Entry) {
	Render(w, GroupEntries(entries))
}

// RenderOne writes the group for a single interface name and reports
// whether that interface had any qualifying addresses. An interface that
// does not exist and one that only carries non-IP addresses are
// indistinguishable here; both report false.
func RenderOne(w io.Writer, entries []Entry, name string) bool {
	groups := GroupEntries(filterByName(entries, name))
	if len(groups) == 0 {
		return false
	}
	Render(w, groups)
	return true
}
