// Package ifaddr enumerates the host's network interfaces and formats
// their IP addresses as grouped, CIDR-annotated text.
package ifaddr

// Family identifies the address family of an Entry.
type Family int

const (
	FamilyOther Family = iota
	FamilyIPv4
	FamilyIPv6
)

// String returns a short human-readable family name for diagnostics.
func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "IPv4"
	case FamilyIPv6:
		return "IPv6"
	default:
		return "other"
	}
}

// Entry represents one observed binding of an address to an interface.
// Addr holds 4 bytes for IPv4 and 16 for IPv6; Mask is the same length as
// Addr, or nil when the OS reported no netmask.
type Entry struct {
	Name   string
	Family Family
	Addr   []byte
	Mask   []byte
}

// Group pairs an interface name with its IP entries in observed order.
type Group struct {
	Name    string
	Entries []Entry
}
