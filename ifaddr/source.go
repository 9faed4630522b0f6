package ifaddr

import (
	"bytes"
	"fmt"
	"log"
	"net"
)

// Snapshot enumerates the host's interfaces once and copies every reported
// address binding into an owned Entry list. Enumeration completes before
// any formatting happens, so a failure here never interleaves with output.
func Snapshot() ([]Entry, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("enumerating interfaces: %w", err)
	}
	var entries []Entry
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			log.Printf("Skipping interface %s: %v", iface.Name, err)
			continue
		}
		for _, addr := range addrs {
			entries = append(entries, newEntry(iface.Name, addr))
		}
	}
	return entries, nil
}

// newEntry copies one OS-reported address into an Entry, classifying its
// family and detaching the bytes from the net package's values. Addresses
// that are neither IPv4 nor IPv6 come out as FamilyOther with no bytes.
func newEntry(name string, addr net.Addr) Entry {
	var ip net.IP
	var mask net.IPMask
	switch a := addr.(type) {
	case *net.IPNet:
		ip = a.IP
		mask = a.Mask
	case *net.IPAddr:
		ip = a.IP
	}

	e := Entry{Name: name, Family: FamilyOther}
	switch {
	case ip.To4() != nil:
		e.Family = FamilyIPv4
		e.Addr = bytes.Clone(ip.To4())
		if len(mask) == net.IPv4len {
			e.Mask = bytes.Clone(mask)
		}
	case len(ip) == net.IPv6len:
		e.Family = FamilyIPv6
		e.Addr = bytes.Clone(ip)
		if len(mask) == net.IPv6len {
			e.Mask = bytes.Clone(mask)
		}
	}
	return e
}
