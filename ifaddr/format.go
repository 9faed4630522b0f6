package ifaddr

import (
	"fmt"
	"net/netip"
)

// FormattedAddress is the rendering form of a single entry. Prefix is only
// meaningful when HasPrefix is set; Mask is the dotted-decimal netmask and
// stays empty for IPv6 or when no renderable mask exists.
type FormattedAddress struct {
	Addr      string
	Prefix    int
	HasPrefix bool
	Mask      string
}

// AddressString converts raw address bytes to their canonical numeric text
// form, dotted-decimal for IPv4 and colon-hex for IPv6. No name resolution
// is ever performed.
func AddressString(family Family, addr []byte) (string, error) {
	switch family {
	case FamilyIPv4:
		if len(addr) != 4 {
			return "", fmt.Errorf("IPv4 address has %d bytes, want 4", len(addr))
		}
	case FamilyIPv6:
		if len(addr) != 16 {
			return "", fmt.Errorf("IPv6 address has %d bytes, want 16", len(addr))
		}
	default:
		return "", fmt.Errorf("unsupported address family %s", family)
	}
	ip, ok := netip.AddrFromSlice(addr)
	if !ok {
		return "", fmt.Errorf("invalid %s address bytes", family)
	}
	return ip.String(), nil
}

// FormatEntry converts an entry into its FormattedAddress. The prefix
// length is always derived from the netmask bits, never from an
// OS-reported prefix field.
func FormatEntry(e Entry) (FormattedAddress, error) {
	addr, err := AddressString(e.Family, e.Addr)
	if err != nil {
		return FormattedAddress{}, err
	}
	f := FormattedAddress{Addr: addr}
	if prefix, ok := PrefixLength(e.Mask); ok {
		f.Prefix = prefix
		f.HasPrefix = true
		if e.Family == FamilyIPv4 {
			f.Mask = maskString(e.Mask)
		}
	}
	return f, nil
}

// maskString renders a 4-byte netmask in dotted-decimal. Masks of any
// other length have no dotted form.
func maskString(mask []byte) string {
	if len(mask) != 4 {
		return ""
	}
	return fmt.Sprintf("%d.%d.%d.%d", mask[0], mask[1], mask[2], mask[3])
}
