package ifaddr

import (
	"bytes"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleEntries() []Entry {
	v6 := netip.MustParseAddr("2001:db8::1").As16()
	return []Entry{
		{Name: "eth0", Family: FamilyIPv4, Addr: []byte{192, 0, 2, 10}, Mask: []byte{255, 255, 255, 0}},
		{Name: "eth0", Family: FamilyIPv6, Addr: v6[:], Mask: ipv6Bytes("ffff:ffff:ffff:ffff::")},
		{Name: "lo", Family: FamilyIPv4, Addr: []byte{127, 0, 0, 1}},
	}
}

func TestRenderAll(t *testing.T) {
	var buf bytes.Buffer
	RenderAll(&buf, sampleEntries())

	want := "eth0:\n" +
		" - 192.0.2.10/24 (255.255.255.0)\n" +
		" - 2001:db8::1/64\n" +
		"\n" +
		"lo:\n" +
		" - 127.0.0.1\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderAllEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	RenderAll(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestRenderAllIsDeterministic(t *testing.T) {
	entries := sampleEntries()

	var first, second bytes.Buffer
	RenderAll(&first, entries)
	RenderAll(&second, entries)
	assert.Equal(t, first.String(), second.String())
}

func TestRenderSkipsUnconvertibleAddress(t *testing.T) {
	entries := []Entry{
		{Name: "eth0", Family: FamilyIPv4, Addr: []byte{192, 0, 2}, Mask: []byte{255, 255, 255, 0}},
		{Name: "eth0", Family: FamilyIPv4, Addr: []byte{192, 0, 2, 10}, Mask: []byte{255, 255, 255, 0}},
	}

	var buf bytes.Buffer
	RenderAll(&buf, entries)
	assert.Equal(t, "eth0:\n - 192.0.2.10/24 (255.255.255.0)\n\n", buf.String())
}

func TestRenderOne(t *testing.T) {
	var buf bytes.Buffer
	found := RenderOne(&buf, sampleEntries(), "lo")

	assert.True(t, found)
	assert.Equal(t, "lo:\n - 127.0.0.1\n\n", buf.String())
}

func TestRenderOneUnknownName(t *testing.T) {
	var buf bytes.Buffer
	found := RenderOne(&buf, sampleEntries(), "wlan0")

	assert.False(t, found)
	assert.Empty(t, buf.String())
}

func TestRenderOneInterfaceWithoutIPAddresses(t *testing.T) {
	entries := []Entry{
		{Name: "bond0", Family: FamilyOther, Addr: []byte{1, 2, 3, 4, 5, 6}},
	}

	var buf bytes.Buffer
	found := RenderOne(&buf, entries, "bond0")

	assert.False(t, found)
	assert.Empty(t, buf.String())
}

func TestRenderLinePrecedence(t *testing.T) {
	tests := []struct {
		name string
		f    FormattedAddress
		want string
	}{
		{"prefix and mask", FormattedAddress{Addr: "192.0.2.10", Prefix: 24, HasPrefix: true, Mask: "255.255.255.0"}, " - 192.0.2.10/24 (255.255.255.0)"},
		{"prefix only", FormattedAddress{Addr: "2001:db8::1", Prefix: 64, HasPrefix: true}, " - 2001:db8::1/64"},
		{"bare address", FormattedAddress{Addr: "192.0.2.10"}, " - 192.0.2.10"},
		{"zero prefix still prints", FormattedAddress{Addr: "10.0.0.1", Prefix: 0, HasPrefix: true, Mask: "0.0.0.0"}, " - 10.0.0.1/0 (0.0.0.0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderLine(tt.f))
		})
	}
}
