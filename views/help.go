package views

import (
	"fmt"
	"strings"
)

// HelpView renders the banner, usage help and user-facing diagnostics
type HelpView struct {
	styles  *Styles
	version string
}

// NewHelpView creates a new help view
func NewHelpView(styles *Styles, version string) *HelpView {
	return &HelpView{
		styles:  styles,
		version: version,
	}
}

// RenderBanner creates the standard banner
func (v *HelpView) RenderBanner() string {
	return v.styles.Banner.Render(fmt.Sprintf("ifshow %s - Interface Address Viewer", v.version))
}

// RenderUsage generates the usage help text
func (v *HelpView) RenderUsage() string {
	lines := []string{
		v.RenderBanner(),
		"",
		v.styles.Section.Render("Usage:"),
		v.styles.Command.Render("  ifshow -a                     ") + v.styles.Text.Render("# Show all interfaces"),
		v.styles.Command.Render("  ifshow -i <interface_name>    ") + v.styles.Text.Render("# Show specific interface"),
		"",
		v.styles.Section.Render("Examples:"),
		v.styles.Command.Render("  ifshow -a"),
		v.styles.Command.Render("  ifshow -i eth0"),
		"",
	}
	return strings.Join(lines, "\n")
}

// RenderUsageError generates the message shown for a bad argument shape,
// followed by the usage help
func (v *HelpView) RenderUsageError(reason string) string {
	return v.styles.Error.Render(reason) + "\n\n" + v.RenderUsage()
}

// RenderNotFound generates the message for an interface with no IP
// addresses, whether it is absent or IP-less
func (v *HelpView) RenderNotFound(name string) string {
	return v.styles.Notice.Render(fmt.Sprintf("Interface '%s' not found or has no IP addresses.", name))
}

// RenderError generates the message for a fatal enumeration failure
func (v *HelpView) RenderError(err error) string {
	return v.styles.Error.Render(fmt.Sprintf("Error: %v", err))
}
