package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/SoaOaoS/ifshow/ifaddr"
	"github.com/SoaOaoS/ifshow/views"
)

const version = "1.0.0"

var (
	styles = views.NewStyles()
	help   = views.NewHelpView(styles, version)
)

func init() {
	// Set up logging to file when debugging is requested via the
	// environment; the CLI surface has no room for a debug flag
	if os.Getenv("IFSHOW_DEBUG") != "" {
		f, err := os.OpenFile("debug.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("error opening debug.log: %v", err)
		}
		log.SetOutput(f)
	} else {
		// Disable logging when debug is off
		log.SetOutput(io.Discard)
	}
}

func main() {
	allFlag := flag.Bool("a", false, "Show all interfaces")
	ifaceFlag := flag.String("i", "", "Show a specific interface by name")
	flag.Usage = func() {
		fmt.Println(help.RenderUsage())
	}
	flag.Parse()

	os.Exit(run(*allFlag, *ifaceFlag, flag.Args()))
}

// run dispatches one invocation and returns its exit code. Exactly one of
// -a or -i must be present, with no stray arguments.
func run(all bool, iface string, args []string) int {
	switch {
	case len(args) > 0:
		fmt.Println(help.RenderUsageError(fmt.Sprintf("Unrecognized argument: '%s'. Please refer to the following:", args[0])))
		return 1
	case all && iface != "":
		fmt.Println(help.RenderUsageError("Error: '-a' must be used alone."))
		return 1
	case all:
		return showAll()
	case iface != "":
		return showInterface(iface)
	default:
		fmt.Println(help.RenderUsageError("Unrecognized number of arguments. Please refer to the following:"))
		return 1
	}
}

// showAll prints every interface that carries at least one IP address.
func showAll() int {
	entries, err := ifaddr.Snapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, help.RenderError(err))
		return 1
	}
	ifaddr.RenderAll(os.Stdout, entries)
	return 0
}

// showInterface prints a single interface by exact name. An interface
// without IP addresses reports as not found; that is a normal outcome,
// not a failure.
func showInterface(name string) int {
	entries, err := ifaddr.Snapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, help.RenderError(err))
		return 1
	}
	if !ifaddr.RenderOne(os.Stdout, entries, name) {
		fmt.Println(help.RenderNotFound(name))
	}
	return 0
}
