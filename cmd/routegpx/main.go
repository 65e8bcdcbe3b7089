package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/kong"
	"github.com/froest/routegpx"
	routeetree "github.com/froest/routegpx/etree"
	"github.com/froest/routegpx/export"
	routegoquery "github.com/froest/routegpx/goquery"
	routeolc "github.com/froest/routegpx/olc"
	routeslog "github.com/froest/routegpx/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Writer serializes the GPX output. Tests substitute it to exercise
	// write-failure handling.
	Writer routegpx.WaypointWriter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Writer: routeetree.NewWriter()}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input   string `arg:"" help:"Saved route page (the full rendered DOM, saved from a browser; not the raw server response)"`
	Output  string `arg:"" help:"GPX file to write"`
	Anchor  string `placeholder:"LAT,LNG" help:"Reference point for shortened location codes with no earlier resolved stop"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
}

// Run executes the CLI with the given arguments.
//
// Warnings are printed to stderr before any exit, success or failure. The
// output file is created only once at least one waypoint is known to exist,
// and is removed again if writing it fails.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("routegpx"),
		kong.Description("Convert a saved delivery-route page into a GPX waypoint file. "+
			"Output is best-effort: always check the warnings against the route sheet. "+
			"Waypoint descriptions carry addresses and delivery notes, so treat the file as personal data."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	defaultAnchor, err := parseAnchor(cli.Anchor)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	var extractor routegpx.Extractor = routegoquery.NewExtractor()
	extractor = routeslog.NewLoggingExtractor(extractor, logger)

	var resolver routegpx.Resolver = routeolc.NewResolver()
	resolver = routeslog.NewLoggingResolver(resolver, logger)

	raw, err := os.ReadFile(cli.Input)
	if err != nil {
		return routegpx.Errorf(routegpx.EINPUT, "cannot read %s: %v", cli.Input, err)
	}
	if !utf8.Valid(raw) {
		return routegpx.Errorf(routegpx.EINPUT, "%s is not valid UTF-8; save the page again with UTF-8 encoding", cli.Input)
	}

	result := extractor.Extract(string(raw))
	waypoints, exportWarnings := export.Waypoints(result, resolver, defaultAnchor)

	for _, w := range result.Warnings {
		fmt.Fprintln(stderr, "warning:", w)
	}
	for _, w := range exportWarnings {
		fmt.Fprintln(stderr, "warning:", w)
	}

	if len(result.Stops) == 0 {
		return routegpx.Errorf(routegpx.EEXTRACT, "no usable stops found in %s", cli.Input)
	}
	if len(waypoints) == 0 {
		return routegpx.Errorf(routegpx.EEXTRACT, "no stops resolved to coordinates; not writing %s", cli.Output)
	}

	f, err := os.Create(cli.Output)
	if err != nil {
		return routegpx.Errorf(routegpx.EOUTPUT, "cannot create %s: %v", cli.Output, err)
	}
	if err := m.Writer.WriteGPX(f, result.Title, waypoints); err != nil {
		_ = f.Close()
		_ = os.Remove(cli.Output)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(cli.Output)
		return routegpx.Errorf(routegpx.EOUTPUT, "cannot finish writing %s: %v", cli.Output, err)
	}

	fmt.Fprintf(stdout, "wrote %d waypoint(s) to %s\n", len(waypoints), cli.Output)
	return nil
}

// parseAnchor parses the optional --anchor LAT,LNG flag.
func parseAnchor(raw string) (*routegpx.Coordinates, error) {
	if raw == "" {
		return nil, nil
	}
	latText, lngText, found := strings.Cut(raw, ",")
	if !found {
		return nil, routegpx.Errorf(routegpx.EINVALID, "anchor must be LAT,LNG, got %q", raw)
	}
	c, status := routegpx.ParseCoordinates(latText, lngText)
	if status != routegpx.FieldValid {
		return nil, routegpx.Errorf(routegpx.EINVALID, "anchor %q is not a valid coordinate pair", raw)
	}
	return &c, nil
}
