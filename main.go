package main

import (
	"fmt"
	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"
	"os"
	ownIo "rectq/io"
	"rectq/region"
	"rectq/solving"
	"rectq/web"
	"strings"
)

const VERSION = "v0.1.0"

var cli struct {
	Logging string      `help:"Logging verbosity." enum:"info,debug,trace" short:"l" default:"info"`
	Version VersionFlag `help:"Print version information and quit" name:"version" short:"v"`
	Workers int         `help:"Number of goroutines searching rectangles. Zero uses one per CPU." short:"w" default:"0"`
	Solve   struct {
		Input string `help:"The input file. Either a text file with one 'x,y' pair per line or an .osm/.pbf file." placeholder:"<input-file>" arg:"" type:"existingfile"`
	} `cmd:"" help:"Prints the largest rectangle area with and without the allowed region constraint."`
	Region struct {
		Input  string `help:"The input file. Either a text file with one 'x,y' pair per line or an .osm/.pbf file." placeholder:"<input-file>" arg:"" type:"existingfile"`
		Output string `help:"The GeoJSON file to write." short:"o" default:"output.geojson"`
	} `cmd:"" help:"Writes the marked points, the allowed region and the largest rectangles as GeoJSON."`
	Render struct {
		Input    string `help:"The input file. Either a text file with one 'x,y' pair per line or an .osm/.pbf file." placeholder:"<input-file>" arg:"" type:"existingfile"`
		MaxCells int    `help:"Maximum number of cells to render." default:"10000"`
	} `cmd:"" help:"Prints the allowed region as character matrix."`
	Server struct {
		Port    string `help:"The port this server should listen to." short:"p" default:"8080"`
		TlsCert string `help:"The certificate file for TLS connections." type:"existingfile"`
		TlsKey  string `help:"The key file for TLS connections." type:"existingfile"`
	} `cmd:"" help:"Starts a server with an HTTP API solving point lists sent to it."`
}

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("rectq"),
		kong.Description("Finds the largest rectangle spanned by two marked lattice points."),
		kong.Vars{
			"version": VERSION,
		},
	)

	if strings.ToLower(cli.Logging) == "debug" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_DEBUG)
	} else if strings.ToLower(cli.Logging) == "trace" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	} else if strings.ToLower(cli.Logging) == "info" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_INFO)
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
	} else {
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
		sigolo.Fatalf("Unknown logging level '%s'", cli.Logging)
	}

	switch ctx.Command() {
	case "solve <input>":
		points, err := ownIo.ReadPoints(cli.Solve.Input)
		sigolo.FatalCheck(err)

		solution, err := solving.Solve(points, cli.Workers)
		sigolo.FatalCheck(err)

		fmt.Printf("Largest rectangle area: %d\n", solution.Unconstrained.Area)
		fmt.Printf("Largest allowed rectangle area: %d\n", solution.Constrained.Area)
	case "region <input>":
		points, err := ownIo.ReadPoints(cli.Region.Input)
		sigolo.FatalCheck(err)

		solution, err := solving.Solve(points, cli.Workers)
		sigolo.FatalCheck(err)

		rectangles := []ownIo.RectangleOutput{
			{Result: solution.Unconstrained, Constrained: false},
			{Result: solution.Constrained, Constrained: true},
		}
		err = ownIo.WriteResultAsGeoJsonFile(cli.Region.Output, solution.Points, solution.Region, rectangles)
		sigolo.FatalCheck(err)
	case "render <input>":
		points, err := ownIo.ReadPoints(cli.Render.Input)
		sigolo.FatalCheck(err)

		allowedRegion, err := region.BuildAllowedRegion(points)
		sigolo.FatalCheck(err)

		err = ownIo.RenderRegion(allowedRegion, cli.Render.MaxCells, os.Stdout)
		sigolo.FatalCheck(err)
	case "server":
		if cli.Server.TlsCert != "" && cli.Server.TlsKey != "" {
			web.StartServerTls(cli.Server.Port, cli.Server.TlsCert, cli.Server.TlsKey, cli.Workers)
		} else {
			web.StartServer(cli.Server.Port, cli.Workers)
		}
	default:
		sigolo.Errorf("Unknown command '%s'", ctx.Command())
	}
}
