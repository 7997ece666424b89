// Command polytri triangulates polygon faces read from an OBJ file or from a
// plain list of points.
//
// Points input is newline separated "x y [z]" points, with each polygon
// separated by an extra newline.
package main

import (
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polytri"
	"github.com/osuushi/polytri/dbg"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("polytri", "Split polygon faces into triangles.")
	configPath = app.Flag("config", "YAML configuration file.").Short('c').ExistingFile()
	inputPath  = app.Flag("input", "Input file. Defaults to stdin.").Short('i').String()
	format     = app.Flag("format", "Input format, obj or points.").Short('f').Enum("obj", "points")
	noFallback = app.Flag("no-fallback", "Keep partial results instead of emitting the fallback fan.").Bool()
	logLevel   = app.Flag("log-level", "Log level (debug, info, warn, error).").String()
	noColor    = app.Flag("no-color", "Disable colored output.").Bool()

	triangulateCmd = app.Command("triangulate", "Write a triangulated OBJ.").Default()
	outputPath     = triangulateCmd.Flag("output", "Output file. Defaults to stdout.").Short('o').String()

	checkCmd = app.Command("check", "Report how every face triangulates.")
	dump     = checkCmd.Flag("dump", "Pretty-print the full report for every face.").Bool()

	renderCmd = app.Command("render", "Draw each face's triangulation to a PNG.")
	renderDir = renderCmd.Flag("dir", "Output directory.").String()
	imgcatOut = renderCmd.Flag("imgcat", "Also print images to the terminal (iTerm only).").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := run(command); err != nil {
		app.Fatalf("%v", err)
	}
}

// applyFlags lays command line flags over the configuration file.
func applyFlags(cfg *Config) {
	if *format != "" {
		cfg.Format = *format
	}
	if *noFallback {
		cfg.Fallback = false
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *noColor {
		cfg.Color = false
	}
	if *renderDir != "" {
		cfg.Render.Dir = *renderDir
	}
}

func run(command string) (err error) {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	applyFlags(&cfg)
	if err := cfg.validate(); err != nil {
		return err
	}

	logger, err := cfg.Log.build()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	doc, err := readInput(*inputPath, cfg.Format)
	if err != nil {
		return err
	}
	logger.Debug("read input",
		zap.String("document", dbg.Name(doc)),
		zap.Int("vertices", len(doc.Vertices)),
		zap.Int("faces", len(doc.Faces)))

	opts := polytri.DefaultOptions()
	opts.EnableConvexFallback = cfg.Fallback
	opts.Logger = logger

	switch command {
	case renderCmd.FullCommand():
		return renderFaces(doc, opts, cfg.Render, *imgcatOut, logger)
	case checkCmd.FullCommand():
		result, err := polytri.TriangulateMesh(doc.Vertices, doc.FaceIDs(), opts)
		writeCheck(os.Stdout, aurora.NewAurora(cfg.Color), doc, result, *dump)
		return err
	}

	result, meshErr := polytri.TriangulateMesh(doc.Vertices, doc.FaceIDs(), opts)
	for _, e := range multierr.Errors(meshErr) {
		logger.Error("bad face", zap.Error(e))
	}
	out, closeOut, err := openOutput(*outputPath)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, closeOut()) }()
	if err := writeOBJ(out, doc, result); err != nil {
		return err
	}
	if meshErr != nil {
		return errors.Errorf("%d faces referenced missing vertices", len(multierr.Errors(meshErr)))
	}
	return nil
}

func readInput(path, format string) (*Document, error) {
	if path == "" {
		return readDocument(os.Stdin, format)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()
	return readDocument(f, format)
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "creating output")
	}
	return f, f.Close, nil
}
