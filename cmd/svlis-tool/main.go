// Command svlis-tool is a thin CLI over the kernel packages: it reads a
// .svlis stream, reports Stats()-style counts for the model it contains,
// and optionally re-divides and writes the result back out (SPEC_FULL.md
// §4.9). It renders nothing and parses no picture formats, staying inside
// spec.md §1's explicit exclusions — a consumer of the core operations,
// not a contributor of algorithmic depth.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/svlis-go/svlis/model"
	"github.com/svlis-go/svlis/report"
	"github.com/svlis-go/svlis/serial"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "svlis-tool:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("svlis-tool", flag.ContinueOnError)
	in := fs.String("in", "-", "input .svlis stream (\"-\" for stdin)")
	out := fs.String("out", "", "output .svlis stream for -divide (\"-\" for stdout, empty to skip)")
	divide := fs.Bool("divide", false, "re-divide the model read from -in before reporting/writing")
	depth := fs.Int("depth-limit", model.DefaultLimits().DepthLimit, "maximum subdivision depth for -divide")
	minVolume := fs.Float64("min-volume", model.DefaultLimits().MinVolume, "minimum box volume worth subdividing for -divide")
	minPrims := fs.Int("min-prim-count", model.DefaultLimits().MinPrimCount, "minimum live primitive count worth subdividing for -divide")
	verbose := fs.Bool("v", false, "enable debug-level logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	report.SetDefault(report.Default())

	inFile, err := openIn(*in)
	if err != nil {
		return err
	}
	defer inFile.Close()

	r, err := serial.NewReader(inFile)
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	m, err := r.ReadModel()
	if err != nil {
		return fmt.Errorf("read model: %w", err)
	}

	printStats(os.Stdout, "input", m)

	if *divide {
		limits := model.NewLimits(
			model.WithDepthLimit(*depth),
			model.WithMinVolume(*minVolume),
			model.WithMinPrimCount(*minPrims),
		)
		m = model.Divide(m, limits, model.DefaultDecision)
		printStats(os.Stdout, "divided", m)
	}

	if *out == "" {
		return nil
	}
	outFile, err := openOut(*out)
	if err != nil {
		return err
	}
	defer outFile.Close()

	w := serial.NewWriter(outFile)
	w.WriteModel(m)
	return w.Flush()
}

func printStats(w io.Writer, label string, m *model.Model) {
	s := model.WalkStats(m)
	fmt.Fprintf(w, "%s: nodes=%d leaves=%d const_leaves=%d max_depth=%d min_leaf_depth=%d\n",
		label, s.Nodes, s.Leaves, s.ConstLeaves, s.MaxDepth, s.MinLeafDepth)
}

func openIn(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOut(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
