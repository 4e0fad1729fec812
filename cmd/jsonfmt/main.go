// Command jsonfmt reads JSON documents and writes them back through a
// jsonext codec: validated, with sorted keys and the requested layout.
//
//	jsonfmt -pretty < doc.json
//	jsonfmt -seq -ascii events.ndjson
//	jsonfmt -config codec.yaml -max-bytes 1048576 < doc.json
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/jsonext"
	"github.com/unkn0wn-root/jsonext/codec"
	"github.com/unkn0wn-root/jsonext/internal/util"
	jsonzap "github.com/unkn0wn-root/jsonext/log/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "jsonfmt:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("jsonfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pretty := fs.Bool("pretty", false, "indent nested values")
	indent := fs.Int("indent", 2, "spaces per level with -pretty")
	ascii := fs.Bool("ascii", false, "escape every non-ASCII character")
	dateFormat := fs.String("date-format", "", "Go time layout for timestamps")
	ordered := fs.Bool("ordered", false, "keep object keys in input order instead of sorting")
	exact := fs.Bool("exact", false, "keep decimals exact instead of rounding to float64")
	configPath := fs.String("config", "", "YAML file with codec options; flags override it")
	maxBytes := fs.Int("max-bytes", 0, "reject input larger than this (0 = no limit)")
	seq := fs.Bool("seq", false, "input is a sequence of values; write one per line")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log := newLogger(stderr, *verbose)
	defer func() { _ = log.Sync() }()

	var opts jsonext.Options
	if *configPath != "" {
		b, err := os.ReadFile(*configPath)
		if err != nil {
			return err
		}
		if opts, err = jsonext.ParseYAML(b); err != nil {
			return fmt.Errorf("config %s: %w", *configPath, err)
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pretty":
			opts.Pretty = *pretty
		case "indent":
			opts.Indent = *indent
		case "ascii":
			opts.EscapeNonASCII = *ascii
		case "date-format":
			opts.DateFormat = *dateFormat
		case "ordered":
			opts.OrderedObjects = *ordered
		case "exact":
			opts.ExactDecimals = *exact
		}
	})
	opts.Logger = jsonzap.Logger{L: log}
	c := jsonext.New(opts)

	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	limit := codec.Limit[[]byte]{Inner: codec.Raw{C: c}, MaxDecode: *maxBytes}
	if *seq {
		return formatSeq(c, &cappedReader{r: in, check: limit.Check}, stdout, log)
	}

	data, err := io.ReadAll(&cappedReader{r: in, check: limit.Check})
	if err != nil {
		return err
	}
	out, err := limit.Decode(data)
	if err != nil {
		return err
	}
	log.Debug("formatted",
		zap.Int("in", len(data)),
		zap.Int("out", len(out)),
		zap.String("sha", util.ShortHash(out)))
	_, err = stdout.Write(append(out, '\n'))
	return err
}

// formatSeq streams values one by one, so memory stays bounded by the
// largest single value.
func formatSeq(c *jsonext.Codec, in io.Reader, out io.Writer, log *zap.Logger) error {
	dec := c.NewDecoder(in)
	var line bytes.Buffer
	for n := 1; ; n++ {
		v, err := dec.Decode()
		if err == io.EOF {
			log.Debug("done", zap.Int("values", n-1))
			return nil
		}
		if err != nil {
			return fmt.Errorf("value %d: %w", n, err)
		}
		line.Reset()
		if err := c.EncodeTo(&line, v); err != nil {
			return fmt.Errorf("value %d: %w", n, err)
		}
		line.WriteByte('\n')
		if _, err := out.Write(line.Bytes()); err != nil {
			return err
		}
	}
}

// cappedReader fails once more bytes than allowed have been read.
type cappedReader struct {
	r     io.Reader
	n     int
	check func(n int) error
}

func (c *cappedReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	if cerr := c.check(c.n); cerr != nil {
		return n, cerr
	}
	return n, err
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	lvl := zapcore.WarnLevel
	if verbose {
		lvl = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl))
}
