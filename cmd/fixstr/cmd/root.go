package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/mhr3/fixstr/strarray"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// options holds the flags shared by every operation.
type options struct {
	encoding  string
	itemsize  int
	workers   int
	chunkSize int
	trace     string
}

// NewRootCmd builds the fixstr command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "fixstr",
		Short: "Element-wise string operations over stdin lines",
		Long: `fixstr reads one string per line from stdin, stores the lines as an
array of the selected encoding and applies one operation to every element.
Results are written one per line.

Encodings:
  ascii  - one byte per character, NUL padded to the item size
  utf32  - four bytes per character, NUL padded to the item size
  utf8   - variable width, no padding

Examples:
  printf 'a-b\nc\n' | fixstr find -
  printf '  x  \n' | fixstr strip --side left
  printf 'hi\n' | fixstr --encoding utf32 center 6 --fill '*'`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupTracing(cmd.ErrOrStderr(), o.trace)
		},
	}

	def := strarray.DefaultConfig()
	flags := root.PersistentFlags()
	flags.StringVarP(&o.encoding, "encoding", "e", "utf8", "element encoding (ascii, utf32, utf8)")
	flags.IntVar(&o.itemsize, "itemsize", 0, "bytes per element for fixed encodings (0: smallest fitting)")
	flags.IntVarP(&o.workers, "workers", "w", def.Workers, "maximum number of concurrent workers")
	flags.IntVar(&o.chunkSize, "chunk-size", def.ChunkSize, "elements handed to a worker at once")
	flags.StringVar(&o.trace, "trace", "error", "trace level (error, info, debug)")

	root.AddCommand(
		newFindCmd(o, "find", (*strarray.Runner).Find),
		newFindCmd(o, "rfind", (*strarray.Runner).RFind),
		newFindCmd(o, "index", (*strarray.Runner).Index),
		newFindCmd(o, "rindex", (*strarray.Runner).RIndex),
		newFindCmd(o, "count", (*strarray.Runner).Count),
		newMatchCmd(o, "startswith", (*strarray.Runner).StartsWith),
		newMatchCmd(o, "endswith", (*strarray.Runner).EndsWith),
		newStripCmd(o),
		newReplaceCmd(o),
		newExpandTabsCmd(o),
		newPadCmd(o, "ljust", "Pads every line on the right to width characters"),
		newPadCmd(o, "rjust", "Pads every line on the left to width characters"),
		newPadCmd(o, "center", "Centers every line in width characters"),
		newZFillCmd(o),
		newLenCmd(o),
		newIsCmd(o),
		newPartitionCmd(o),
		newSortCmd(o),
	)
	return root
}

// Execute runs the fixstr command line.
func Execute() error {
	return NewRootCmd().Execute()
}

func setupTracing(w io.Writer, level string) {
	tracer := gologadapter.New()
	tracer.SetOutput(w)
	tracer.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return tracer }))
}

func (o *options) runner() *strarray.Runner {
	return strarray.NewRunner(strarray.Config{Workers: o.workers, ChunkSize: o.chunkSize})
}

// readArray stores the lines of r in an array of the selected encoding.
func (o *options) readArray(r io.Reader) (*strarray.Array, error) {
	enc, err := strarray.ParseEncoding(o.encoding)
	if err != nil {
		return nil, err
	}
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	tracing.Select("fixstr").Infof("read %d lines", len(lines))
	return strarray.FromStrings(enc, o.itemsize, lines)
}

// transform reads the input array, applies fn and prints the resulting
// strings.
func (o *options) transform(cmd *cobra.Command, fn func(ctx context.Context, r *strarray.Runner, a *strarray.Array) (*strarray.Array, error)) error {
	a, err := o.readArray(cmd.InOrStdin())
	if err != nil {
		return err
	}
	out, err := fn(cmd.Context(), o.runner(), a)
	if err != nil {
		return err
	}
	return printLines(cmd.OutOrStdout(), out.Strings())
}

func printLines[T any](w io.Writer, vals []T) error {
	bw := bufio.NewWriter(w)
	for _, v := range vals {
		fmt.Fprintln(bw, v)
	}
	return bw.Flush()
}
