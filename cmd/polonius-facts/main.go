// The polonius-facts command parses one or more MIR programs and prints
// their borrow-check facts.
//
// Example: emit facts for a single file in the default textual format:
//
//	$ polonius-facts prog.mir
//
// Example: emit JSON for a batch of files, tracing each file's pipeline:
//
//	$ polonius-facts -json -trace-addr=localhost:6060 *.mir
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync/atomic"

	"golang.org/x/net/trace"
	"golang.org/x/sync/errgroup"

	"github.com/ecstatic-morse/polonius.next/internal/event"
	"github.com/ecstatic-morse/polonius.next/mir/emit"
	"github.com/ecstatic-morse/polonius.next/mir/facts"
	"github.com/ecstatic-morse/polonius.next/mir/parser"
	"github.com/ecstatic-morse/polonius.next/mir/render"
	"github.com/ecstatic-morse/polonius.next/mir/schemaversion"
)

var (
	jsonOutput    = flag.Bool("json", false, "emit facts as JSON instead of the textual format")
	simpleNodes   = flag.Bool("simple-nodes", false, "use single-letter CFG node names instead of block[idx]")
	schemaVersion = flag.String("schema-version", "", "fail if this build's fact schema major version does not match")
	traceAddr     = flag.String("trace-addr", "", "serve golang.org/x/net/trace's /debug/requests on this address")
)

func main() {
	flag.Parse()
	log := event.NewLogger(os.Stderr)

	if err := schemaversion.Check(*schemaVersion); err != nil {
		log.Errorf("%v", err)
		os.Exit(2)
	}

	if *traceAddr != "" {
		ln, err := listenTrace(*traceAddr)
		if err != nil {
			log.Errorf("starting -trace-addr listener: %v", err)
			os.Exit(2)
		}
		defer ln.Close()
		log.Log("trace listener started", event.Label{Key: "addr", Value: *traceAddr})
	}

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: polonius-facts [flags] file...")
		os.Exit(2)
	}

	var anyFailed atomic.Bool
	g, ctx := errgroup.WithContext(context.Background())
	outputs := make([][]byte, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			out, err := processFile(ctx, log, path)
			if err != nil {
				log.Errorf("%s: %v", path, err)
				anyFailed.Store(true)
				return nil // collect all failures rather than aborting the batch
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Errorf("%v", err)
		os.Exit(2)
	}

	for _, out := range outputs {
		os.Stdout.Write(out)
	}
	if anyFailed.Load() {
		os.Exit(1)
	}
}

// processFile runs one file through the full parse/resolve/emit/render
// pipeline, recovering any internal panic (a sanity-check assertion
// firing, or a malformed-but-syntactically-valid program tripping an
// unhandled case) into a returned error rather than letting it crash
// the whole batch.
func processFile(ctx context.Context, log *event.Logger, path string) (out []byte, err error) {
	ctx, done := event.StartSpan(ctx, "polonius.next/emit", path)
	defer func() { done(err) }()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error processing %s: %v", path, r)
		}
	}()

	src, err := parser.ReadSource(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	prog, err := parser.Parse(src, path)
	if err != nil {
		return nil, err
	}

	e := emit.New(prog, *simpleNodes)
	f := &facts.Facts{}
	e.Emit(f)

	if *jsonOutput {
		return render.JSON(f)
	}
	return []byte(render.Text(f)), nil
}

// listenTrace starts an HTTP listener serving x/net/trace's
// /debug/requests and /debug/events pages (registered on
// http.DefaultServeMux by the trace package itself on import). Any
// request is treated as authorized to see sensitive events: this is a
// local debugging aid for batch runs, not an exposed service.
func listenTrace(addr string) (net.Listener, error) {
	trace.AuthRequest = func(req *http.Request) (anySensitive, ok bool) { return true, true }
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	go http.Serve(ln, nil)
	return ln, nil
}
