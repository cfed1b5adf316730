// Command chunkz reports where the first run of distinct bytes ends in an
// input file, for one or more run lengths.
//
// Run with: go run ./cmd/chunkz -input inputs/day-06.txt
// Custom sizes: go run ./cmd/chunkz -input in.txt -sizes 4,8,14
// Throughput stats: go run ./cmd/chunkz -input in.txt -stats 1s
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zoobzio/chunkz"
)

// env carries the process collaborators so tests can swap them.
type env struct {
	stdout io.Writer
	logger *log.Logger
	clock  chunkz.Clock
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("chunkz: ")

	e := env{stdout: os.Stdout, logger: log.Default(), clock: chunkz.RealClock}
	if err := run(os.Args[1:], e); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, e env) error {
	fs := flag.NewFlagSet("chunkz", flag.ContinueOnError)
	input := fs.String("input", "inputs/day-06.txt", "path to the puzzle input")
	sizeList := fs.String("sizes", "4,14", "comma separated window sizes")
	stats := fs.Duration("stats", 0, "stream windows through a monitor, logging throughput at this interval (0 disables)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sizes, err := parseSizes(*sizeList)
	if err != nil {
		return err
	}

	for i, size := range sizes {
		var pos int
		if *stats != 0 {
			pos, err = scanMonitored(*input, size, *stats, e)
		} else {
			pos, err = scan(*input, size)
		}
		if err != nil {
			return fmt.Errorf("size %d: %w", size, err)
		}

		if pos == chunkz.NotFound {
			e.logger.Printf("no run of %d distinct bytes in %s", size, *input)
		}

		fmt.Fprintf(e.stdout, "%s: %d\n", label(i, size), pos)
	}

	return nil
}

func openInput(path string) (*os.File, *chunkz.ReaderSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, chunkz.NewReaderSource(f).WithTrimEOL(), nil
}

func scan(path string, size int) (int, error) {
	f, src, err := openInput(path)
	if err != nil {
		return chunkz.NotFound, err
	}
	defer f.Close()

	pos, err := chunkz.FirstDistinct[byte](src, size)
	if err != nil {
		return chunkz.NotFound, err
	}
	if err := src.Err(); err != nil {
		return chunkz.NotFound, err
	}
	return pos, nil
}

// scanMonitored runs the input through IndexedChunker and a Monitor, logging
// window throughput every interval and once when the scan stops.
func scanMonitored(path string, size int, interval time.Duration, e env) (int, error) {
	chunker, err := chunkz.NewIndexedChunker[byte](size)
	if err != nil {
		return chunkz.NotFound, err
	}

	monitor, err := chunkz.NewMonitor[chunkz.Window[byte]](interval, func(s chunkz.StreamStats) {
		e.logger.Printf("size %d: %d windows (%.1f/s)", size, s.Count, s.Rate)
	})
	if err != nil {
		return chunkz.NotFound, err
	}
	monitor.WithClock(e.clock)

	f, src, err := openInput(path)
	if err != nil {
		return chunkz.NotFound, err
	}
	defer f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bytes, fed := feed(ctx, src)
	windows := monitor.Process(ctx, chunker.Process(ctx, bytes))

	pos, err := chunkz.FirstDistinctIn(ctx, windows)

	cancel()
	//nolint:revive // empty-block: wait for the monitor's final report
	for range windows {
	}
	<-fed

	if err != nil {
		return chunkz.NotFound, err
	}
	if err := src.Err(); err != nil {
		return chunkz.NotFound, err
	}
	return pos, nil
}

// feed pushes src onto a channel until src ends or ctx is done. The second
// channel closes once src is no longer being read.
func feed(ctx context.Context, src chunkz.Source[byte]) (<-chan byte, <-chan struct{}) {
	out := make(chan byte)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(out)

		for b, ok := src.Next(); ok; b, ok = src.Next() {
			select {
			case out <- b:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, done
}

func label(i, size int) string {
	if i < 2 {
		return fmt.Sprintf("Part%d", i+1)
	}
	return fmt.Sprintf("Size %d", size)
}

func parseSizes(list string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parsing size %q: %w", field, err)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, errors.New("no window sizes given")
	}
	return sizes, nil
}
