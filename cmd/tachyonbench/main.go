// Command tachyonbench encodes a document repeatedly into one reused buffer
// and reports throughput, optionally against jsoniter and with pprof output.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	jsoniter "github.com/json-iterator/go"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/pflag"

	"github.com/rawbytedev/tachyon"
	"github.com/rawbytedev/tachyon/internal/fixture"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	cfg, err := parseArgs(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		level.Error(logger).Log("msg", "invalid arguments", "err", err)
		os.Exit(2)
	}
	if err := run(cfg, logger, os.Stdout); err != nil {
		level.Error(logger).Log("msg", "run failed", "err", err)
		os.Exit(1)
	}
}

var sampleTags = []tachyon.Value{tachyon.String("eu-west"), tachyon.String("canary")}

// sample is encoded when no fixture is given.
var sample = tachyon.Obj(
	tachyon.KV("service", tachyon.String("checkout")),
	tachyon.KV("level", tachyon.String("info")),
	tachyon.KV("message", tachyon.String("order placed\n\tid=42 \"priority\"")),
	tachyon.KV("latency_ms", tachyon.Number(12.75)),
	tachyon.KV("retries", tachyon.Number(0)),
	tachyon.KV("ok", tachyon.True),
	tachyon.KV("parent", tachyon.Null),
	tachyon.KV("trace", tachyon.Undefined),
	tachyon.KV("tags", tachyon.ArrayOf(sampleTags)),
)

func run(cfg Config, logger log.Logger, stdout io.Writer) error {
	v := sample
	if cfg.Fixture != "" {
		var err error
		if v, err = fixture.LoadFile(cfg.Fixture); err != nil {
			return fmt.Errorf("load fixture: %w", err)
		}
		level.Debug(logger).Log("msg", "loaded fixture", "path", cfg.Fixture, "kind", v.Kind())
	}

	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	enc := tachyon.NewEncoder(tachyon.Options{NoEscape: cfg.NoEscape})
	buf := tachyon.NewBuffer(cfg.Capacity)
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		buf.Reset()
		if err := enc.Encode(buf, v); err != nil {
			return fmt.Errorf("encode (capacity %d): %w", cfg.Capacity, err)
		}
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	level.Info(logger).Log(
		"msg", "encoded",
		"iterations", cfg.Iterations,
		"bytes", buf.Len(),
		"no_escape", cfg.NoEscape,
		"ns_per_op", elapsed.Nanoseconds()/int64(cfg.Iterations),
		"allocs", after.Mallocs-before.Mallocs,
	)

	if cfg.Compare {
		generic := fixture.ToAny(v)
		var out []byte
		start := time.Now()
		for i := 0; i < cfg.Iterations; i++ {
			var err error
			if out, err = jsoniter.ConfigFastest.Marshal(generic); err != nil {
				return fmt.Errorf("jsoniter: %w", err)
			}
		}
		level.Info(logger).Log(
			"msg", "jsoniter baseline",
			"bytes", len(out),
			"ns_per_op", time.Since(start).Nanoseconds()/int64(cfg.Iterations),
		)
	}

	if cfg.Compress {
		n, err := compressedSize(buf.Bytes())
		if err != nil {
			return err
		}
		level.Info(logger).Log("msg", "zstd", "bytes", buf.Len(), "compressed_bytes", n)
	}

	if cfg.Print {
		if _, err := buf.WriteTo(stdout); err != nil {
			return err
		}
		if _, err := io.WriteString(stdout, "\n"); err != nil {
			return err
		}
	}

	if cfg.MemProfile != "" {
		f, err := os.Create(cfg.MemProfile)
		if err != nil {
			return err
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("write heap profile: %w", err)
		}
	}
	return nil
}

func compressedSize(p []byte) (int, error) {
	w, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, fmt.Errorf("zstd: %w", err)
	}
	defer w.Close()
	return len(w.EncodeAll(p, nil)), nil
}
