// Package debug defines the pprof, profiling, and tracing flags shared by
// the GIX daemons, together with the Setup/Exit lifecycle hooks daemon
// mains call around their run loop.
package debug

import (
	"fmt"
	"net/http"
	_ "net/http/pprof" // Registers pprof handlers on the default mux.
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithField("prefix", "debug")

var (
	// PProfFlag enables the pprof HTTP server.
	PProfFlag = &cli.BoolFlag{
		Name:  "pprof",
		Usage: "Enable the pprof HTTP server",
	}
	// PProfAddrFlag defines the pprof server listening interface.
	PProfAddrFlag = &cli.StringFlag{
		Name:  "pprofaddr",
		Usage: "pprof HTTP server listening interface",
		Value: "127.0.0.1",
	}
	// PProfPortFlag defines the pprof server listening port.
	PProfPortFlag = &cli.IntFlag{
		Name:  "pprofport",
		Usage: "pprof HTTP server listening port",
		Value: 6060,
	}
	// MemProfileRateFlag defines the heap profiling sample rate.
	MemProfileRateFlag = &cli.IntFlag{
		Name:  "memprofilerate",
		Usage: "Turn on memory profiling with the given rate",
		Value: runtime.MemProfileRate,
	}
	// CPUProfileFlag writes a CPU profile to the given file.
	CPUProfileFlag = &cli.StringFlag{
		Name:  "cpuprofile",
		Usage: "Write CPU profile to the given file",
	}
	// TraceFlag writes an execution trace to the given file.
	TraceFlag = &cli.StringFlag{
		Name:  "trace",
		Usage: "Write execution trace to the given file",
	}
)

// Flags holds every debug flag for convenient registration in daemon mains.
var Flags = []cli.Flag{
	PProfFlag,
	PProfAddrFlag,
	PProfPortFlag,
	MemProfileRateFlag,
	CPUProfileFlag,
	TraceFlag,
}

type handler struct {
	mu        sync.Mutex
	cpuFile   *os.File
	traceFile *os.File
}

var glogger = new(handler)

// Setup initializes profiling based on the CLI flags. It should be called
// as early as possible in the program.
func Setup(ctx *cli.Context) error {
	// profiling, tracing
	runtime.MemProfileRate = ctx.Int(MemProfileRateFlag.Name)
	if traceFile := ctx.String(TraceFlag.Name); traceFile != "" {
		if err := glogger.startGoTrace(traceFile); err != nil {
			return err
		}
	}
	if cpuFile := ctx.String(CPUProfileFlag.Name); cpuFile != "" {
		if err := glogger.startCPUProfile(cpuFile); err != nil {
			return err
		}
	}

	// pprof server
	if ctx.Bool(PProfFlag.Name) {
		address := fmt.Sprintf("%s:%d", ctx.String(PProfAddrFlag.Name), ctx.Int(PProfPortFlag.Name))
		startPProf(address)
	}
	return nil
}

// Exit stops all running profiles, flushing their output to the respective
// files.
func Exit(ctx *cli.Context) {
	if traceFile := ctx.String(TraceFlag.Name); traceFile != "" {
		if err := glogger.stopGoTrace(); err != nil {
			log.WithError(err).Error("Failed to stop go tracing")
		}
	}
	if cpuFile := ctx.String(CPUProfileFlag.Name); cpuFile != "" {
		if err := glogger.stopCPUProfile(); err != nil {
			log.WithError(err).Error("Failed to stop CPU profiling")
		}
	}
}

func startPProf(address string) {
	log.WithField("addr", fmt.Sprintf("http://%s/debug/pprof", address)).Info("Starting pprof server")
	go func() {
		if err := http.ListenAndServe(address, nil); err != nil {
			log.WithError(err).Error("Failure in running pprof server")
		}
	}()
}

func (h *handler) startGoTrace(file string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.traceFile != nil {
		return errors.New("trace already in progress")
	}
	f, err := os.Create(file) // #nosec G304
	if err != nil {
		return err
	}
	if err := trace.Start(f); err != nil {
		if err := f.Close(); err != nil {
			return err
		}
		return err
	}
	h.traceFile = f
	log.WithField("file", file).Info("Go tracing started")
	return nil
}

func (h *handler) stopGoTrace() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	trace.Stop()
	if h.traceFile == nil {
		return errors.New("trace not in progress")
	}
	log.WithField("file", h.traceFile.Name()).Info("Done writing go trace")
	err := h.traceFile.Close()
	h.traceFile = nil
	return err
}

func (h *handler) startCPUProfile(file string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cpuFile != nil {
		return errors.New("CPU profiling already in progress")
	}
	f, err := os.Create(file) // #nosec G304
	if err != nil {
		return err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		if err := f.Close(); err != nil {
			return err
		}
		return err
	}
	h.cpuFile = f
	log.WithField("file", file).Info("CPU profiling started")
	return nil
}

func (h *handler) stopCPUProfile() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	pprof.StopCPUProfile()
	if h.cpuFile == nil {
		return errors.New("CPU profiling not in progress")
	}
	log.WithField("file", h.cpuFile.Name()).Info("Done writing CPU profile")
	err := h.cpuFile.Close()
	h.cpuFile = nil
	return err
}
