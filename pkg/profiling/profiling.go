// Package profiling writes pprof profiles requested from the command line.
package profiling

import (
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile
var pprofWriteHeapProfile = func(w io.Writer) error {
	return pprof.WriteHeapProfile(w)
}

// DoCPUProfiling starts CPU profiling into filePath and returns the func that stops it.
// Failures are logged and yield a no-op stop func.
func DoCPUProfiling(filePath string) (stop func()) {
	f, err := osCreate(filePath)
	if err != nil {
		logrus.WithField("path", filePath).WithError(err).Error("could not create CPU profile")
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		logrus.WithField("path", filePath).WithError(err).Error("could not start CPU profile")
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}
}

// DoMemProfiling returns a func that writes a heap profile to filePath.
// The profile is taken once, when the returned func runs.
func DoMemProfiling(filePath string) (write func()) {
	return func() {
		f, err := osCreate(filePath)
		if err != nil {
			logrus.WithField("path", filePath).WithError(err).Error("could not create memory profile")
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			logrus.WithField("path", filePath).WithError(err).Error("could not write memory profile")
		}
	}
}
