// Copyright (c) 2025, Lux Industries Inc
// SPDX-License-Identifier: BSD-3-Clause

package oblivfib

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profiler captures CPU and heap profiles around a run. An empty path
// disables the corresponding profile.
type Profiler struct {
	cpuPath string
	memPath string
	cpuFile *os.File
}

// NewProfiler creates a profiler writing to the given file paths.
func NewProfiler(cpuPath, memPath string) *Profiler {
	return &Profiler{cpuPath: cpuPath, memPath: memPath}
}

// Start begins CPU profiling.
func (p *Profiler) Start() error {
	if p.cpuPath == "" {
		return nil
	}
	f, err := os.Create(p.cpuPath)
	if err != nil {
		return fmt.Errorf("create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("start CPU profile: %w", err)
	}
	p.cpuFile = f
	return nil
}

// Stop ends CPU profiling and writes the heap profile.
func (p *Profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := p.cpuFile.Close(); err != nil {
			return fmt.Errorf("close CPU profile: %w", err)
		}
		p.cpuFile = nil
	}

	if p.memPath == "" {
		return nil
	}
	f, err := os.Create(p.memPath)
	if err != nil {
		return fmt.Errorf("create heap profile: %w", err)
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("write heap profile: %w", err)
	}
	return nil
}
