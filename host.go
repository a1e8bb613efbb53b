package sortbench

import (
	"errors"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// HostInfo describes the machine a report was measured on.
type HostInfo struct {
	CPUModel     string `json:"cpu_model" yaml:"cpu_model" toml:"cpu_model"`
	LogicalCores int    `json:"logical_cores" yaml:"logical_cores" toml:"logical_cores"`
	TotalMemory  uint64 `json:"total_memory" yaml:"total_memory" toml:"total_memory"`
	OS           string `json:"os" yaml:"os" toml:"os"`
	Arch         string `json:"arch" yaml:"arch" toml:"arch"`
	GoVersion    string `json:"go_version" yaml:"go_version" toml:"go_version"`
}

// CollectHostInfo gathers what it can about the host. Fields it could not read
// are left zero and the causes are joined into the returned error.
func CollectHostInfo() (*HostInfo, error) {
	info := &HostInfo{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		GoVersion: runtime.Version(),
	}

	var errs []error
	if stats, err := cpu.Info(); err != nil {
		errs = append(errs, err)
	} else if len(stats) > 0 {
		info.CPUModel = stats[0].ModelName
	}

	if cores, err := cpu.Counts(true); err != nil {
		errs = append(errs, err)
		info.LogicalCores = runtime.NumCPU()
	} else {
		info.LogicalCores = cores
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		errs = append(errs, err)
	} else {
		info.TotalMemory = vm.Total
	}

	return info, errors.Join(errs...)
}
