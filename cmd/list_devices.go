package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/urfave/cli"
)

type cpuDevice struct {
	Name     string
	Cores    int
	Threads  int
	SpeedMhz float64
}

// Query the host cpus. Fields that can not be detected fall back to what the
// Go runtime reports.
func cpuDevices() []cpuDevice {
	threads, err := cpu.Counts(true)
	if err != nil || threads == 0 {
		threads = runtime.NumCPU()
	}

	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 {
		return []cpuDevice{{Name: runtime.GOARCH, Cores: threads, Threads: threads}}
	}

	// cpu.Info reports one entry per logical cpu on some platforms; merge
	// entries by model name.
	devices := make([]cpuDevice, 0, 1)
	index := make(map[string]int)
	for _, info := range infos {
		idx, ok := index[info.ModelName]
		if !ok {
			idx = len(devices)
			index[info.ModelName] = idx
			devices = append(devices, cpuDevice{Name: info.ModelName, SpeedMhz: info.Mhz})
		}
		devices[idx].Cores += int(info.Cores)
	}

	if len(devices) == 1 {
		devices[0].Threads = threads
	}
	return devices
}

// List the cpu devices available to the bench tracers.
func ListDevices(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	devices := cpuDevices()
	buf.WriteString(fmt.Sprintf("\nSystem provides %d cpu device(s):\n\n", len(devices)))
	for dIdx, device := range devices {
		buf.WriteString(fmt.Sprintf("  [Device %02d]\n    Name    %s\n    Cores   %d\n    Threads %d\n    Speed   %.0f MHz\n\n", dIdx, device.Name, device.Cores, device.Threads, device.SpeedMhz))
	}

	logger.Notice(buf.String())
	return nil
}
