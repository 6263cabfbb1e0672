package compare

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/sirupsen/logrus"
)

// collectHost gathers host facts best-effort; a probe that fails leaves its
// fields empty and is logged.
func collectHost(log logrus.FieldLogger) *HostInfo {
	h := &HostInfo{}
	if info, err := host.Info(); err != nil {
		log.WithError(err).Warn("host info unavailable")
	} else {
		h.Hostname = info.Hostname
		h.OS = info.OS
		h.Platform = info.Platform
		h.PlatformVersion = info.PlatformVersion
	}
	if infos, err := cpu.Info(); err != nil {
		log.WithError(err).Warn("cpu info unavailable")
	} else if len(infos) > 0 {
		h.CPUModel = infos[0].ModelName
	}
	if n, err := cpu.Counts(true); err != nil {
		log.WithError(err).Warn("cpu count unavailable")
	} else {
		h.LogicalCPUs = n
	}
	if v, err := mem.VirtualMemory(); err != nil {
		log.WithError(err).Warn("memory info unavailable")
	} else {
		h.MemoryTotal = v.Total
	}

	return h
}
