// Package transport connects the midi codec to real MIDI ports through
// gomidi. It enumerates ports, watches for hot-plugged devices, and
// converts between typed messages and the raw bytes a port carries.
package transport

import (
	"fmt"
	"strings"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

const portScanTimeout = 3 * time.Second

// Ports lists the current input and output ports. The listing runs with
// a timeout because CoreMIDI can hang; a hung scan comes back as an
// error instead of blocking the caller.
func Ports() ([]drivers.In, []drivers.Out, error) {
	type portsResult struct {
		ins  []drivers.In
		outs []drivers.Out
	}

	ch := make(chan portsResult, 1)
	go func() {
		ch <- portsResult{ins: gomidi.GetInPorts(), outs: gomidi.GetOutPorts()}
	}()

	select {
	case r := <-ch:
		return r.ins, r.outs, nil
	case <-time.After(portScanTimeout):
		return nil, nil, fmt.Errorf("port scan timed out after %s", portScanTimeout)
	}
}

// MatchPort reports whether a port name matches a case-insensitive
// substring. An empty pattern matches everything.
func MatchPort(name, pattern string) bool {
	if pattern == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(pattern))
}

func findOut(outs []drivers.Out, pattern string) drivers.Out {
	for _, p := range outs {
		if MatchPort(p.String(), pattern) {
			return p
		}
	}
	return nil
}
