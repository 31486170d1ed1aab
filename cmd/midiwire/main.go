package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"midiwire/logging"
	"midiwire/midi"
	"midiwire/transport"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "decode":
		decodeHex(os.Args[2:])
	case "send":
		send(os.Args[2:])
	case "watch":
		watch(os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Println("midiwire - MIDI message codec tools")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list                              - List all MIDI ports")
	fmt.Println("  decode <hex bytes...>             - Decode raw bytes, e.g. decode 93 3C 5A")
	fmt.Println("  send note <port> <ch> <pitch> <vel>")
	fmt.Println("  send off <port> <ch> <pitch> <vel>")
	fmt.Println("  send cc <port> <ch> <num> <val>")
	fmt.Println("  send program <port> <ch> <patch>")
	fmt.Println("  send sysex <port> <hex bytes...>")
	fmt.Println("  watch [port substring]            - Print decoded incoming messages")
}

func listPorts() {
	ins, outs, err := transport.Ports()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
		return
	}

	fmt.Println("=== MIDI Input Ports ===")
	for i, p := range ins {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
	fmt.Println("\n=== MIDI Output Ports ===")
	for i, p := range outs {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
}

func decodeHex(args []string) {
	b, err := parseHex(args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(b) == 0 {
		fmt.Println("Usage: midiwire decode <hex bytes...>")
		return
	}

	msg, err := midi.DecodeBytes(b)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(msg)
}

func send(args []string) {
	if len(args) < 2 {
		usage()
		return
	}
	kind, port := args[0], args[1]

	sender, err := transport.NewSender(port)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer sender.Close()

	msg, err := buildMessage(kind, args[2:])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if err := sender.Send(msg); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Sent %s to %s\n", msg, sender.Port())
}

func buildMessage(kind string, args []string) (midi.Message, error) {
	switch kind {
	case "note":
		v, err := parseArgs(args, 3)
		if err != nil {
			return nil, err
		}
		return midi.NewNoteOn(v[0], v[1], v[2])
	case "off":
		v, err := parseArgs(args, 3)
		if err != nil {
			return nil, err
		}
		return midi.NewNoteOff(v[0], v[1], v[2])
	case "cc":
		v, err := parseArgs(args, 3)
		if err != nil {
			return nil, err
		}
		return midi.NewControlChange(v[0], v[1], v[2])
	case "program":
		v, err := parseArgs(args, 2)
		if err != nil {
			return nil, err
		}
		return midi.NewProgramChange(v[0], v[1])
	case "sysex":
		b, err := parseHex(args)
		if err != nil {
			return nil, err
		}
		return midi.SysEx{Data: b}, nil
	}
	return nil, fmt.Errorf("unknown message kind %q", kind)
}

func watch(args []string) {
	pattern := ""
	if len(args) > 0 {
		pattern = args[0]
	}

	logger := logging.New("midiwire")
	manager := transport.NewManager(pattern, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	go manager.Run(ctx)

	fmt.Println("Watching for MIDI messages. Ctrl+C to exit.")
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-manager.Events():
			if !ok {
				return
			}
			state := "connected"
			if ev.Type == transport.PortDisconnected {
				state = "disconnected"
			}
			fmt.Printf("%-24s %s\n", ev.Port, state)
		case rec := <-manager.Messages():
			fmt.Printf("%-24s %s\n", rec.Port, rec.Msg)
		}
	}
}

func parseArgs(args []string, want int) ([]uint8, error) {
	if len(args) != want {
		return nil, fmt.Errorf("want %d numeric arguments, got %d", want, len(args))
	}
	out := make([]uint8, len(args))
	for i, a := range args {
		n, err := strconv.ParseUint(a, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("bad argument %q: %w", a, err)
		}
		out[i] = uint8(n)
	}
	return out, nil
}

func parseHex(args []string) ([]byte, error) {
	var out []byte
	for _, f := range strings.Fields(strings.Join(args, " ")) {
		n, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad hex byte %q: %w", f, err)
		}
		out = append(out, byte(n))
	}
	return out, nil
}
