package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cozbot/cozputer/manifest"
	"github.com/cozbot/cozputer/pkg/bytecode"
)

// ConsoleSpeaker speaks by printing one line per utterance.
type ConsoleSpeaker struct {
	Out    io.Writer
	Prefix string
}

// Say implements bytecode.Speaker.
func (s *ConsoleSpeaker) Say(text string) error {
	_, err := fmt.Fprintln(s.Out, s.Prefix+text)
	return err
}

// newSpeaker builds the speech actuator configured in the manifest.
func newSpeaker(m *manifest.Manifest) bytecode.Speaker {
	switch m.Speech.Voice {
	case manifest.VoiceSilent:
		return bytecode.NopSpeaker{}
	default:
		return &ConsoleSpeaker{Out: os.Stdout, Prefix: m.Speech.Prefix}
	}
}

// newVM builds a machine configured per the manifest.
func newVM(m *manifest.Manifest) *bytecode.VM {
	vm := bytecode.NewVM()
	vm.SetSpeaker(newSpeaker(m))
	vm.Trace = m.VM.Trace
	return vm
}
