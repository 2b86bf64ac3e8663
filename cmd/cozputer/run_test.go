package main

import (
	"bytes"
	"testing"

	"github.com/cozbot/cozputer/manifest"
	"github.com/cozbot/cozputer/pkg/bytecode"
)

func TestParseHexProgram(t *testing.T) {
	prog, err := parseHexProgram("10 00 17 12 00 13")
	if err != nil {
		t.Fatalf("parseHexProgram failed: %v", err)
	}
	want := []byte{0x10, 0x00, 0x17, 0x12, 0x00, 0x13}
	if !bytes.Equal(prog.Code, want) {
		t.Errorf("Expected %x, got %x", want, prog.Code)
	}
}

func TestParseHexProgramWithPrefixes(t *testing.T) {
	a, err := parseHexProgram("0x10 0x0 0x17")
	if err != nil {
		t.Fatalf("parseHexProgram failed: %v", err)
	}
	b, err := parseHexProgram("10 00 17")
	if err != nil {
		t.Fatalf("parseHexProgram failed: %v", err)
	}
	if !bytes.Equal(a.Code, b.Code) {
		t.Error("0x-prefixed and bare forms must parse identically")
	}
}

func TestParseHexProgramRejectsJunk(t *testing.T) {
	if _, err := parseHexProgram("10 zz"); err == nil {
		t.Error("Expected error for bad hex byte")
	}
	if _, err := parseHexProgram("100"); err == nil {
		t.Error("Expected error for value over one byte")
	}
}

func TestConsoleSpeaker(t *testing.T) {
	var out bytes.Buffer
	s := &ConsoleSpeaker{Out: &out, Prefix: "cozmo says "}
	if err := s.Say("42"); err != nil {
		t.Fatalf("Say failed: %v", err)
	}
	if out.String() != "cozmo says 42\n" {
		t.Errorf("Unexpected output %q", out.String())
	}
}

func TestNewSpeakerFromManifest(t *testing.T) {
	silent := manifest.Default()
	silent.Speech.Voice = manifest.VoiceSilent
	if _, ok := newSpeaker(silent).(bytecode.NopSpeaker); !ok {
		t.Error("Expected a NopSpeaker for the silent voice")
	}

	if _, ok := newSpeaker(manifest.Default()).(*ConsoleSpeaker); !ok {
		t.Error("Expected a ConsoleSpeaker by default")
	}
}
