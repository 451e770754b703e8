package prompt

import (
	"strings"
	"testing"
)

func TestBuild_TranscriptInterpolatedVerbatimAtEnd(t *testing.T) {
	transcript := "spk_0: Hello there.\nspk_1: General greetings\n"

	p := Build(transcript)

	if !strings.HasSuffix(p, transcript) {
		t.Errorf("prompt does not end with the transcript verbatim:\n%s", p)
	}
}

func TestBuild_ExplainsSpeakerLabelConvention(t *testing.T) {
	p := Build("spk_0: hi\n")

	for _, want := range []string{`"spk_x"`, `"Speaker 1"`, "action"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuild_EmptyTranscript(t *testing.T) {
	p := Build("")
	if !strings.HasSuffix(p, ":\n\n") {
		t.Errorf("expected template followed by blank transcript, got tail %q", p[len(p)-10:])
	}
}
