package game

import (
	"strings"
	"testing"
)

func TestMessageLogEvictsOldest(t *testing.T) {
	l := NewMessageLog(3)
	for _, s := range []string{"one", "two", "three", "four", "five"} {
		l.Add(s, MsgInfo)
	}
	got := l.Recent(10)
	if len(got) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(got))
	}
	if got[0].Text != "three" || got[2].Text != "five" {
		t.Errorf("unexpected log contents %+v", got)
	}
}

func TestMessageLogFlattensAndWraps(t *testing.T) {
	l := NewMessageLog(10)
	l.Add("Danger! You hit a Pulsar!\nTeleporting to safe zone.", MsgDanger)

	var parts []string
	for _, m := range l.Messages {
		if TextWidth(m.Text) > LogTextWidth {
			t.Errorf("line %q wider than %dpx", m.Text, LogTextWidth)
		}
		if m.Priority != MsgDanger {
			t.Errorf("priority = %d", m.Priority)
		}
		parts = append(parts, m.Text)
	}
	if got := strings.Join(parts, " "); got != "Danger! You hit a Pulsar! Teleporting to safe zone." {
		t.Errorf("got %q", got)
	}
}
