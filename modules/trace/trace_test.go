package trace

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestDebugPrintsWhenVerbose(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	d := NewDebuger(true, log)
	d.DbgPrint("hello %s", "jack")
	if len(hook.Entries) != 1 {
		t.Fatalf("expected one debug entry, got %d", len(hook.Entries))
	}
	if hook.LastEntry().Message != "hello jack" {
		t.Fatalf("unexpected message: %q", hook.LastEntry().Message)
	}
}

func TestDebugSilentWhenNotVerbose(t *testing.T) {
	log, hook := test.NewNullLogger()
	d := NewDebuger(false, log)
	d.DbgPrint("hello")
	if len(hook.Entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(hook.Entries))
	}
}
