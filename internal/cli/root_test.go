package cli

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}
	sort.Strings(got)

	want := []string{
		"apply", "boxes", "build", "cache", "completion", "corner", "dot", "drag", "edit",
		"expand", "hide", "insert", "leaves", "remove", "resolve", "serve", "watch",
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("subcommands = %v, want %v", got, want)
	}
}

func TestExecuteVersion(t *testing.T) {
	var stdout bytes.Buffer
	err := Execute(context.Background(), []string{"--version"}, strings.NewReader(""), &stdout, io.Discard)
	if err != nil {
		t.Fatalf("Execute(--version) error = %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "mosaic version ") {
		t.Errorf("version output = %q", stdout.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug message logged at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug message missing after SetLogLevel: %q", buf.String())
	}
}
