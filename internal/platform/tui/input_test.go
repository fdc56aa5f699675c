package tui

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestSharedInputSplitsChunks(t *testing.T) {
	in := NewSharedInput(strings.NewReader("ab"))
	a := in.Attach()
	defer a.Detach()

	buf := make([]byte, 1)
	var got []byte
	for {
		n, err := a.Read(buf)
		got = append(got, buf[:n]...)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.Fatalf("Read() error = %v", err)
			}
			break
		}
	}
	if string(got) != "ab" {
		t.Errorf("read %q, want %q", got, "ab")
	}
}

func TestSharedInputDetachedReaderLeavesInput(t *testing.T) {
	pr, pw := io.Pipe()
	in := NewSharedInput(pr)

	stale := in.Attach()
	stale.Detach()
	if n, err := stale.Read(make([]byte, 8)); n != 0 || !errors.Is(err, io.EOF) {
		t.Fatalf("detached Read() = %d, %v; want 0, EOF", n, err)
	}

	go func() {
		pw.Write([]byte("x"))
		pw.Close()
	}()

	// The stale reader must not take the key meant for the next turn.
	if n, err := stale.Read(make([]byte, 8)); n != 0 || !errors.Is(err, io.EOF) {
		t.Fatalf("detached Read() = %d, %v; want 0, EOF", n, err)
	}

	next := in.Attach()
	defer next.Detach()
	buf := make([]byte, 8)
	n, err := next.Read(buf)
	if err != nil || string(buf[:n]) != "x" {
		t.Fatalf("Read() = %q, %v; want %q", buf[:n], err, "x")
	}
	if _, err := next.Read(buf); !errors.Is(err, io.EOF) {
		t.Errorf("Read() after close error = %v, want EOF", err)
	}
}

func TestSharedInputCloseStopsPump(t *testing.T) {
	// The key arrives after the last turn has detached, so nobody takes it.
	in := NewSharedInput(strings.NewReader("x"))
	in.Attach().Detach()

	if err := in.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	select {
	case <-in.exited:
	case <-time.After(2 * time.Second):
		t.Fatal("pump still running after Close")
	}

	a := in.Attach()
	if n, err := a.Read(make([]byte, 8)); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("Read() after Close = %d, %v; want 0, EOF", n, err)
	}
	if err := in.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
