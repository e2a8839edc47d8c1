package output

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ctx := WithPrinter(context.Background(), &buf)
		p := FromContext(ctx)
		if p.Writer() != &buf {
			t.Error("Writer() should return the buffer passed to WithPrinter")
		}
	})

	t.Run("default to stdout when not set", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p.Writer() != os.Stdout {
			t.Error("Writer() should default to os.Stdout")
		}
	})
}

func TestPrinter_Println(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf).Println("a", "b")
	if got := buf.String(); got != "a b\n" {
		t.Errorf("Println() wrote %q, want %q", got, "a b\n")
	}
}

func TestPrinter_Done(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf).Done("Saved %q", "Before boss")
	want := DoneMark + " Saved \"Before boss\"\n"
	if got := ansi.Strip(buf.String()); got != want {
		t.Errorf("Done() wrote %q, want %q", got, want)
	}
}

func TestPrinter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := New(&buf).JSON(map[string]uint64{"count": 2})
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	want := "{\n  \"count\": 2\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("JSON() wrote %q, want %q", got, want)
	}
}
