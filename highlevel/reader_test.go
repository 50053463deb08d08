// File: highlevel/reader_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package highlevel

import (
	"bytes"
	"testing"
)

func TestReaderEmptyRing(t *testing.T) {
	r := newTestRing(t, 16)
	rd := NewReader(r)

	n, err := rd.Read(make([]byte, 8))
	if n != 0 || err != nil {
		t.Fatalf("Read on empty ring = (%d, %v), want (0, nil)", n, err)
	}
	if rd.Buffered() != 0 {
		t.Errorf("Buffered = %d, want 0", rd.Buffered())
	}
}

func TestReaderRoundTrip(t *testing.T) {
	r := newTestRing(t, 64)
	rd := NewReader(r)

	in := []byte("reader adapter")
	r.Write(in)
	if rd.Buffered() != len(in) {
		t.Errorf("Buffered = %d, want %d", rd.Buffered(), len(in))
	}

	out := make([]byte, len(in))
	n, err := rd.Read(out)
	if err != nil || n != len(in) || !bytes.Equal(out, in) {
		t.Errorf("Read = (%d, %v), data %q", n, err, out[:n])
	}
}

func TestReaderWriteTo(t *testing.T) {
	r := newTestRing(t, 64)
	rd := NewReader(r)

	in := []byte("drain me completely")
	r.Write(in)

	var sink bytes.Buffer
	n, err := rd.WriteTo(&sink)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len(in)) || !bytes.Equal(sink.Bytes(), in) {
		t.Errorf("WriteTo = %d, sink %q", n, sink.Bytes())
	}
	if rd.Buffered() != 0 {
		t.Errorf("ring not drained: %d bytes left", rd.Buffered())
	}
}
