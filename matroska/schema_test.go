package matroska

import (
	"bytes"
	"io"
	"testing"

	"github.com/luispater/ebml-go"
)

func TestCompiledResolvesEveryElement(t *testing.T) {
	for _, d := range Defs {
		if !Compiled.Has(d.ID) {
			t.Errorf("Compiled is missing declared element %q (0x%X)", d.Name, d.ID)
		}
	}
}

func TestWriteAndReadSegmentInfo(t *testing.T) {
	var buf bytes.Buffer
	w := ebml.NewWriter(&buf)

	write := func(v ebml.Value) {
		t.Helper()
		if err := w.Write(v); err != nil {
			t.Fatalf("Write() failed: %v", err)
		}
	}

	write(ebml.NewMasterStart(IDSegment))
	write(ebml.NewMasterStart(IDSegmentInfo))
	write(ebml.NewUnsignedInt(IDTimestampScale, 1000000))
	write(ebml.NewUtf8(IDTitle, "sample"))
	write(ebml.NewMasterEnd(IDSegmentInfo))
	write(ebml.NewMasterEnd(IDSegment))
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	r := ebml.NewReader(bytes.NewReader(buf.Bytes()), Compiled)

	var gotTitle string
	var gotScale uint64
	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() failed: %v", err)
		}
		switch ev.Value.ID() {
		case IDTimestampScale:
			gotScale, _ = ev.Value.AsUnsignedInt()
		case IDTitle:
			gotTitle, _ = ev.Value.AsUtf8()
		}
	}

	if gotScale != 1000000 {
		t.Errorf("TimestampScale = %d, want 1000000", gotScale)
	}
	if gotTitle != "sample" {
		t.Errorf("Title = %q, want %q", gotTitle, "sample")
	}
}

func TestGeneratedConstructorsRoundTrip(t *testing.T) {
	v := NewTrackNum(5)
	got, ok := AsTrackNum(v)
	if !ok || got != 5 {
		t.Errorf("AsTrackNum(NewTrackNum(5)) = %v, %v, want 5, true", got, ok)
	}

	codec := NewCodecID("V_VP9")
	gotCodec, ok := AsCodecID(codec)
	if !ok || gotCodec != "V_VP9" {
		t.Errorf("AsCodecID(NewCodecID(...)) = %v, %v, want V_VP9, true", gotCodec, ok)
	}

	track := NewTrackEntry([]ebml.Value{codec, v})
	children, ok := AsTrackEntry(track)
	if !ok || len(children) != 2 {
		t.Fatalf("AsTrackEntry(NewTrackEntry(...)) = %v, %v", children, ok)
	}
}
