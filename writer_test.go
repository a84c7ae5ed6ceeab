package ebml

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterUnknownSizeStartIsReadableUnknownOnReplay(t *testing.T) {
	schema := testSchema(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(NewMasterStart(testRootID)))
	require.NoError(t, w.WriteUnknownSizeStart(testSubID))
	require.NoError(t, w.Write(NewUnsignedInt(testNestedID, 3)))
	require.NoError(t, w.Write(NewMasterEnd(testSubID)))
	require.NoError(t, w.Write(NewMasterEnd(testRootID)))
	require.NoError(t, w.Flush())

	r := NewReader(bytes.NewReader(buf.Bytes()), schema)
	var gotIDs []uint64
	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		gotIDs = append(gotIDs, ev.Value.ID())
	}
	assert.Equal(t, []uint64{testRootID, testSubID, testNestedID, testSubID, testRootID}, gotIDs)
}

func TestWriterEndTagRejectsMismatchedID(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(NewMasterStart(testRootID)))

	err := w.Write(NewMasterEnd(testSubID))
	uct, ok := err.(*UnexpectedClosingTag)
	require.True(t, ok)
	assert.Equal(t, testSubID, uct.TagID)
	require.NotNil(t, uct.ExpectedID)
	assert.Equal(t, testRootID, *uct.ExpectedID)
}

func TestWriterEndTagRejectsWhenNothingOpen(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	err := w.Write(NewMasterEnd(testRootID))
	_, ok := err.(*UnexpectedClosingTag)
	assert.True(t, ok)
}

func TestWriterRejectsZeroID(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	err := w.Write(NewUnsignedInt(0, 1))
	_, ok := err.(*TagIDError)
	assert.True(t, ok)
}

func TestWriterMasterFullWritesNestedChildrenInOneCall(t *testing.T) {
	schema := testSchema(t)

	full := NewMasterFull(testRootID, []Value{
		NewUnsignedInt(testValID, 5),
		NewMasterFull(testSubID, []Value{
			NewUnsignedInt(testNestedID, 7),
		}),
	})

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(full))
	require.NoError(t, w.Flush())

	r := NewReader(bytes.NewReader(buf.Bytes()), schema)
	var gotIDs []uint64
	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		gotIDs = append(gotIDs, ev.Value.ID())
	}
	assert.Equal(t, []uint64{testRootID, testValID, testSubID, testNestedID, testSubID, testRootID}, gotIDs)
}

func TestWriterFlushesOnlyWhenFullyDrained(t *testing.T) {
	var dest bytes.Buffer
	w := NewWriter(&dest)

	require.NoError(t, w.Write(NewMasterStart(testRootID)))
	require.NoError(t, w.Write(NewUnsignedInt(testValID, 1)))
	// Still one frame open: nothing should have reached dest yet.
	assert.Zero(t, dest.Len())

	require.NoError(t, w.Write(NewMasterEnd(testRootID)))
	// Fully drained now: the buffered bytes are written out.
	assert.NotZero(t, dest.Len())
}

func TestWriterUnknownSizeFrameNeverBlocksFlush(t *testing.T) {
	var dest bytes.Buffer
	w := NewWriter(&dest)

	require.NoError(t, w.WriteUnknownSizeStart(testSubID))
	require.NoError(t, w.Write(NewUnsignedInt(testNestedID, 3)))
	// Only an Unknown-size frame is open: it can never block a flush,
	// since its header was already written eagerly.
	assert.NotZero(t, dest.Len())

	require.NoError(t, w.Write(NewMasterEnd(testSubID)))
}

func TestWriterFloatRoundTrips(t *testing.T) {
	floatID := uint64(0x90)
	c, err := Compile([]Def{
		{Name: "Root", ID: testRootID, DataType: Master},
		{Name: "Gain", ID: floatID, DataType: Float, Path: []PathPart{PathID(testRootID)}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(NewMasterStart(testRootID)))
	require.NoError(t, w.Write(NewFloat(floatID, 3.5)))
	require.NoError(t, w.Write(NewMasterEnd(testRootID)))
	require.NoError(t, w.Flush())

	r := NewReader(bytes.NewReader(buf.Bytes()), c)
	_, _ = r.Next() // Root start
	ev, err := r.Next()
	require.NoError(t, err)
	val, ok := ev.Value.AsFloat()
	require.True(t, ok)
	assert.Equal(t, 3.5, val)
}

func TestWriterBufferHintPreallocates(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, WithWriterBufferHint(256))
	require.NoError(t, w.Write(NewUnsignedInt(testValID, 1)))
	require.NoError(t, w.Flush())
	assert.NotZero(t, buf.Len())
}
