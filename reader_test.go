package ebml

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderHandlesUnknownSizeMasterEndedBySibling(t *testing.T) {
	schema := testSchema(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(NewMasterStart(testRootID)))
	require.NoError(t, w.WriteUnknownSizeStart(testSubID))
	require.NoError(t, w.Write(NewUnsignedInt(testNestedID, 9)))
	require.NoError(t, w.Write(NewMasterEnd(testSubID)))
	// A second Sub sibling implicitly ends the first, unknown-size one.
	require.NoError(t, w.Write(NewMasterStart(testSubID)))
	require.NoError(t, w.Write(NewUnsignedInt(testNestedID, 11)))
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

	assert.Equal(t, []uint64{
		testRootID, testSubID, testNestedID, testSubID,
		testSubID, testNestedID, testSubID, testRootID,
	}, gotIDs)
}

func TestReaderBufferAllMastersBuffersEverything(t *testing.T) {
	schema := testSchema(t)
	data := buildTestStream(t)
	r := NewReader(bytes.NewReader(data), schema, WithBufferAllMasters())

	var events []Event
	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		events = append(events, ev)
	}

	// Buffering the outermost Root as Full collapses the whole document
	// into one event.
	require.Len(t, events, 1)
	m, ok := events[0].Value.AsMaster()
	require.True(t, ok)
	assert.Equal(t, MasterFull, m.Kind)
	require.Len(t, m.Children, 2) // Val, then Sub (itself rolled up)

	sub, ok := m.Children[1].AsMaster()
	require.True(t, ok)
	assert.Equal(t, MasterFull, sub.Kind)
	require.Len(t, sub.Children, 1)
}

func TestReaderRejectsHierarchyViolation(t *testing.T) {
	schema := testSchema(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	// Nested directly under Root without Sub, which the schema never declares.
	require.NoError(t, w.Write(NewMasterStart(testRootID)))
	require.NoError(t, w.Write(NewUnsignedInt(testNestedID, 1)))
	require.NoError(t, w.Write(NewMasterEnd(testRootID)))
	require.NoError(t, w.Flush())

	r := NewReader(bytes.NewReader(buf.Bytes()), schema)
	_, _ = r.Next() // Root start
	_, err := r.Next()

	cfd, ok := err.(*CorruptedFileData)
	require.True(t, ok)
	assert.Equal(t, HierarchyError, cfd.Kind)
}

func TestReaderAllowHierarchyProblemsTolerates(t *testing.T) {
	schema := testSchema(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(NewMasterStart(testRootID)))
	require.NoError(t, w.Write(NewUnsignedInt(testNestedID, 1)))
	require.NoError(t, w.Write(NewMasterEnd(testRootID)))
	require.NoError(t, w.Flush())

	r := NewReader(bytes.NewReader(buf.Bytes()), schema, WithAllowHierarchyProblems())
	_, _ = r.Next() // Root start
	ev, err := r.Next()
	require.NoError(t, err)
	val, ok := ev.Value.AsUnsignedInt()
	require.True(t, ok)
	assert.Equal(t, uint64(1), val)
}

func TestReaderRejectsOversizedChild(t *testing.T) {
	schema := testSchema(t)

	// Hand-build a Root whose declared size is too small to contain its
	// own child: a writer would never produce this, so it is assembled
	// directly from vints.
	var raw bytes.Buffer
	rootHeader, err := idToBytes(testRootID)
	require.NoError(t, err)
	raw.Write(rootHeader)
	sizeBytes, err := EncodeUnsigned(1, 0) // too small to hold the child below
	require.NoError(t, err)
	raw.Write(sizeBytes)

	valHeader, err := idToBytes(testValID)
	require.NoError(t, err)
	raw.Write(valHeader)
	valSize, err := EncodeUnsigned(1, 0)
	require.NoError(t, err)
	raw.Write(valSize)
	raw.WriteByte(5)

	r := NewReader(bytes.NewReader(raw.Bytes()), schema)
	_, _ = r.Next() // Root start
	_, err = r.Next()

	cfd, ok := err.(*CorruptedFileData)
	require.True(t, ok)
	assert.Equal(t, OversizedChildElement, cfd.Kind)
}

func TestReaderAllowOversizedTagsTolerates(t *testing.T) {
	schema := testSchema(t)

	var raw bytes.Buffer
	rootHeader, err := idToBytes(testRootID)
	require.NoError(t, err)
	raw.Write(rootHeader)
	sizeBytes, err := EncodeUnsigned(1, 0)
	require.NoError(t, err)
	raw.Write(sizeBytes)

	valHeader, err := idToBytes(testValID)
	require.NoError(t, err)
	raw.Write(valHeader)
	valSize, err := EncodeUnsigned(1, 0)
	require.NoError(t, err)
	raw.Write(valSize)
	raw.WriteByte(5)

	r := NewReader(bytes.NewReader(raw.Bytes()), schema, WithAllowOversizedTags())
	_, _ = r.Next() // Root start
	ev, err := r.Next()
	require.NoError(t, err)
	val, ok := ev.Value.AsUnsignedInt()
	require.True(t, ok)
	assert.Equal(t, uint64(5), val)
}

func TestReaderRejectsMaxTagSize(t *testing.T) {
	schema := testSchema(t)
	data := buildTestStream(t)

	maxSize := uint64(0) // every tag in the stream declares more than this
	r := NewReader(bytes.NewReader(data), schema, WithMaxTagSize(maxSize))
	_, err := r.Next() // Root's own 8-byte declared size already exceeds it

	cfd, ok := err.(*CorruptedFileData)
	require.True(t, ok)
	assert.Equal(t, InvalidTagSize, cfd.Kind)
}

func TestReaderTryRecoverSkipsGarbageToNextValidHeader(t *testing.T) {
	schema := testSchema(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(NewMasterStart(testRootID)))
	require.NoError(t, w.Write(NewUnsignedInt(testValID, 5)))
	require.NoError(t, w.Write(NewMasterEnd(testRootID)))
	require.NoError(t, w.Flush())
	good := buf.Bytes()

	garbage := []byte{0x00, 0x00, 0x00}
	corrupted := append(append([]byte{}, garbage...), good...)

	r := NewReader(bytes.NewReader(corrupted), schema)
	require.NoError(t, r.TryRecover())

	ev, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, testRootID, ev.Value.ID())
}

func TestReaderTryRecoverResumesAfterNextReturnedError(t *testing.T) {
	schema := testSchema(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(NewMasterStart(testRootID)))
	require.NoError(t, w.Write(NewUnsignedInt(testValID, 5)))
	require.NoError(t, w.Write(NewMasterEnd(testRootID)))
	require.NoError(t, w.Flush())
	good := buf.Bytes()

	garbage := []byte{0x00, 0x00, 0x00}
	corrupted := append(append([]byte{}, garbage...), good...)

	r := NewReader(bytes.NewReader(corrupted), schema)

	// The garbage bytes make the very first Next() fail, which used to
	// leave the reader permanently finished even after a successful
	// recovery.
	_, err := r.Next()
	require.Error(t, err)

	require.NoError(t, r.TryRecover())

	ev, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, testRootID, ev.Value.ID())
}

func TestReaderInitialBufferSizeOption(t *testing.T) {
	schema := testSchema(t)
	data := buildTestStream(t)

	r := NewReader(bytes.NewReader(data), schema, WithInitialBufferSize(4))
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
