// Package matroska is an example concrete schema for this codec: the
// Matroska/WebM element set, declared the way any embedder would
// declare their own format. It doubles as this repository's test
// fixture.
package matroska

import "github.com/luispater/ebml-go"

// Element ids, the Matroska/WebM standard set.
const (
	IDEBMLHeader             uint64 = 0x1A45DFA3
	IDEBMLVersion            uint64 = 0x4286
	IDEBMLReadVersion        uint64 = 0x42F7
	IDEBMLMaxIDLength        uint64 = 0x42F2
	IDEBMLMaxSizeLength      uint64 = 0x42F3
	IDEBMLDocType            uint64 = 0x4282
	IDEBMLDocTypeVersion     uint64 = 0x4287
	IDEBMLDocTypeReadVersion uint64 = 0x4285

	IDSegment uint64 = 0x18538067

	IDSeekHead uint64 = 0x114D9B74
	IDSeek     uint64 = 0x4DBB
	IDSeekID   uint64 = 0x53AB
	IDSeekPos  uint64 = 0x53AC

	IDSegmentInfo    uint64 = 0x1549A966
	IDSegmentUID     uint64 = 0x73A4
	IDTimestampScale uint64 = 0x2AD7B1
	IDDuration       uint64 = 0x4489
	IDTitle          uint64 = 0x7BA9
	IDMuxingApp      uint64 = 0x4D80
	IDWritingApp     uint64 = 0x5741

	IDTracks     uint64 = 0x1654AE6B
	IDTrackEntry uint64 = 0xAE
	IDTrackNum   uint64 = 0xD7
	IDTrackUID   uint64 = 0x73C5
	IDTrackType  uint64 = 0x83
	IDTrackName  uint64 = 0x536E
	IDLanguage   uint64 = 0x22B59C
	IDCodecID    uint64 = 0x86
	IDCodecPriv  uint64 = 0x63A2
	IDVideo      uint64 = 0xE0
	IDAudio      uint64 = 0xE1

	IDPixelWidth  uint64 = 0xB0
	IDPixelHeight uint64 = 0xBA

	IDSamplingFrequency uint64 = 0xB5
	IDChannels          uint64 = 0x9F
	IDBitDepth          uint64 = 0x6264

	IDCluster     uint64 = 0x1F43B675
	IDTimestamp   uint64 = 0xE7
	IDSimpleBlock uint64 = 0xA3
	IDBlockGroup  uint64 = 0xA0
	IDBlock       uint64 = 0xA1

	IDCues     uint64 = 0x1C53BB6B
	IDCuePoint uint64 = 0xBB
	IDCueTime  uint64 = 0xB3
)

// Defs declares the Matroska/WebM element set ebml.Compile consumes.
// Every path lists the full chain of concrete ancestor ids from the
// root down to the element's own parent; no entry uses a Global segment.
var Defs = []ebml.Def{
	{Name: "EBMLHeader", ID: IDEBMLHeader, DataType: ebml.Master},
	{Name: "EBMLVersion", ID: IDEBMLVersion, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDEBMLHeader)}},
	{Name: "EBMLReadVersion", ID: IDEBMLReadVersion, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDEBMLHeader)}},
	{Name: "EBMLMaxIDLength", ID: IDEBMLMaxIDLength, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDEBMLHeader)}},
	{Name: "EBMLMaxSizeLength", ID: IDEBMLMaxSizeLength, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDEBMLHeader)}},
	{Name: "EBMLDocType", ID: IDEBMLDocType, DataType: ebml.Utf8, Path: []ebml.PathPart{ebml.PathID(IDEBMLHeader)}},
	{Name: "EBMLDocTypeVersion", ID: IDEBMLDocTypeVersion, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDEBMLHeader)}},
	{Name: "EBMLDocTypeReadVersion", ID: IDEBMLDocTypeReadVersion, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDEBMLHeader)}},

	{Name: "Segment", ID: IDSegment, DataType: ebml.Master},

	{Name: "SeekHead", ID: IDSeekHead, DataType: ebml.Master, Path: []ebml.PathPart{ebml.PathID(IDSegment)}},
	{Name: "Seek", ID: IDSeek, DataType: ebml.Master, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDSeekHead)}},
	{Name: "SeekID", ID: IDSeekID, DataType: ebml.Binary, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDSeekHead), ebml.PathID(IDSeek)}},
	{Name: "SeekPos", ID: IDSeekPos, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDSeekHead), ebml.PathID(IDSeek)}},

	{Name: "SegmentInfo", ID: IDSegmentInfo, DataType: ebml.Master, Path: []ebml.PathPart{ebml.PathID(IDSegment)}},
	{Name: "SegmentUID", ID: IDSegmentUID, DataType: ebml.Binary, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDSegmentInfo)}},
	{Name: "TimestampScale", ID: IDTimestampScale, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDSegmentInfo)}},
	{Name: "Duration", ID: IDDuration, DataType: ebml.Float, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDSegmentInfo)}},
	{Name: "Title", ID: IDTitle, DataType: ebml.Utf8, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDSegmentInfo)}},
	{Name: "MuxingApp", ID: IDMuxingApp, DataType: ebml.Utf8, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDSegmentInfo)}},
	{Name: "WritingApp", ID: IDWritingApp, DataType: ebml.Utf8, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDSegmentInfo)}},

	{Name: "Tracks", ID: IDTracks, DataType: ebml.Master, Path: []ebml.PathPart{ebml.PathID(IDSegment)}},
	{Name: "TrackEntry", ID: IDTrackEntry, DataType: ebml.Master, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDTracks)}},
	{Name: "TrackNum", ID: IDTrackNum, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDTracks), ebml.PathID(IDTrackEntry)}},
	{Name: "TrackUID", ID: IDTrackUID, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDTracks), ebml.PathID(IDTrackEntry)}},
	{Name: "TrackType", ID: IDTrackType, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDTracks), ebml.PathID(IDTrackEntry)}},
	{Name: "TrackName", ID: IDTrackName, DataType: ebml.Utf8, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDTracks), ebml.PathID(IDTrackEntry)}},
	{Name: "Language", ID: IDLanguage, DataType: ebml.Utf8, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDTracks), ebml.PathID(IDTrackEntry)}},
	{Name: "CodecID", ID: IDCodecID, DataType: ebml.Utf8, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDTracks), ebml.PathID(IDTrackEntry)}},
	{Name: "CodecPrivate", ID: IDCodecPriv, DataType: ebml.Binary, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDTracks), ebml.PathID(IDTrackEntry)}},
	{Name: "Video", ID: IDVideo, DataType: ebml.Master, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDTracks), ebml.PathID(IDTrackEntry)}},
	{Name: "Audio", ID: IDAudio, DataType: ebml.Master, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDTracks), ebml.PathID(IDTrackEntry)}},

	{Name: "PixelWidth", ID: IDPixelWidth, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDTracks), ebml.PathID(IDTrackEntry), ebml.PathID(IDVideo)}},
	{Name: "PixelHeight", ID: IDPixelHeight, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDTracks), ebml.PathID(IDTrackEntry), ebml.PathID(IDVideo)}},

	{Name: "SamplingFrequency", ID: IDSamplingFrequency, DataType: ebml.Float, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDTracks), ebml.PathID(IDTrackEntry), ebml.PathID(IDAudio)}},
	{Name: "Channels", ID: IDChannels, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDTracks), ebml.PathID(IDTrackEntry), ebml.PathID(IDAudio)}},
	{Name: "BitDepth", ID: IDBitDepth, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDTracks), ebml.PathID(IDTrackEntry), ebml.PathID(IDAudio)}},

	// Cluster recurs an unbounded number of times directly under
	// Segment; a single concrete ancestor (Segment) is enough to place
	// it, so the stream-start heuristic can resolve it even when a
	// reader begins mid-document.
	{Name: "Cluster", ID: IDCluster, DataType: ebml.Master, Path: []ebml.PathPart{ebml.PathID(IDSegment)}},
	{Name: "Timestamp", ID: IDTimestamp, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDCluster)}},
	{Name: "SimpleBlock", ID: IDSimpleBlock, DataType: ebml.Binary, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDCluster)}},
	{Name: "BlockGroup", ID: IDBlockGroup, DataType: ebml.Master, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDCluster)}},
	{Name: "Block", ID: IDBlock, DataType: ebml.Binary, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDCluster), ebml.PathID(IDBlockGroup)}},

	{Name: "Cues", ID: IDCues, DataType: ebml.Master, Path: []ebml.PathPart{ebml.PathID(IDSegment)}},
	{Name: "CuePoint", ID: IDCuePoint, DataType: ebml.Master, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDCues)}},
	{Name: "CueTime", ID: IDCueTime, DataType: ebml.UnsignedInt, Path: []ebml.PathPart{ebml.PathID(IDSegment), ebml.PathID(IDCues), ebml.PathID(IDCuePoint)}},
}

// Compiled is the package's ready-to-use schema, built once at init
// time. Most embedders know their element set at compile time; the
// ebml.Compile entry point stays available for callers whose schema
// isn't known until runtime.
var Compiled = mustCompile()

func mustCompile() *ebml.Compiled {
	c, err := ebml.Compile(Defs)
	if err != nil {
		panic(err)
	}
	return c
}

//go:generate go run ../internal/schemagen/cmd/schemagen -out schema_gen.go
