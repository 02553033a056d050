package testutil

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/joshuapare/bymlkit/internal/format"
)

// Dict describes a dictionary to encode. The same *Dict may appear more than
// once (or inside itself); it is emitted once and every reference points at
// the same offset.
type Dict struct {
	Entries []Entry
}

// Entry describes one dictionary entry.
type Entry struct {
	Name    string
	Tag     byte
	Payload uint32 // inline value, or raw payload for Raw entries
	Dict    *Dict  // Tag == format.TagDict
	Str     string // Tag == format.TagString
	Table   []string
	raw     bool
}

// D builds a Dict from entries.
func D(entries ...Entry) *Dict { return &Dict{Entries: entries} }

// Int returns an int entry.
func Int(name string, v int32) Entry {
	return Entry{Name: name, Tag: format.TagInt, Payload: uint32(v)}
}

// Float returns a float entry.
func Float(name string, v float32) Entry {
	return Entry{Name: name, Tag: format.TagFloat, Payload: math.Float32bits(v)}
}

// Bool returns a bool entry.
func Bool(name string, v bool) Entry {
	e := Entry{Name: name, Tag: format.TagBool}
	if v {
		e.Payload = 1
	}
	return e
}

// Str returns a string entry whose value lands in the value table.
func Str(name, v string) Entry {
	return Entry{Name: name, Tag: format.TagString, Str: v}
}

// Sub returns a dict entry pointing at d.
func Sub(name string, d *Dict) Entry {
	return Entry{Name: name, Tag: format.TagDict, Dict: d}
}

// Array returns an array entry pointing at an empty array node.
func Array(name string) Entry {
	return Entry{Name: name, Tag: format.TagArray}
}

// Table returns a string-table entry pointing at a nested table of strs.
func Table(name string, strs ...string) Entry {
	return Entry{Name: name, Tag: format.TagStringTable, Table: strs}
}

// Raw returns an entry with an arbitrary tag and payload written verbatim.
func Raw(name string, tag byte, payload uint32) Entry {
	return Entry{Name: name, Tag: tag, Payload: payload, raw: true}
}

// Options tunes Build.
type Options struct {
	Version uint16
	// NoValueTable omits the value table even when string entries exist.
	NoValueTable bool
}

type builder struct {
	out     []byte
	names   map[string]int
	values  map[string]int
	emitted map[*Dict]int
}

// Build encodes root as a little-endian BYML v2 document.
func Build(root *Dict) []byte { return BuildWith(root, Options{Version: 2}) }

// BuildWith encodes root with the given options. Layout: header, name table,
// value table (if any strings), then dictionaries in pre-order.
func BuildWith(root *Dict, opts Options) []byte {
	b := &builder{emitted: make(map[*Dict]int)}

	var nameList, valueList []string
	seenName := map[string]bool{}
	seenValue := map[string]bool{}
	visited := map[*Dict]bool{}
	var collect func(d *Dict)
	collect = func(d *Dict) {
		if visited[d] {
			return
		}
		visited[d] = true
		for _, e := range d.Entries {
			if !seenName[e.Name] {
				seenName[e.Name] = true
				nameList = append(nameList, e.Name)
			}
			if e.Tag == format.TagString && !e.raw && !seenValue[e.Str] {
				seenValue[e.Str] = true
				valueList = append(valueList, e.Str)
			}
			if e.Tag == format.TagDict && e.Dict != nil {
				collect(e.Dict)
			}
		}
	}
	collect(root)
	sort.Strings(nameList)
	sort.Strings(valueList)

	b.out = make([]byte, format.HeaderSize)
	hdr := format.Header{Magic: format.Magic, Version: opts.Version}

	hdr.NameTableOffset = uint32(len(b.out))
	b.names = b.table(nameList)
	if len(valueList) > 0 && !opts.NoValueTable {
		hdr.ValueTableOffset = uint32(len(b.out))
		b.values = b.table(valueList)
	}
	hdr.RootOffset = uint32(b.dict(root))
	_ = format.PutHeader(b.out, hdr)
	return b.out
}

func (b *builder) align() {
	for n := format.Align4(len(b.out)); len(b.out) < n; {
		b.out = append(b.out, 0)
	}
}

// table appends a string table and returns string→index.
func (b *builder) table(strs []string) map[string]int {
	b.align()
	start := len(b.out)
	idx := make(map[string]int, len(strs))
	b.out = append(b.out, format.TagStringTable, 0, 0, 0)
	format.PutU24(b.out, start+format.NodeCountOffset, uint32(len(strs)))
	offArr := len(b.out)
	b.out = append(b.out, make([]byte, 4*len(strs))...)
	for i, s := range strs {
		idx[s] = i
		binary.LittleEndian.PutUint32(b.out[offArr+4*i:], uint32(len(b.out)-start))
		b.out = append(b.out, s...)
		b.out = append(b.out, 0)
	}
	b.align()
	return idx
}

func (b *builder) dict(d *Dict) int {
	if off, ok := b.emitted[d]; ok {
		return off
	}
	b.align()
	off := len(b.out)
	b.emitted[d] = off
	b.out = append(b.out, format.TagDict, 0, 0, 0)
	format.PutU24(b.out, off+format.NodeCountOffset, uint32(len(d.Entries)))
	b.out = append(b.out, make([]byte, format.EntrySize*len(d.Entries))...)

	for i, e := range d.Entries {
		slot := off + format.NodeHeaderSize + i*format.EntrySize
		payload := e.Payload
		if !e.raw {
			switch e.Tag {
			case format.TagDict:
				payload = uint32(b.dict(e.Dict))
			case format.TagString:
				payload = uint32(b.values[e.Str])
			case format.TagArray:
				b.align()
				payload = uint32(len(b.out))
				b.out = append(b.out, format.TagArray, 0, 0, 0)
			case format.TagStringTable:
				b.align()
				payload = uint32(len(b.out))
				b.table(e.Table)
			}
		}
		format.PutU24(b.out, slot+format.EntryNameIndexOffset, uint32(b.names[e.Name]))
		b.out[slot+format.EntryTagOffset] = e.Tag
		binary.LittleEndian.PutUint32(b.out[slot+format.EntryPayloadOffset:], payload)
	}
	return off
}
