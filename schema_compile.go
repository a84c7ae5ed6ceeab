package ebml

import "fmt"

// Def is one declarative schema entry: a tag identifier, its data type,
// and its document path. This is the runtime input to Compile, and is
// also the shape internal/schemagen reads out of a package-level Go
// source table to emit the generated constructors/accessors.
type Def struct {
	Name     string
	ID       uint64
	DataType TagDataType

	// Path is empty for a root element. Otherwise it is a sequence of
	// PathID/PathGlobal segments naming the ancestors from the root down
	// to the immediate parent. A single PathID naming only the parent is
	// accepted when that parent is itself a root element; Compile does not
	// expand it into a deeper parent's full chain, so under a non-root
	// parent it fails with PathPrefixMismatch.
	Path []PathPart
}

// compiledEntry is a Def plus anything the compiler derived from it.
type compiledEntry struct {
	Def
}

// Compiled holds the runtime dispatch tables produced by Compile: the
// id -> TagDataType and id -> path lookups consulted by the reader, plus
// typed construction and access by variant name. Writer does not use it.
type Compiled struct {
	byID   map[uint64]compiledEntry
	byName map[string]compiledEntry
}

// CompileErrorKind enumerates the ways a declarative schema can fail to
// compile into runtime dispatch tables.
type CompileErrorKind int

const (
	DuplicateID CompileErrorKind = iota
	UnknownDataTypeSpelling
	UnknownAncestor
	AncestorNotMaster
	CyclicAncestry
	PathPrefixMismatch
	SelfReferentialPath
)

// CompileError localizes a schema compilation failure to the offending
// declaration.
type CompileError struct {
	Kind    CompileErrorKind
	Name    string
	ID      uint64
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("ebml: schema error in %q (id 0x%X): %s", e.Name, e.ID, e.Message)
}

// injectedGlobals are the two global elements every compiled schema
// carries regardless of what the user declares: CRC-32 at 0xBF and Void
// at 0xEC, both Binary, both placeable at any depth.
func injectedGlobals() []Def {
	return []Def{
		{Name: "Crc32", ID: IDCrc32, DataType: Binary, Path: []PathPart{PathGlobal(nil, nil)}},
		{Name: "Void", ID: IDVoid, DataType: Binary, Path: []PathPart{PathGlobal(nil, nil)}},
	}
}

// Compile validates a declarative schema and produces the runtime
// dispatch tables the reader consults. It checks for duplicate
// ids, unknown or non-Master ancestors, cyclic ancestry, path-prefix
// mismatches, and self-referential paths, and always injects Crc32 and
// Void.
func Compile(defs []Def) (*Compiled, error) {
	all := make([]Def, 0, len(defs)+2)
	all = append(all, defs...)
	all = append(all, injectedGlobals()...)

	c := &Compiled{
		byID:   make(map[uint64]compiledEntry, len(all)),
		byName: make(map[string]compiledEntry, len(all)),
	}

	if err := validateSchema(all, c); err != nil {
		return nil, err
	}

	for _, d := range all {
		entry := compiledEntry{Def: d}
		c.byID[d.ID] = entry
		c.byName[d.Name] = entry
	}

	return c, nil
}

// TypeOf returns the declared data type for id.
func (c *Compiled) TypeOf(id uint64) (TagDataType, bool) {
	e, ok := c.byID[id]
	if !ok {
		return 0, false
	}
	return e.DataType, true
}

// PathOf returns the declared path for id.
func (c *Compiled) PathOf(id uint64) ([]PathPart, bool) {
	e, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return e.Path, true
}

// NameOf returns the declared name for id.
func (c *Compiled) NameOf(id uint64) (string, bool) {
	e, ok := c.byID[id]
	if !ok {
		return "", false
	}
	return e.Name, true
}

// IDOf returns the declared id for name.
func (c *Compiled) IDOf(name string) (uint64, bool) {
	e, ok := c.byName[name]
	if !ok {
		return 0, false
	}
	return e.ID, true
}

// Has reports whether id is declared in the schema (including the two
// injected globals).
func (c *Compiled) Has(id uint64) bool {
	_, ok := c.byID[id]
	return ok
}

// New builds a Value for the named variant from a payload. It is total
// over the declared payload type: given a value of the correct Go type
// for name's declared TagDataType, it always succeeds. A payload of the
// wrong Go type, or a master payload (which must be constructed with
// NewMasterStart/NewMasterEnd/NewMasterFull directly), returns an error.
func (c *Compiled) New(name string, payload any) (Value, error) {
	e, ok := c.byName[name]
	if !ok {
		return Value{}, fmt.Errorf("ebml: unknown schema variant %q", name)
	}

	switch e.DataType {
	case UnsignedInt:
		v, ok := payload.(uint64)
		if !ok {
			return Value{}, fmt.Errorf("ebml: variant %q expects a uint64 payload", name)
		}
		return NewUnsignedInt(e.ID, v), nil
	case Integer:
		v, ok := payload.(int64)
		if !ok {
			return Value{}, fmt.Errorf("ebml: variant %q expects an int64 payload", name)
		}
		return NewInteger(e.ID, v), nil
	case Utf8:
		v, ok := payload.(string)
		if !ok {
			return Value{}, fmt.Errorf("ebml: variant %q expects a string payload", name)
		}
		return NewUtf8(e.ID, v), nil
	case Binary:
		v, ok := payload.([]byte)
		if !ok {
			return Value{}, fmt.Errorf("ebml: variant %q expects a []byte payload", name)
		}
		return NewBinary(e.ID, v), nil
	case Float:
		v, ok := payload.(float64)
		if !ok {
			return Value{}, fmt.Errorf("ebml: variant %q expects a float64 payload", name)
		}
		return NewFloat(e.ID, v), nil
	case Master:
		return Value{}, fmt.Errorf("ebml: variant %q is a Master element; use NewMasterStart/End/Full", name)
	default:
		return Value{}, fmt.Errorf("ebml: variant %q has an unrecognized data type", name)
	}
}

// As extracts the payload from v as the Go type appropriate to its
// declared data type, returning it boxed in an any so callers that
// don't statically know the variant can still branch on ok.
func (c *Compiled) As(v Value) (any, bool) {
	switch v.Type() {
	case UnsignedInt:
		return v.AsUnsignedInt()
	case Integer:
		return v.AsInteger()
	case Utf8:
		return v.AsUtf8()
	case Binary:
		return v.AsBinary()
	case Float:
		return v.AsFloat()
	case Master:
		return v.AsMaster()
	default:
		return nil, false
	}
}
