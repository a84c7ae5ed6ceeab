package ebml

// validateSchema performs every compile-time check against the full set
// of declarations (user-declared entries plus the two injected
// globals). It populates nothing on c; callers build the dispatch
// tables themselves once validation succeeds.
func validateSchema(all []Def, c *Compiled) error {
	byID := make(map[uint64]Def, len(all))
	byName := make(map[string]Def, len(all))

	for _, d := range all {
		if _, dup := byID[d.ID]; dup {
			return &CompileError{Kind: DuplicateID, Name: d.Name, ID: d.ID, Message: "duplicate tag id"}
		}
		if _, ok := tagDataTypeName(d.DataType); !ok {
			return &CompileError{Kind: UnknownDataTypeSpelling, Name: d.Name, ID: d.ID, Message: "unrecognized data type"}
		}
		byID[d.ID] = d
		byName[d.Name] = d
	}

	for _, d := range all {
		if err := validatePath(d, byID, byName); err != nil {
			return err
		}
	}

	return nil
}

func tagDataTypeName(t TagDataType) (string, bool) {
	switch t {
	case Master, UnsignedInt, Integer, Utf8, Binary, Float:
		return t.String(), true
	default:
		return "", false
	}
}

func validatePath(d Def, byID map[uint64]Def, byName map[string]Def) error {
	if len(d.Path) == 0 {
		return nil // root element, always legal
	}

	// Self-reference: the variant's own name/id must not appear in its
	// own path.
	for _, part := range d.Path {
		if !part.IsGlobal() && part.ID() == d.ID {
			return &CompileError{Kind: SelfReferentialPath, Name: d.Name, ID: d.ID, Message: "path references itself"}
		}
	}

	// Cyclic ancestry: walk the chain of immediate (non-global) parents
	// starting from d and ensure it terminates without revisiting d.
	if err := checkNoCycle(d, byID); err != nil {
		return err
	}

	// Every non-global ancestor named in the path must exist and be
	// declared Master.
	var lastID *uint64
	for _, part := range d.Path {
		if part.IsGlobal() {
			continue
		}
		ancestor, ok := byID[part.ID()]
		if !ok {
			return &CompileError{Kind: UnknownAncestor, Name: d.Name, ID: d.ID, Message: "path names an undeclared ancestor"}
		}
		if ancestor.DataType != Master {
			return &CompileError{Kind: AncestorNotMaster, Name: d.Name, ID: d.ID, Message: "path ancestor is not declared Master"}
		}
		id := part.ID()
		lastID = &id
	}

	// Positional-dialect prefix check: if the path names an immediate
	// parent (the trailing Id segment), everything before that segment
	// must literally equal the parent's own declared path.
	if lastID != nil && d.Path[len(d.Path)-1].IsGlobal() == false && d.Path[len(d.Path)-1].ID() == *lastID {
		parent := byID[*lastID]
		prefix := d.Path[:len(d.Path)-1]
		if !pathsEqual(prefix, parent.Path) {
			return &CompileError{Kind: PathPrefixMismatch, Name: d.Name, ID: d.ID, Message: "path prefix does not extend parent's declared path"}
		}
	}

	return nil
}

func pathsEqual(a, b []PathPart) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// checkNoCycle follows the chain of immediate parents (the trailing
// non-global Id segment of each path) starting at d, failing if it ever
// revisits d's own id.
func checkNoCycle(d Def, byID map[uint64]Def) error {
	seen := map[uint64]bool{d.ID: true}
	current := d

	for {
		if len(current.Path) == 0 {
			return nil
		}
		last := current.Path[len(current.Path)-1]
		if last.IsGlobal() {
			return nil
		}
		parentID := last.ID()
		if seen[parentID] {
			return &CompileError{Kind: CyclicAncestry, Name: d.Name, ID: d.ID, Message: "cyclic ancestry in declared path"}
		}
		parent, ok := byID[parentID]
		if !ok {
			return nil // reported separately as UnknownAncestor
		}
		seen[parentID] = true
		current = parent
	}
}
