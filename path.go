package ebml

// ValidatePath decides whether candidatePath (a schema entry's declared
// []PathPart) is satisfied by the given sequence of currently-open
// ancestor ids. ancestors is ordered outermost-first (root nearest
// index 0).
func ValidatePath(candidatePath []PathPart, ancestors []uint64) bool {
	if len(candidatePath) == 0 {
		return true // a root element is always legal
	}
	return matchPath(candidatePath, 0, ancestors, 0)
}

func matchPath(path []PathPart, pi int, ancestors []uint64, ai int) bool {
	if pi == len(path) {
		return ai == len(ancestors)
	}

	part := path[pi]
	last := pi == len(path)-1

	if !part.IsGlobal() {
		if ai >= len(ancestors) || ancestors[ai] != part.ID() {
			return false
		}
		return matchPath(path, pi+1, ancestors, ai+1)
	}

	min, max := part.Bounds()
	remaining := len(ancestors) - ai

	hi := remaining
	if max != nil && int(*max) < hi {
		hi = int(*max)
	}
	if hi < 0 {
		hi = 0
	}

	if last {
		// A trailing Global's unmet lower bound is forgiven; an upper
		// bound that leaves ancestors unconsumed is not.
		return ai+hi == len(ancestors)
	}

	lo := 0
	if min != nil {
		lo = int(*min)
	}
	if lo > hi {
		return false
	}
	for consume := lo; consume <= hi; consume++ {
		if matchPath(path, pi+1, ancestors, ai+consume) {
			return true
		}
	}
	return false
}

// lastPathID returns the id of the final path segment if it is a
// concrete ancestor reference (not a Global run).
func lastPathID(path []PathPart) (uint64, bool) {
	if len(path) == 0 {
		return 0, false
	}
	last := path[len(path)-1]
	if last.IsGlobal() {
		return 0, false
	}
	return last.ID(), true
}

// IsEndedBy reports whether candidateID legally ends an open ancestor
// with the given id and declared path: the candidate is the ancestor's
// own parent, a direct sibling of the ancestor, or itself a root
// element. This is the rule an Unknown-size master's closing logic
// relies on, since it has no declared size to close on.
func IsEndedBy(c *Compiled, ancestorID, candidateID uint64) bool {
	candidatePath, _ := c.PathOf(candidateID)
	if len(candidatePath) == 0 {
		return true // candidate is a root element
	}

	ancestorPath, _ := c.PathOf(ancestorID)

	if parentID, ok := lastPathID(ancestorPath); ok && parentID == candidateID {
		return true // candidate is the ancestor's own parent
	}

	candidateParent, candidateOK := lastPathID(candidatePath)
	ancestorParent, ancestorOK := lastPathID(ancestorPath)
	if candidateOK && ancestorOK && candidateParent == ancestorParent {
		return true // direct siblings under the same immediate parent
	}

	return false
}
