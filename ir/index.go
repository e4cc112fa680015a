package ir

// Space names one of a module's index spaces.
type Space uint8

const (
	SpaceType Space = iota
	SpaceFunc
	SpaceTable
	SpaceMemory
	SpaceGlobal
	SpaceTag
	SpaceElem
	SpaceData
	numSpaces
)

var spaceNames = [numSpaces]string{"type", "func", "table", "memory", "global", "tag", "elem", "data"}

func (s Space) String() string {
	if s < numSpaces {
		return spaceNames[s]
	}
	return "unknown"
}

// IndexSpaces counts the entries of every index space and hands out the
// indices of entities injected during encoding. Each injected entity must
// take its index from Alloc so two injections never collide.
type IndexSpaces struct {
	counts [numSpaces]uint32
	// first allocated index per space, for reporting what was injected
	base [numSpaces]uint32
}

// NewIndexSpaces counts imports and definitions of m.
func NewIndexSpaces(m *Module) *IndexSpaces {
	s := &IndexSpaces{}
	s.counts[SpaceType] = uint32(m.NumTypes())
	s.counts[SpaceFunc] = uint32(m.NumImportedFuncs() + len(m.Functions))
	s.counts[SpaceTable] = uint32(m.NumImportedTables() + len(m.Tables))
	s.counts[SpaceMemory] = uint32(m.NumImportedMemories() + len(m.Memories))
	s.counts[SpaceGlobal] = uint32(m.NumImportedGlobals() + len(m.Globals))
	s.counts[SpaceTag] = uint32(m.NumImportedTags() + len(m.Tags))
	s.counts[SpaceElem] = uint32(len(m.Elements))
	s.counts[SpaceData] = uint32(len(m.Data))
	s.base = s.counts
	return s
}

// Len returns the current size of a space, including allocations.
func (s *IndexSpaces) Len(space Space) uint32 {
	return s.counts[space]
}

// Alloc reserves the next index of a space.
func (s *IndexSpaces) Alloc(space Space) uint32 {
	idx := s.counts[space]
	s.counts[space]++
	return idx
}

// Allocated returns how many indices Alloc handed out for a space.
func (s *IndexSpaces) Allocated(space Space) uint32 {
	return s.counts[space] - s.base[space]
}
