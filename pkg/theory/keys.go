package theory

// Reserved NFA edge labels outside the steno key alphabet, used by the
// entry builder and lookup driver to mark stroke boundaries and the
// compressed linker chord. Grounded on config.py's
// TRIE_STROKE_BOUNDARY_KEY / TRIE_LINKER_KEY.
const (
	StrokeBoundaryKey = ""
	LinkerKey         = "-"
)
