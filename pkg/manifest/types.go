package manifest

// Entry carries the per-table overrides a manifest can declare. Zero-value
// fields mean "no override"; Precision uses a pointer so an explicit 0 is
// distinguishable from unset.
type Entry struct {
	Caption   string `yaml:"caption"`
	Label     string `yaml:"label"`
	Renderer  string `yaml:"renderer"`
	Precision *int   `yaml:"precision"`
}

// Store holds directory-level defaults plus per-file entries keyed by the
// input file's base name (e.g. "sales.csv").
type Store struct {
	defaults Entry
	tables   map[string]Entry
}

// Defaults returns the directory-level defaults.
func (s *Store) Defaults() Entry {
	if s == nil {
		return Entry{}
	}
	return s.defaults
}

// Lookup returns the entry for the supplied file base name.
func (s *Store) Lookup(name string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	entry, ok := s.tables[name]
	return entry, ok
}

// Empty reports whether the store holds neither defaults nor entries.
func (s *Store) Empty() bool {
	return s == nil || (s.defaults == (Entry{}) && len(s.tables) == 0)
}

// Resolve merges the per-file entry over the directory defaults, returning
// the effective overrides for the named file.
func (s *Store) Resolve(name string) Entry {
	if s == nil {
		return Entry{}
	}
	out := s.defaults
	entry, ok := s.tables[name]
	if !ok {
		return out
	}
	if entry.Caption != "" {
		out.Caption = entry.Caption
	}
	if entry.Label != "" {
		out.Label = entry.Label
	}
	if entry.Renderer != "" {
		out.Renderer = entry.Renderer
	}
	if entry.Precision != nil {
		out.Precision = entry.Precision
	}
	return out
}
