package profiles

// Selection is a validated (major, minor) profile pair.
type Selection struct {
	Major Name
	Minor Name
}

// Selector holds the active selection over its own catalogue. A Selector
// whose constructor rejected its input has no selection; its name accessors
// return the zero Name and its vector accessors return ErrUnsetSelection.
//
// Selectors are immutable after construction.
type Selector struct {
	catalogue *Catalogue
	selection *Selection
}

// NewDefaultSelector selects the temperley major and sapp minor profiles.
func NewDefaultSelector() *Selector {
	return NewSelector(DefaultMajor, DefaultMinor)
}

// NewSelectorFor uses the same profile name for both modes.
func NewSelectorFor(name Name) *Selector {
	return NewSelector(name, name)
}

// NewSelector commits (major, minor) when both names exist in their
// mode's catalogue. Otherwise the selector is left unset; nothing is
// committed for either mode.
func NewSelector(major, minor Name) *Selector {
	s := &Selector{catalogue: NewCatalogue()}
	if s.catalogue.IsValid(Major, major) && s.catalogue.IsValid(Minor, minor) {
		s.selection = &Selection{Major: major, Minor: minor}
	}
	return s
}

// NewStrictSelector is NewSelector but reports the first rejected name
// instead of returning an unset selector.
func NewStrictSelector(major, minor Name) (*Selector, error) {
	s := NewSelector(major, minor)
	if s.selection != nil {
		return s, nil
	}
	if !s.catalogue.IsValid(Major, major) {
		return nil, &Error{Op: "select", Mode: Major, Name: major, Err: ErrInvalidProfileName}
	}
	return nil, &Error{Op: "select", Mode: Minor, Name: minor, Err: ErrInvalidProfileName}
}

// Catalogue returns the catalogue the selector validated against.
func (s *Selector) Catalogue() *Catalogue {
	return s.catalogue
}

// Selection returns the committed pair and whether one exists.
func (s *Selector) Selection() (Selection, bool) {
	if s.selection == nil {
		return Selection{}, false
	}
	return *s.selection, true
}

// IsSet reports whether construction committed a selection.
func (s *Selector) IsSet() bool {
	return s.selection != nil
}

// MajorName returns the active major profile name, or "" when unset.
func (s *Selector) MajorName() Name {
	sel, _ := s.Selection()
	return sel.Major
}

// MinorName returns the active minor profile name, or "" when unset.
func (s *Selector) MinorName() Name {
	sel, _ := s.Selection()
	return sel.Minor
}

// MajorVector returns the active major profile's weights.
func (s *Selector) MajorVector() (Vector, error) {
	return s.vector(Major)
}

// MinorVector returns the active minor profile's weights.
func (s *Selector) MinorVector() (Vector, error) {
	return s.vector(Minor)
}

func (s *Selector) vector(mode Mode) (Vector, error) {
	sel, ok := s.Selection()
	if !ok {
		return Vector{}, &Error{Op: "active vector", Mode: mode, Err: ErrUnsetSelection}
	}
	name := sel.Major
	if mode == Minor {
		name = sel.Minor
	}
	return s.catalogue.VectorFor(mode, name)
}
