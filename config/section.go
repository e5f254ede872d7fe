package config

import (
	"slices"
	"strings"
	"sync"
)

// tree is the state shared by every section of one configuration: the lock guarding the whole
// tree and the hook run after each successful mutation.
type tree struct {
	mu sync.RWMutex

	// afterMutate runs with mu held for writing. A nil hook does nothing.
	afterMutate func() error
}

// Section is an insertion-ordered mapping from keys to values. Paths passed to its methods are
// relative to the section; paths reported in errors are relative to the configuration root.
//
// All sections of one configuration share a single reader/writer lock. A section obtained from a
// Configuration must not be used after Reload: it is detached from the rebuilt tree, its
// mutations no longer reach the configuration and never trigger an auto-save. It must not be
// used concurrently with the Reload that detaches it.
type Section struct {
	tree   *tree
	path   string
	keys   []string
	values map[string]Value
}

// NewSection creates an empty standalone section with its own lock.
func NewSection() *Section {
	return newSection(&tree{}, "")
}

func newSection(t *tree, path string) *Section {
	return &Section{
		tree:   t,
		path:   path,
		keys:   nil,
		values: make(map[string]Value),
	}
}

// lock takes the write lock of the section's tree and returns its release. The tree is read
// once, so a section rebound while waiting still releases the lock it took.
func (s *Section) lock() func() {
	t := s.tree
	t.mu.Lock()

	return t.mu.Unlock
}

// rlock is lock for readers.
func (s *Section) rlock() func() {
	t := s.tree
	t.mu.RLock()

	return t.mu.RUnlock
}

// CurrentPath returns the path of the section from the configuration root. The root has an empty path.
func (s *Section) CurrentPath() string {
	return s.path
}

// Name returns the last key of CurrentPath.
func (s *Section) Name() string {
	return s.path[strings.LastIndex(s.path, PathSeparator)+1:]
}

// Len returns the number of direct entries.
func (s *Section) Len() int {
	defer s.rlock()()

	return len(s.keys)
}

// Entries returns the direct entries in insertion order. Section values in the result are live.
func (s *Section) Entries() []Entry {
	defer s.rlock()()

	entries := make([]Entry, 0, len(s.keys))
	for _, key := range s.keys {
		entries = append(entries, Entry{Key: key, Value: s.values[key]})
	}

	return entries
}

// Clone returns a deep, standalone copy of the section.
func (s *Section) Clone() *Section {
	defer s.rlock()()

	return s.copyInto(&tree{}, "")
}

// Contains reports whether a value exists at path. Malformed paths contain nothing.
func (s *Section) Contains(path string) bool {
	defer s.rlock()()

	_, ok, err := s.getLocked(path)

	return err == nil && ok
}

// Get returns the value at path, or a MissingMappingError.
func (s *Section) Get(path string) (Value, error) {
	defer s.rlock()()

	return s.requireLocked(path)
}

// GetDefault returns the value at path, or def when absent. def is never stored.
func (s *Section) GetDefault(path string, def Value) (Value, error) {
	defer s.rlock()()

	value, ok, err := s.getLocked(path)
	if err != nil {
		return Null(), err
	}

	if !ok {
		return def, nil
	}

	return value, nil
}

// Set stores value at path, creating intermediate sections and replacing whatever was mapped there.
// A replaced key keeps its position. Setting Null is the same as Unset. Sections and lists are
// deep-copied, so later changes to the argument do not reach the tree.
func (s *Section) Set(path string, value Value) error {
	value = value.snapshot()

	defer s.lock()()

	return s.finishLocked(true, s.setLocked(path, value))
}

// SetValue converts raw with ValueOf and stores it at path.
func (s *Section) SetValue(path string, raw any) error {
	value, err := ValueOf(raw)
	if err != nil {
		return err
	}

	return s.Set(path, value)
}

// Unset removes the value, list or subtree at path. Missing paths are ignored, but still count
// as a mutation for auto-save.
func (s *Section) Unset(path string) error {
	keys, err := splitPath(path)
	if err != nil {
		return err
	}

	defer s.lock()()

	s.unsetLocked(keys)

	return s.finishLocked(true, nil)
}

// CreateSection creates an empty section at path. It fails with an AlreadyExistsError when
// anything is mapped at path.
func (s *Section) CreateSection(path string) (*Section, error) {
	keys, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	defer s.lock()()

	if parent := s.lookupParent(keys); parent != nil {
		if existing, ok := parent.values[keys[len(keys)-1]]; ok {
			return nil, &AlreadyExistsError{Path: s.fullPath(path), Existing: existing}
		}
	}

	parent, _, err := s.resolveParent(keys)
	if err != nil {
		return nil, err
	}

	created := parent.createLocked(keys[len(keys)-1])

	return created, s.finishLocked(true, nil)
}

// GetOrCreateSection returns the section at path, creating it when nothing is mapped there.
// A non-section value at path fails with a WrongTypeError.
func (s *Section) GetOrCreateSection(path string) (*Section, error) {
	keys, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	defer s.lock()()

	parent, created, err := s.resolveParent(keys)
	if err != nil {
		return nil, err
	}

	last := keys[len(keys)-1]

	existing, ok := parent.values[last]
	if ok {
		if existing.kind != KindSection {
			return nil, &WrongTypeError{Path: s.fullPath(path), Requested: "section", Actual: existing}
		}

		return existing.section, s.finishLocked(created, nil)
	}

	section := parent.createLocked(last)

	return section, s.finishLocked(true, nil)
}

// GetSection returns the section at path. It fails with a MissingMappingError when absent and a
// WrongTypeError when the value is not a section.
func (s *Section) GetSection(path string) (*Section, error) {
	defer s.rlock()()

	value, err := s.requireLocked(path)
	if err != nil {
		return nil, err
	}

	return s.asSection(path, value)
}

// GetSectionDefault returns the section at path, or def when absent.
func (s *Section) GetSectionDefault(path string, def *Section) (*Section, error) {
	defer s.rlock()()

	value, ok, err := s.getLocked(path)
	if err != nil {
		return nil, err
	}

	if !ok {
		return def, nil
	}

	return s.asSection(path, value)
}

func (s *Section) asSection(path string, value Value) (*Section, error) {
	if value.kind != KindSection {
		return nil, &WrongTypeError{Path: s.fullPath(path), Requested: "section", Actual: value}
	}

	return value.section, nil
}

func (s *Section) fullPath(path string) string {
	return joinPath(s.path, path)
}

func (s *Section) getLocked(path string) (Value, bool, error) {
	keys, err := splitPath(path)
	if err != nil {
		return Null(), false, err
	}

	parent := s.lookupParent(keys)
	if parent == nil {
		return Null(), false, nil
	}

	value, ok := parent.values[keys[len(keys)-1]]

	return value, ok, nil
}

func (s *Section) requireLocked(path string) (Value, error) {
	value, ok, err := s.getLocked(path)
	if err != nil {
		return Null(), err
	}

	if !ok {
		return Null(), &MissingMappingError{Path: s.fullPath(path)}
	}

	return value, nil
}

func (s *Section) setLocked(path string, value Value) error {
	keys, err := splitPath(path)
	if err != nil {
		return err
	}

	if value.IsNull() {
		s.unsetLocked(keys)

		return nil
	}

	parent, _, err := s.resolveParent(keys)
	if err != nil {
		return err
	}

	parent.putLocked(keys[len(keys)-1], value)

	return nil
}

func (s *Section) unsetLocked(keys []string) {
	if parent := s.lookupParent(keys); parent != nil {
		parent.removeLocked(keys[len(keys)-1])
	}
}

// finishLocked runs the mutation hook when the call mutated and succeeded.
func (s *Section) finishLocked(changed bool, err error) error {
	if err != nil {
		return err
	}

	if changed && s.tree.afterMutate != nil {
		return s.tree.afterMutate()
	}

	return nil
}

// putLocked stores a copy of value under a literal key.
func (s *Section) putLocked(key string, value Value) {
	if value.IsNull() {
		s.removeLocked(key)

		return
	}

	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}

	s.values[key] = value.detach(s.tree, joinPath(s.path, key))
}

func (s *Section) removeLocked(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}

	delete(s.values, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
}

func (s *Section) createLocked(key string) *Section {
	child := newSection(s.tree, joinPath(s.path, key))

	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}

	s.values[key] = Value{kind: KindSection, section: child}

	return child
}

// clearLocked drops every entry. Child sections handed out earlier keep their contents and move
// to a tree of their own: they take a separate lock and no longer run the hook.
func (s *Section) clearLocked() {
	for _, key := range s.keys {
		s.values[key].rebind(&tree{})
	}

	s.keys = nil
	s.values = make(map[string]Value)
}

// copyInto deep-copies s into a new section bound to t at path.
func (s *Section) copyInto(t *tree, path string) *Section {
	dst := newSection(t, path)
	dst.keys = slices.Clone(s.keys)

	for _, key := range s.keys {
		dst.values[key] = s.values[key].detach(t, joinPath(path, key))
	}

	return dst
}

func (s *Section) equal(other *Section) bool {
	if s == other {
		return true
	}

	if s == nil || other == nil {
		return false
	}

	if !slices.Equal(s.keys, other.keys) {
		return false
	}

	for _, key := range s.keys {
		if !s.values[key].Equal(other.values[key]) {
			return false
		}
	}

	return true
}
