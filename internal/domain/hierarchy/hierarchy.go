// Package hierarchy owns the window manager state: screens, tag sets and
// the registry of managed clients.
package hierarchy

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/tagwm/internal/domain/arena"
	"github.com/bnema/tagwm/internal/domain/entity"
	"github.com/bnema/tagwm/internal/domain/layout"
	"github.com/bnema/tagwm/internal/domain/tree"
)

var (
	ErrUnknownClient = errors.New("unknown client")
	ErrClientExists  = errors.New("client already managed")
	ErrUnknownTagSet = errors.New("unknown tag set")
	ErrUnknownScreen = errors.New("unknown screen")
	ErrScreenExists  = errors.New("screen already exists")
)

// ClientHierarchy aggregates screens, tag sets and managed clients. It is
// not safe for concurrent use; callers serialize events.
type ClientHierarchy[C comparable] struct {
	screens []*Screen
	focused int
	tagSets *arena.Arena[TagSet[C]]
	order   []C
	clients map[C]*ClientInfo
}

// New creates an empty hierarchy.
func New[C comparable]() *ClientHierarchy[C] {
	return &ClientHierarchy[C]{
		tagSets: arena.New[TagSet[C]](),
		clients: make(map[C]*ClientInfo),
	}
}

// AddTagSet registers a tag set and fills its tree with the managed clients
// it shows, in management order.
func (h *ClientHierarchy[C]) AddTagSet(name string, tags []string, l layout.Layout[C]) (TagSetID, error) {
	id := TagSetID{h.tagSets.Insert(TagSet[C]{
		Name:   name,
		Tags:   slices.Clone(tags),
		Tree:   tree.New[C](),
		Layout: l,
	})}
	ts, _ := h.tagSets.Get(id.ID)
	for _, c := range h.order {
		if !ts.Shows(h.clients[c].Tags) {
			continue
		}
		if _, err := l.InsertClient(ts.Tree, c); err != nil {
			return id, fmt.Errorf("add tag set %q: %w", name, err)
		}
	}
	return id, nil
}

// TagSet returns the tag set stored under id.
func (h *ClientHierarchy[C]) TagSet(id TagSetID) (*TagSet[C], bool) {
	return h.tagSets.Get(id.ID)
}

// FindTagSet looks a tag set up by name.
func (h *ClientHierarchy[C]) FindTagSet(name string) (TagSetID, bool) {
	for id, ts := range h.tagSets.All() {
		if ts.Name == name {
			return TagSetID{id}, true
		}
	}
	return TagSetID{}, false
}

func (h *ClientHierarchy[C]) tagSet(id TagSetID) (*TagSet[C], error) {
	ts, ok := h.tagSets.Get(id.ID)
	if !ok {
		return nil, fmt.Errorf("tag set %s: %w", id, ErrUnknownTagSet)
	}
	return ts, nil
}

// SetLayout replaces the layout of a tag set and reshapes its tree to fit.
func (h *ClientHierarchy[C]) SetLayout(id TagSetID, l layout.Layout[C]) error {
	ts, err := h.tagSet(id)
	if err != nil {
		return err
	}
	ts.Layout = l
	if !l.CheckTree(ts.Tree) {
		l.FixupTree(ts.Tree)
	}
	return nil
}

// AddScreen registers a screen showing tagSet. The first screen added
// receives focus.
func (h *ClientHierarchy[C]) AddScreen(name string, geometry entity.Geometry, tagSet TagSetID) error {
	if _, err := h.tagSet(tagSet); err != nil {
		return err
	}
	if _, ok := h.Screen(name); ok {
		return fmt.Errorf("add screen %q: %w", name, ErrScreenExists)
	}
	h.screens = append(h.screens, &Screen{Name: name, Geometry: geometry, TagSet: tagSet})
	return nil
}

// Screen looks a screen up by name.
func (h *ClientHierarchy[C]) Screen(name string) (*Screen, bool) {
	for _, s := range h.screens {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Screens returns the screens in registration order.
func (h *ClientHierarchy[C]) Screens() []*Screen {
	return slices.Clone(h.screens)
}

// FocusScreen makes name the screen that receives edits.
func (h *ClientHierarchy[C]) FocusScreen(name string) error {
	for i, s := range h.screens {
		if s.Name == name {
			h.focused = i
			return nil
		}
	}
	return fmt.Errorf("focus screen %q: %w", name, ErrUnknownScreen)
}

// FocusedScreen returns the screen receiving edits, or nil before any
// screen is added.
func (h *ClientHierarchy[C]) FocusedScreen() *Screen {
	if len(h.screens) == 0 {
		return nil
	}
	return h.screens[h.focused]
}

// Current returns the tag set shown on the focused screen.
func (h *ClientHierarchy[C]) Current() (*TagSet[C], error) {
	s := h.FocusedScreen()
	if s == nil {
		return nil, fmt.Errorf("no screen: %w", ErrUnknownScreen)
	}
	return h.tagSet(s.TagSet)
}

// View switches the tag set shown on a screen.
func (h *ClientHierarchy[C]) View(screen string, tagSet TagSetID) error {
	if _, err := h.tagSet(tagSet); err != nil {
		return err
	}
	s, ok := h.Screen(screen)
	if !ok {
		return fmt.Errorf("view on %q: %w", screen, ErrUnknownScreen)
	}
	s.TagSet = tagSet
	return nil
}

// Manage starts tracking c and inserts it into every tag set that shows
// one of its tags.
func (h *ClientHierarchy[C]) Manage(c C, tags []string) error {
	if _, ok := h.clients[c]; ok {
		return fmt.Errorf("manage %v: %w", c, ErrClientExists)
	}
	h.clients[c] = &ClientInfo{Tags: slices.Clone(tags)}
	h.order = append(h.order, c)

	var errs []error
	for _, ts := range h.tagSets.All() {
		if ts.Shows(tags) {
			if _, err := ts.Layout.InsertClient(ts.Tree, c); err != nil {
				errs = append(errs, fmt.Errorf("insert into %q: %w", ts.Name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Unmanage forgets c and removes it from every tree.
func (h *ClientHierarchy[C]) Unmanage(c C) error {
	if _, ok := h.clients[c]; !ok {
		return fmt.Errorf("unmanage %v: %w", c, ErrUnknownClient)
	}

	var errs []error
	for _, ts := range h.tagSets.All() {
		if err := h.removeFrom(ts, c); err != nil {
			errs = append(errs, err)
		}
	}
	delete(h.clients, c)
	h.order = slices.DeleteFunc(h.order, func(o C) bool { return o == c })
	return errors.Join(errs...)
}

// SetTags changes the tags of c, adding it to and removing it from tag sets
// as their membership changes.
func (h *ClientHierarchy[C]) SetTags(c C, tags []string) error {
	info, ok := h.clients[c]
	if !ok {
		return fmt.Errorf("set tags of %v: %w", c, ErrUnknownClient)
	}

	var errs []error
	for _, ts := range h.tagSets.All() {
		was, is := ts.Shows(info.Tags), ts.Shows(tags)
		switch {
		case was && !is:
			if err := h.removeFrom(ts, c); err != nil {
				errs = append(errs, err)
			}
		case !was && is:
			if _, err := ts.Layout.InsertClient(ts.Tree, c); err != nil {
				errs = append(errs, fmt.Errorf("insert into %q: %w", ts.Name, err))
			}
		}
	}
	info.Tags = slices.Clone(tags)
	return errors.Join(errs...)
}

func (h *ClientHierarchy[C]) removeFrom(ts *TagSet[C], c C) error {
	id, ok := Locate(ts, c)
	if !ok {
		return nil
	}
	if _, err := ts.Layout.DeleteContainer(ts.Tree, id); err != nil {
		return fmt.Errorf("remove from %q: %w", ts.Name, err)
	}
	return nil
}

// Locate finds the container holding c in a tag set.
func Locate[C comparable](ts *TagSet[C], c C) (arena.ID, bool) {
	return ts.Tree.FindClient(func(p C) bool { return p == c })
}

// Client returns the bookkeeping of c.
func (h *ClientHierarchy[C]) Client(c C) (*ClientInfo, bool) {
	info, ok := h.clients[c]
	return info, ok
}

// Clients returns the managed clients in management order.
func (h *ClientHierarchy[C]) Clients() []C {
	return slices.Clone(h.order)
}

// Render computes the geometries of the clients visible on one screen.
func (h *ClientHierarchy[C]) Render(screen string) (map[C]entity.Geometry, error) {
	s, ok := h.Screen(screen)
	if !ok {
		return nil, fmt.Errorf("render %q: %w", screen, ErrUnknownScreen)
	}
	ts, err := h.tagSet(s.TagSet)
	if err != nil {
		return nil, err
	}
	out := make(map[C]entity.Geometry)
	for id, g := range ts.Layout.Render(ts.Tree, s.Geometry) {
		n, ok := ts.Tree.Get(id)
		if ok {
			out[n.Payload] = g
		}
	}
	return out, nil
}

// RenderAll renders every screen. A client shown on several screens is
// placed on the first one.
func (h *ClientHierarchy[C]) RenderAll() (map[C]entity.Geometry, error) {
	out := make(map[C]entity.Geometry)
	for _, s := range h.screens {
		geoms, err := h.Render(s.Name)
		if err != nil {
			return nil, err
		}
		for c, g := range geoms {
			if _, seen := out[c]; !seen {
				out[c] = g
			}
		}
	}
	return out, nil
}

// SyncMapped records which clients are visible and returns, in management
// order, those that became visible and those that became hidden.
func (h *ClientHierarchy[C]) SyncMapped(visible map[C]entity.Geometry) (mapped, unmapped []C) {
	for _, c := range h.order {
		info := h.clients[c]
		_, shown := visible[c]
		switch {
		case shown && !info.Mapped:
			mapped = append(mapped, c)
		case !shown && info.Mapped:
			unmapped = append(unmapped, c)
		}
		info.Mapped = shown
	}
	return mapped, unmapped
}
