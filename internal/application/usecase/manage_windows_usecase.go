package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tagwm/internal/application/port"
	"github.com/bnema/tagwm/internal/domain/arena"
	"github.com/bnema/tagwm/internal/domain/hierarchy"
	"github.com/bnema/tagwm/internal/domain/layout"
	"github.com/bnema/tagwm/internal/logging"
)

// ErrNoFocus is returned by operations that act on the focused client when
// the current tag set has none.
var ErrNoFocus = errors.New("no focused client")

// ManageWindowsUseCase applies window events and user commands to the
// client hierarchy and pushes the resulting placement to the display.
type ManageWindowsUseCase[C comparable] struct {
	hierarchy *hierarchy.ClientHierarchy[C]
	display   port.Display[C]
	params    layout.Params
}

// NewManageWindowsUseCase creates a window management use case. params seed
// layouts built by SwitchLayout.
func NewManageWindowsUseCase[C comparable](
	h *hierarchy.ClientHierarchy[C],
	display port.Display[C],
	params layout.Params,
) *ManageWindowsUseCase[C] {
	return &ManageWindowsUseCase[C]{
		hierarchy: h,
		display:   display,
		params:    params,
	}
}

// Hierarchy exposes the managed state for read-only consumers.
func (uc *ManageWindowsUseCase[C]) Hierarchy() *hierarchy.ClientHierarchy[C] {
	return uc.hierarchy
}

func (uc *ManageWindowsUseCase[C]) current(ctx context.Context) (context.Context, *hierarchy.TagSet[C], error) {
	ts, err := uc.hierarchy.Current()
	if err != nil {
		return ctx, nil, err
	}
	return logging.WithTagSet(ctx, ts.Name), ts, nil
}

// OpenWindow starts managing c. Without tags the client joins the first tag
// of the current tag set.
func (uc *ManageWindowsUseCase[C]) OpenWindow(ctx context.Context, c C, tags []string) error {
	ctx = logging.WithClient(ctx, c)
	log := logging.FromContext(ctx)
	log.Debug().Strs("tags", tags).Msg("opening window")

	if len(tags) == 0 {
		_, ts, err := uc.current(ctx)
		if err != nil {
			return fmt.Errorf("open window: %w", err)
		}
		if len(ts.Tags) > 0 {
			tags = ts.Tags[:1]
		}
	}

	if err := uc.hierarchy.Manage(c, tags); err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	if err := uc.Refresh(ctx); err != nil {
		return err
	}
	if err := uc.focusDisplay(ctx); err != nil {
		return err
	}

	log.Info().Strs("tags", tags).Msg("window opened")
	return nil
}

// CloseWindow stops managing c.
func (uc *ManageWindowsUseCase[C]) CloseWindow(ctx context.Context, c C) error {
	ctx = logging.WithClient(ctx, c)
	log := logging.FromContext(ctx)
	log.Debug().Msg("closing window")

	if err := uc.hierarchy.Unmanage(c); err != nil {
		return fmt.Errorf("close window: %w", err)
	}
	if err := uc.Refresh(ctx); err != nil {
		return err
	}
	if err := uc.focusDisplay(ctx); err != nil {
		return err
	}

	log.Info().Msg("window closed")
	return nil
}

// FocusWindow focuses c in the current tag set.
func (uc *ManageWindowsUseCase[C]) FocusWindow(ctx context.Context, c C) error {
	ctx = logging.WithClient(ctx, c)
	ctx, ts, err := uc.current(ctx)
	if err != nil {
		return fmt.Errorf("focus window: %w", err)
	}
	logging.FromContext(ctx).Debug().Msg("focusing window")

	id, ok := hierarchy.Locate(ts, c)
	if !ok {
		return fmt.Errorf("focus window %v: %w", c, hierarchy.ErrUnknownClient)
	}
	if err := ts.Tree.Focus(id); err != nil {
		return fmt.Errorf("focus window: %w", err)
	}
	return uc.display.Focus(ctx, c)
}

// focused returns the focused container of the current tag set.
func (uc *ManageWindowsUseCase[C]) focused(ctx context.Context) (context.Context, *hierarchy.TagSet[C], arena.ID, error) {
	ctx, ts, err := uc.current(ctx)
	if err != nil {
		return ctx, nil, arena.ID{}, err
	}
	id := ts.Tree.Root().Focused()
	if !ts.Tree.IsAttached(id) {
		return ctx, ts, arena.ID{}, ErrNoFocus
	}
	return ctx, ts, id, nil
}

// neighbour resolves dir from the focused container and repairs the tree
// shape if the lookup disturbed it.
func (uc *ManageWindowsUseCase[C]) neighbour(ctx context.Context, dir layout.Direction) (context.Context, *hierarchy.TagSet[C], arena.ID, arena.ID, bool, error) {
	ctx, ts, from, err := uc.focused(ctx)
	if err != nil {
		return ctx, nil, arena.ID{}, arena.ID{}, false, err
	}
	to, ok := ts.Layout.FindContainer(ts.Tree, from, dir)
	if !ts.Layout.CheckTree(ts.Tree) {
		ts.Layout.FixupTree(ts.Tree)
	}
	return ctx, ts, from, to, ok, nil
}

// MoveFocus focuses the neighbour of the focused client in dir. It reports
// false when there is none.
func (uc *ManageWindowsUseCase[C]) MoveFocus(ctx context.Context, dir layout.Direction) (bool, error) {
	ctx, ts, _, to, ok, err := uc.neighbour(ctx, dir)
	if err != nil {
		return false, fmt.Errorf("move focus %s: %w", dir, err)
	}
	log := logging.FromContext(ctx)
	log.Debug().Str("direction", dir.String()).Msg("moving focus")
	if !ok {
		log.Debug().Msg("no container in direction")
		return false, nil
	}

	if err := ts.Tree.Focus(to); err != nil {
		return false, fmt.Errorf("move focus %s: %w", dir, err)
	}
	return true, uc.focusDisplay(ctx)
}

// SwapFocused exchanges the focused client with its neighbour in dir.
func (uc *ManageWindowsUseCase[C]) SwapFocused(ctx context.Context, dir layout.Direction) (bool, error) {
	ctx, ts, from, to, ok, err := uc.neighbour(ctx, dir)
	if err != nil {
		return false, fmt.Errorf("swap %s: %w", dir, err)
	}
	if !ok {
		return false, nil
	}

	changed, err := ts.Layout.SwapContainers(ts.Tree, from, to)
	if err != nil {
		return false, fmt.Errorf("swap %s: %w", dir, err)
	}
	if !changed {
		return false, nil
	}
	logging.FromContext(ctx).Info().Str("direction", dir.String()).Msg("swapped windows")
	return true, uc.Refresh(ctx)
}

// MoveFocused moves the focused client next to its neighbour in dir.
func (uc *ManageWindowsUseCase[C]) MoveFocused(ctx context.Context, dir layout.Direction) (bool, error) {
	ctx, ts, from, to, ok, err := uc.neighbour(ctx, dir)
	if err != nil {
		return false, fmt.Errorf("move %s: %w", dir, err)
	}
	if !ok {
		return false, nil
	}

	changed, err := ts.Layout.MoveContainer(ts.Tree, from, to)
	if err != nil {
		return false, fmt.Errorf("move %s: %w", dir, err)
	}
	if !changed {
		return false, nil
	}
	logging.FromContext(ctx).Info().Str("direction", dir.String()).Msg("moved window")
	return true, uc.Refresh(ctx)
}

// SendLayoutMessage forwards a parameter edit to the current layout.
func (uc *ManageWindowsUseCase[C]) SendLayoutMessage(ctx context.Context, msg layout.Message) (bool, error) {
	ctx, ts, err := uc.current(ctx)
	if err != nil {
		return false, fmt.Errorf("layout message: %w", err)
	}
	if !ts.Layout.ProcessMsg(msg) {
		logging.FromContext(ctx).Debug().Uint16("param", uint16(msg.Param)).Msg("layout message ignored")
		return false, nil
	}
	return true, uc.Refresh(ctx)
}

// SwitchLayout replaces the layout of the current tag set.
func (uc *ManageWindowsUseCase[C]) SwitchLayout(ctx context.Context, name string) error {
	ctx, _, err := uc.current(ctx)
	if err != nil {
		return fmt.Errorf("switch layout: %w", err)
	}
	l, err := layout.New[C](name, uc.params)
	if err != nil {
		return fmt.Errorf("switch layout: %w", err)
	}
	if err := uc.hierarchy.SetLayout(uc.hierarchy.FocusedScreen().TagSet, l); err != nil {
		return fmt.Errorf("switch layout: %w", err)
	}

	logging.FromContext(ctx).Info().Str("layout", name).Msg("layout switched")
	return uc.Refresh(ctx)
}

// CycleLayout switches the current tag set to the next registered layout.
func (uc *ManageWindowsUseCase[C]) CycleLayout(ctx context.Context) (string, error) {
	_, ts, err := uc.current(ctx)
	if err != nil {
		return "", fmt.Errorf("cycle layout: %w", err)
	}
	next := layout.Next(ts.Layout.Name())
	return next, uc.SwitchLayout(ctx, next)
}

// Retag replaces the tags of c.
func (uc *ManageWindowsUseCase[C]) Retag(ctx context.Context, c C, tags []string) error {
	ctx = logging.WithClient(ctx, c)
	if err := uc.hierarchy.SetTags(c, tags); err != nil {
		return fmt.Errorf("retag: %w", err)
	}
	logging.FromContext(ctx).Info().Strs("tags", tags).Msg("window retagged")
	return uc.Refresh(ctx)
}

// ToggleFloating flips the floating flag of the focused client and reports
// the new state.
func (uc *ManageWindowsUseCase[C]) ToggleFloating(ctx context.Context) (bool, error) {
	ctx, ts, id, err := uc.focused(ctx)
	if err != nil {
		return false, fmt.Errorf("toggle floating: %w", err)
	}
	n, _ := ts.Tree.Get(id)
	floating := !n.Floating
	if err := ts.Tree.SetFloating(id, floating); err != nil {
		return false, fmt.Errorf("toggle floating: %w", err)
	}

	logging.FromContext(ctx).Info().Bool("floating", floating).Msg("floating toggled")
	return floating, uc.Refresh(ctx)
}

// ViewTagSet shows the tag set called name on the focused screen.
func (uc *ManageWindowsUseCase[C]) ViewTagSet(ctx context.Context, name string) error {
	id, ok := uc.hierarchy.FindTagSet(name)
	if !ok {
		return fmt.Errorf("view %q: %w", name, hierarchy.ErrUnknownTagSet)
	}
	screen := uc.hierarchy.FocusedScreen()
	if screen == nil {
		return fmt.Errorf("view %q: %w", name, hierarchy.ErrUnknownScreen)
	}
	if err := uc.hierarchy.View(screen.Name, id); err != nil {
		return fmt.Errorf("view %q: %w", name, err)
	}

	ctx = logging.WithTagSet(logging.WithScreen(ctx, screen.Name), name)
	logging.FromContext(ctx).Info().Msg("tag set viewed")
	if err := uc.Refresh(ctx); err != nil {
		return err
	}
	return uc.focusDisplay(ctx)
}

// FocusScreen directs subsequent edits to the screen called name.
func (uc *ManageWindowsUseCase[C]) FocusScreen(ctx context.Context, name string) error {
	if err := uc.hierarchy.FocusScreen(name); err != nil {
		return err
	}
	logging.FromContext(logging.WithScreen(ctx, name)).Debug().Msg("screen focused")
	return uc.focusDisplay(ctx)
}

// Refresh renders every screen and pushes geometry and visibility changes
// to the display in management order.
func (uc *ManageWindowsUseCase[C]) Refresh(ctx context.Context) error {
	log := logging.FromContext(ctx)

	geoms, err := uc.hierarchy.RenderAll()
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	mapped, unmapped := uc.hierarchy.SyncMapped(geoms)

	var errs []error
	for _, c := range uc.hierarchy.Clients() {
		if g, ok := geoms[c]; ok {
			if err := uc.display.Configure(ctx, c, g); err != nil {
				errs = append(errs, fmt.Errorf("configure %v: %w", c, err))
			}
		}
	}
	for _, c := range mapped {
		if err := uc.display.Map(ctx, c); err != nil {
			errs = append(errs, fmt.Errorf("map %v: %w", c, err))
		}
	}
	for _, c := range unmapped {
		if err := uc.display.Unmap(ctx, c); err != nil {
			errs = append(errs, fmt.Errorf("unmap %v: %w", c, err))
		}
	}

	log.Debug().
		Int("visible", len(geoms)).
		Int("mapped", len(mapped)).
		Int("unmapped", len(unmapped)).
		Msg("refreshed")
	return errors.Join(errs...)
}

// focusDisplay hands input focus to the focused client of the current tag
// set, if there is one.
func (uc *ManageWindowsUseCase[C]) focusDisplay(ctx context.Context) error {
	ts, err := uc.hierarchy.Current()
	if errors.Is(err, hierarchy.ErrUnknownScreen) {
		return nil
	}
	if err != nil {
		return err
	}
	c, ok := ts.Focused()
	if !ok {
		return nil
	}
	return uc.display.Focus(ctx, c)
}
