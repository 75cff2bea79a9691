package cli

import (
	"context"
	"fmt"

	"github.com/bnema/tagwm/internal/application/usecase"
	"github.com/bnema/tagwm/internal/cli/styles"
	"github.com/bnema/tagwm/internal/domain/hierarchy"
	"github.com/bnema/tagwm/internal/infrastructure/config"
	"github.com/bnema/tagwm/internal/infrastructure/display"
)

// Sandbox is a window manager driving an in-memory display. Clients are
// named w1, w2, ... in opening order.
type Sandbox struct {
	Windows *usecase.ManageWindowsUseCase[string]
	Display *display.Memory[string]
	next    int
}

// NewSandbox builds the screens and tag sets described by cfg.
func NewSandbox(cfg *config.Config) (*Sandbox, error) {
	h, err := config.BuildHierarchy[string](cfg)
	if err != nil {
		return nil, fmt.Errorf("build hierarchy: %w", err)
	}
	d := display.NewMemory[string]()
	return &Sandbox{
		Windows: usecase.NewManageWindowsUseCase[string](h, d, cfg.LayoutParams()),
		Display: d,
	}, nil
}

// Hierarchy returns the managed state.
func (s *Sandbox) Hierarchy() *hierarchy.ClientHierarchy[string] {
	return s.Windows.Hierarchy()
}

// Open creates a new client on the current tag set.
func (s *Sandbox) Open(ctx context.Context) (string, error) {
	s.next++
	name := fmt.Sprintf("w%d", s.next)
	if err := s.Windows.OpenWindow(ctx, name, nil); err != nil {
		return "", err
	}
	return name, nil
}

// OpenN opens n clients.
func (s *Sandbox) OpenN(ctx context.Context, n int) error {
	for range n {
		if _, err := s.Open(ctx); err != nil {
			return err
		}
	}
	return nil
}

// CloseFocused closes the focused client of the current tag set.
func (s *Sandbox) CloseFocused(ctx context.Context) (string, error) {
	ts, err := s.Hierarchy().Current()
	if err != nil {
		return "", err
	}
	c, ok := ts.Focused()
	if !ok {
		return "", usecase.ErrNoFocus
	}
	if err := s.Windows.CloseWindow(ctx, c); err != nil {
		return "", err
	}
	s.Display.Forget(c)
	return c, nil
}

// Screen returns the focused screen.
func (s *Sandbox) Screen() *hierarchy.Screen {
	return s.Hierarchy().FocusedScreen()
}

// Current returns the tag set shown on the focused screen.
func (s *Sandbox) Current() (*hierarchy.TagSet[string], error) {
	return s.Hierarchy().Current()
}

// NextScreen focuses the screen after the focused one, wrapping around.
func (s *Sandbox) NextScreen(ctx context.Context) (string, error) {
	screens := s.Hierarchy().Screens()
	if len(screens) == 0 {
		return "", hierarchy.ErrUnknownScreen
	}
	cur := s.Screen()
	next := screens[0]
	for i, sc := range screens {
		if sc == cur {
			next = screens[(i+1)%len(screens)]
			break
		}
	}
	return next.Name, s.Windows.FocusScreen(ctx, next.Name)
}

// Rows lists the managed clients of the focused screen's tag set in tree
// order, followed by the hidden ones in management order.
func (s *Sandbox) Rows() []styles.WindowRow {
	ts, err := s.Current()
	if err != nil {
		return nil
	}
	focused, hasFocus := ts.Focused()

	rows := make([]styles.WindowRow, 0, s.Display.Len())
	seen := make(map[string]bool)
	for _, n := range ts.Tree.Clients() {
		c := n.Payload
		seen[c] = true
		w, _ := s.Display.Window(c)
		rows = append(rows, styles.WindowRow{
			Name:     c,
			Geometry: w.Geometry,
			Visible:  w.Mapped,
			Focused:  hasFocus && c == focused,
			Floating: n.Floating,
		})
	}
	for _, c := range s.Hierarchy().Clients() {
		if seen[c] {
			continue
		}
		w, _ := s.Display.Window(c)
		rows = append(rows, styles.WindowRow{Name: c, Geometry: w.Geometry, Visible: w.Mapped})
	}
	return rows
}
