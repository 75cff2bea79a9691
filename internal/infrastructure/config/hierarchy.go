package config

import (
	"fmt"

	"github.com/bnema/tagwm/internal/domain/entity"
	"github.com/bnema/tagwm/internal/domain/hierarchy"
	"github.com/bnema/tagwm/internal/domain/layout"
)

// LayoutParams converts the layout section into layout parameters.
func (c *Config) LayoutParams() layout.Params {
	return layout.Params{
		MasterFactor: entity.NewSplitRatio(c.Layout.MasterFactor),
		Inverted:     c.Layout.Inverted,
		Fixed:        c.Layout.Fixed,
		NewAsMaster:  c.Layout.NewAsMaster,
		Columns:      c.Layout.Columns,
		Offset:       c.Layout.MonocleOffset,
		Border:       c.Layout.Border,
	}
}

// BuildHierarchy creates one view per tag and one screen per configured
// output. A screen listing its own tags gets a dedicated view named after
// it; otherwise it starts on the view of the tag at its position, wrapping
// around the tag list.
func BuildHierarchy[C comparable](cfg *Config) (*hierarchy.ClientHierarchy[C], error) {
	if len(cfg.Tags) == 0 {
		return nil, fmt.Errorf("no tags configured")
	}
	params := cfg.LayoutParams()
	h := hierarchy.New[C]()

	newLayout := func(name string) (layout.Layout[C], error) {
		if name == "" {
			name = cfg.Layout.Default
		}
		return layout.New[C](name, params)
	}

	tagViews := make([]hierarchy.TagSetID, 0, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		l, err := newLayout("")
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", tag, err)
		}
		id, err := h.AddTagSet(tag, []string{tag}, l)
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", tag, err)
		}
		tagViews = append(tagViews, id)
	}

	for i, s := range cfg.Screens {
		geom := entity.NewGeometry(s.X, s.Y, s.Width, s.Height)

		var view hierarchy.TagSetID
		if len(s.Tags) > 0 {
			l, err := newLayout(s.Layout)
			if err != nil {
				return nil, fmt.Errorf("screen %q: %w", s.Name, err)
			}
			if view, err = h.AddTagSet(s.Name, s.Tags, l); err != nil {
				return nil, fmt.Errorf("screen %q: %w", s.Name, err)
			}
		} else {
			view = tagViews[i%len(tagViews)]
			if s.Layout != "" {
				l, err := newLayout(s.Layout)
				if err != nil {
					return nil, fmt.Errorf("screen %q: %w", s.Name, err)
				}
				if err := h.SetLayout(view, l); err != nil {
					return nil, fmt.Errorf("screen %q: %w", s.Name, err)
				}
			}
		}

		if err := h.AddScreen(s.Name, geom, view); err != nil {
			return nil, fmt.Errorf("screen %q: %w", s.Name, err)
		}
	}
	return h, nil
}
