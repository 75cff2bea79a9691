package layout

import (
	"errors"
	"fmt"

	"github.com/bnema/tagwm/internal/domain/entity"
)

// ErrUnknownLayout is returned for names missing from the registry.
var ErrUnknownLayout = errors.New("unknown layout")

// Params seeds the tunables of a freshly built layout. Each layout reads
// only the fields it understands.
type Params struct {
	MasterFactor entity.SplitRatio
	Inverted     bool
	Fixed        bool
	NewAsMaster  bool
	Columns      int
	Offset       int
	Border       int
}

// DefaultParams returns the parameters used when nothing is configured.
func DefaultParams() Params {
	return Params{
		MasterFactor: entity.DefaultSplitRatio,
		Columns:      2,
	}
}

var names = []string{
	NameManual,
	NameDualStack,
	NameHStack,
	NameVStack,
	NameGrid,
	NameSpiral,
	NameMonocle,
}

// Names lists the registered layouts in cycling order.
func Names() []string {
	return append([]string(nil), names...)
}

// NewArranger builds the flat arranger registered under name.
func NewArranger(name string, p Params) (Arranger, error) {
	stack := StackParams{
		MasterFactor: p.MasterFactor,
		Inverted:     p.Inverted,
		Fixed:        p.Fixed,
		NewAsMaster:  p.NewAsMaster,
		Border:       max(p.Border, 0),
	}
	switch name {
	case NameDualStack:
		return &DualStack{MasterFactor: p.MasterFactor, Fixed: p.Fixed, NewAsMaster: p.NewAsMaster, Border: stack.Border}, nil
	case NameHStack:
		return &HStack{StackParams: stack}, nil
	case NameVStack:
		return &VStack{StackParams: stack}, nil
	case NameGrid:
		return &Grid{Columns: max(p.Columns, 1), Border: stack.Border}, nil
	case NameSpiral:
		return &Spiral{NewAsMaster: p.NewAsMaster, Border: stack.Border}, nil
	case NameMonocle:
		return &Monocle{Offset: max(p.Offset, 0)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}

// New builds the layout registered under name.
func New[C any](name string, p Params) (Layout[C], error) {
	if name == NameManual {
		return NewManual[C](), nil
	}
	arranger, err := NewArranger(name, p)
	if err != nil {
		return nil, err
	}
	return NewFlat[C](arranger), nil
}

// Next returns the name following name in Names, wrapping around.
func Next(name string) string {
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
