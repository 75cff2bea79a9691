package layout

import (
	"math"

	"github.com/bnema/tagwm/internal/domain/entity"
)

// ParamID addresses a layout parameter.
type ParamID uint16

const (
	ParamMasterFactor ParamID = iota // percentage of the screen given to the master area
	ParamFixed                       // lone window keeps the master size
	ParamInverted                    // master on the opposite side
	ParamOffset                      // monocle inset from the screen edges
	ParamColumns                     // grid column count
	ParamBorder                      // inset applied to every tiled window
	ParamNewAsMaster                 // new clients take the master slot
)

// MessageKind tells whether a message sets or shifts a parameter.
type MessageKind uint8

const (
	ParamAbs MessageKind = iota
	ParamAdd
)

// Message is a parameter edit addressed to a layout.
type Message struct {
	Kind  MessageKind
	Param ParamID
	Value int
}

// Abs sets param to value. Booleans treat any non-zero value as true.
func Abs(param ParamID, value int) Message {
	return Message{Kind: ParamAbs, Param: param, Value: value}
}

// Add shifts param by inc. Booleans toggle on any non-zero inc.
func Add(param ParamID, inc int) Message {
	return Message{Kind: ParamAdd, Param: param, Value: inc}
}

func editRatio(msg Message, r *entity.SplitRatio) bool {
	old := *r
	if msg.Kind == ParamAbs {
		*r = entity.NewSplitRatio(msg.Value)
	} else {
		*r = r.Add(msg.Value)
	}
	return *r != old
}

func editBool(msg Message, b *bool) bool {
	old := *b
	if msg.Kind == ParamAbs {
		*b = msg.Value != 0
	} else if msg.Value != 0 {
		*b = !*b
	}
	return *b != old
}

// editInt applies msg to v, saturating at floor.
func editInt(msg Message, v *int, floor int) bool {
	old := *v
	next := msg.Value
	if msg.Kind == ParamAdd {
		switch {
		case msg.Value > 0 && *v > math.MaxInt-msg.Value:
			next = math.MaxInt
		case msg.Value < 0 && *v < math.MinInt-msg.Value:
			next = math.MinInt
		default:
			next = *v + msg.Value
		}
	}
	*v = max(next, floor)
	return *v != old
}
