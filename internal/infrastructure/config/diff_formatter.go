package config

import (
	"fmt"
	"strings"

	"github.com/bnema/tagwm/internal/application/port"
)

var _ port.DiffFormatter = (*DiffFormatter)(nil)

var changeMarks = map[port.KeyChangeType]string{
	port.KeyChangeAdded:   "+",
	port.KeyChangeRemoved: "-",
	port.KeyChangeRenamed: "~",
}

// DiffFormatter prints key changes one per line, marked +, - or ~, with the
// key column aligned and a count summary at the end.
type DiffFormatter struct{}

func NewDiffFormatter() *DiffFormatter {
	return &DiffFormatter{}
}

func (*DiffFormatter) FormatChangesAsDiff(changes []port.KeyChange) string {
	if len(changes) == 0 {
		return "No changes detected."
	}

	labels := make([]string, len(changes))
	width := 0
	for i, c := range changes {
		labels[i] = diffLabel(c)
		width = max(width, len(labels[i]))
	}

	counts := make(map[port.KeyChangeType]int, len(changeMarks))
	var sb strings.Builder
	for i, c := range changes {
		counts[c.Type]++
		line := fmt.Sprintf("  %s %-*s  %s", changeMarks[c.Type], width, labels[i], diffValue(c))
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "\n  %d added, %d renamed, %d removed\n",
		counts[port.KeyChangeAdded], counts[port.KeyChangeRenamed], counts[port.KeyChangeRemoved])
	return sb.String()
}

func diffLabel(c port.KeyChange) string {
	switch c.Type {
	case port.KeyChangeAdded:
		return c.NewKey
	case port.KeyChangeRenamed:
		return c.OldKey + " -> " + c.NewKey
	default:
		return c.OldKey
	}
}

// diffValue is the default for added keys and the user's value otherwise.
func diffValue(c port.KeyChange) string {
	if c.Type == port.KeyChangeAdded {
		return c.NewValue
	}
	return c.OldValue
}
