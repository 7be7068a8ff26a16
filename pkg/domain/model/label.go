package model

import (
	"strings"

	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Label is an issue label created on the new repository.
type Label struct {
	Name  string
	Color string
}

// ParseLabel parses a "name:color" pair, e.g. "bug:d73a4a". A missing
// colon or an empty half is an input error of that single item; the
// caller reports it and keeps going with the remaining labels.
func ParseLabel(s string) (Label, error) {
	name, color, ok := strings.Cut(s, ":")
	if !ok {
		return Label{}, goerr.Wrap(types.ErrInvalidLabel, "label must be name:color", goerr.V("input", s))
	}

	label := Label{
		Name:  strings.TrimSpace(name),
		Color: strings.TrimSpace(color),
	}
	if label.Name == "" || label.Color == "" {
		return Label{}, goerr.Wrap(types.ErrInvalidLabel, "label name and color must not be empty", goerr.V("input", s))
	}

	return label, nil
}

// ParseLabels parses all entries and returns the valid labels together
// with the per-item errors of the rejected ones.
func ParseLabels(inputs []string) ([]Label, []error) {
	var labels []Label
	var errs []error
	for _, s := range inputs {
		if strings.TrimSpace(s) == "" {
			continue
		}
		label, err := ParseLabel(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		labels = append(labels, label)
	}
	return labels, errs
}
