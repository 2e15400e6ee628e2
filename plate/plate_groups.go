package plate

import (
	"fmt"

	"github.com/arloliu/microplate/errs"
)

// AddGroups stores copies of lists as named groups. A list is rejected when it
// names a position outside the plate or when a group with the same positions
// already exists.
func (p *Plate) AddGroups(lists ...*WellList) bool {
	ok := true
	for _, l := range lists {
		if err := p.addGroup(l); err != nil {
			reject(p.logger, "add", "group", groupName(l), err)
			ok = false
		}
	}

	return ok
}

func (p *Plate) addGroup(l *WellList) error {
	if l == nil {
		return fmt.Errorf("%w: nil well list", errs.ErrInvalidArgument)
	}
	for idx := range l.All() {
		if err := p.checkIndex(idx); err != nil {
			return err
		}
	}
	if !p.groups.Insert(l.Clone()) {
		return fmt.Errorf("%w: group %q already present", errs.ErrDuplicate, l.label)
	}

	return nil
}

// RemoveGroups deletes the groups holding the same positions as lists.
func (p *Plate) RemoveGroups(lists ...*WellList) bool {
	ok := true
	for _, l := range lists {
		var err error
		switch {
		case l == nil:
			err = fmt.Errorf("%w: nil well list", errs.ErrInvalidArgument)
		default:
			if _, found := p.groups.Delete(l); !found {
				err = fmt.Errorf("%w: %s", errs.ErrGroupNotFound, l)
			}
		}
		if err != nil {
			reject(p.logger, "remove", "group", groupName(l), err)
			ok = false
		}
	}

	return ok
}

// RemoveGroupLabels deletes every group carrying one of labels. The result is
// false if some label matched no group.
func (p *Plate) RemoveGroupLabels(labels ...string) bool {
	ok := true
	for _, label := range labels {
		if p.groups.DeleteFunc(func(l *WellList) bool { return l.label == label }) == 0 {
			reject(p.logger, "remove", "group", label, fmt.Errorf("%w: %q", errs.ErrGroupNotFound, label))
			ok = false
		}
	}

	return ok
}

// Groups returns copies of the stored groups in ascending order.
func (p *Plate) Groups() []*WellList {
	out := make([]*WellList, 0, p.groups.Len())
	for g := range p.groups.All() {
		out = append(out, g.Clone())
	}

	return out
}

// GroupCount returns the number of stored groups.
func (p *Plate) GroupCount() int {
	return p.groups.Len()
}

// ContainsGroup reports whether a group with the positions of l exists.
func (p *Plate) ContainsGroup(l *WellList) bool {
	return l != nil && p.groups.Contains(l)
}

// ClearGroups removes every group. Wells are kept.
func (p *Plate) ClearGroups() {
	p.groups.Clear()
}

// Group resolves the stored group matching l into a WellSet labeled with the
// group label. Positions holding a well yield the stored well itself; empty
// positions yield fresh wells without data.
func (p *Plate) Group(l *WellList) (*WellSet, bool) {
	if l == nil {
		return nil, false
	}
	g, ok := p.groups.Get(l)
	if !ok {
		return nil, false
	}

	return p.resolve(g), true
}

// GroupLabel resolves the first group carrying label.
func (p *Plate) GroupLabel(label string) (*WellSet, bool) {
	for g := range p.groups.All() {
		if g.label == label {
			return p.resolve(g), true
		}
	}

	return nil, false
}

// AllGroups resolves every stored group, in group order.
func (p *Plate) AllGroups() []*WellSet {
	out := make([]*WellSet, 0, p.groups.Len())
	for g := range p.groups.All() {
		out = append(out, p.resolve(g))
	}

	return out
}

func (p *Plate) resolve(l *WellList) *WellSet {
	set := NewWellSet(WithSetLabel(l.label), WithSetLogger(p.logger))
	for idx := range l.All() {
		w, ok := p.data.GetIndex(idx)
		if !ok {
			w = newWell(idx, nil)
		}
		set.wells.Insert(w)
	}

	return set
}

func groupName(l *WellList) string {
	if l == nil {
		return "<nil>"
	}

	return l.label
}
