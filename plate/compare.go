package plate

import (
	"fmt"

	"github.com/arloliu/microplate/errs"
)

// CompareAny compares two values of the same model type: WellIndex, *Well,
// *WellList, *WellSet, *Plate or *Stack. Values of different or unsupported
// types report errs.ErrTypeMismatch.
func CompareAny(a, b any) (int, error) {
	switch x := a.(type) {
	case WellIndex:
		if y, ok := b.(WellIndex); ok {
			return x.Compare(y), nil
		}
	case *Well:
		if y, ok := b.(*Well); ok && x != nil && y != nil {
			return x.Compare(y), nil
		}
	case *WellList:
		if y, ok := b.(*WellList); ok && x != nil && y != nil {
			return x.Compare(y), nil
		}
	case *WellSet:
		if y, ok := b.(*WellSet); ok && x != nil && y != nil {
			return x.Compare(y), nil
		}
	case *Plate:
		if y, ok := b.(*Plate); ok && x != nil && y != nil {
			return x.Compare(y), nil
		}
	case *Stack:
		if y, ok := b.(*Stack); ok && x != nil && y != nil {
			return x.Compare(y), nil
		}
	}

	return 0, fmt.Errorf("%w: cannot compare %T with %T", errs.ErrTypeMismatch, a, b)
}
