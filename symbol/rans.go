package symbol

import "github.com/arloliu/edgebreaker/errs"

// Rans is the reserved range-coded symbol variant. Its entropy tables are
// not part of this codec fragment; a Writer or Reader can be constructed
// with it, but every Encode and Decode fails with errs.ErrRansUnimplemented.
type Rans struct{}

func (Rans) ID() uint8 { return 2 }

func (Rans) Encode(_ *BitWriter, _ Symbol) error {
	return errs.ErrRansUnimplemented
}

func (Rans) Decode(_ *BitReader) (Symbol, error) {
	return Symbol{}, errs.ErrRansUnimplemented
}
