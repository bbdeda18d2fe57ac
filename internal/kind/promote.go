package kind

// Promote implements the historical common-kind table: the wider kind wins,
// equal-width signed/unsigned integers promote to the next wider signed
// kind, and integer magnitude is able to force promotion to a wider float
// (int64 + float32 gives float64).
func Promote(a, b Kind) Kind {
	if a == Invalid || b == Invalid {
		return Invalid
	}
	if a == b {
		return a
	}
	if a == Bool {
		return b
	}
	if b == Bool {
		return a
	}
	if a.Complex() || b.Complex() {
		r := inexactRank(a)
		if br := inexactRank(b); br > r {
			r = br
		}
		return complexByRank[r]
	}
	if a.Inexact() || b.Inexact() {
		r := inexactRank(a)
		if br := inexactRank(b); br > r {
			r = br
		}
		return floatByRank[r]
	}
	return promoteIntegers(a, b)
}

// inexactRank maps any numeric kind onto the float precision ladder.
// Integers land on the narrowest float able to span their magnitude.
func inexactRank(k Kind) int {
	if r := k.floatRank(); r >= 0 {
		return r
	}
	switch k.IntWidth() {
	case 8:
		return 0
	case 16:
		return 1
	default:
		return 2
	}
}

func promoteIntegers(a, b Kind) Kind {
	if a.Signed() == b.Signed() {
		if a.IntWidth() >= b.IntWidth() {
			return a
		}
		return b
	}
	signed, unsigned := a, b
	if a.Unsigned() {
		signed, unsigned = b, a
	}
	if signed.IntWidth() > unsigned.IntWidth() {
		return signed
	}
	switch unsigned.IntWidth() {
	case 8:
		return Int16
	case 16:
		return Int32
	case 32:
		return Int64
	default:
		// No signed integer spans uint64; fall out to float.
		return Float64
	}
}

// PromoteAll folds Promote over a non-empty kind list.
func PromoteAll(kinds []Kind) Kind {
	if len(kinds) == 0 {
		return Invalid
	}
	out := kinds[0]
	for _, k := range kinds[1:] {
		out = Promote(out, k)
	}
	return out
}
