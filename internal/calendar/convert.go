package calendar

// ToDaisy converts any representable Value to its Daisy (absolute day
// count) equivalent. Unknown and MD (no year) values cannot be placed on
// the absolute timeline and are returned unchanged with ok=false.
func ToDaisy(v Value) (Value, bool) {
	switch v.Tag {
	case Daisy:
		return v, true
	case YMD:
		return NewDaisy(DaysFromCivil(v.Y, v.M, v.D)), true
	case YMCW:
		return NewDaisy(YmcwToDaisy(v.Y, v.M, v.C, v.W)), true
	case Bizda:
		return NewDaisy(BizdaToDaisy(v.Y, v.M, v.BD)), true
	case YWD:
		return NewDaisy(YwdToDaisy(v.Y, v.C, v.W)), true
	default:
		return v, false
	}
}

// FromDaisy converts a Daisy value z back into representation tag, mirroring
// the representation of an original Value of that tag. It is the inverse
// a weekday-targeted rounding rule calls after round-tripping through
// Daisy, to come back out under the value's original tag.
func FromDaisy(z int32, tag Tag) Value {
	switch tag {
	case YMD:
		y, m, d := CivilFromDays(z)
		return Value{Tag: YMD, Y: y, M: m, D: d}
	case YMCW:
		y, m, c, w := DaisyToYmcw(z)
		return Value{Tag: YMCW, Y: y, M: m, C: c, W: w}
	case Bizda:
		y, m, bd := DaisyToBizda(z)
		return Value{Tag: Bizda, Y: y, M: m, BD: bd}
	case YWD:
		y, c, w := DaisyToYwd(z)
		return Value{Tag: YWD, Y: y, C: c, W: w}
	case Daisy:
		return NewDaisy(z)
	default:
		return Value{Tag: tag}
	}
}

// AddDays returns v with its date part advanced by n days (n may be
// negative), preserving v's representation tag. This is the date-add
// primitive a time-rounding carry applies against the date half of a
// combined value.
func AddDays(v Value, n int) Value {
	if n == 0 {
		return v
	}
	d, ok := ToDaisy(v)
	if !ok {
		return v
	}
	d.Serial += int32(n)
	return FromDaisy(d.Serial, v.Tag)
}
