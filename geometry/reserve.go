package geometry

// ReserveColumnSpace determines what happens to the space of a column
// that has no windows in it. With ReserveNone the populated columns take
// the empty space over; the other variants keep the footprint blank.
type ReserveColumnSpace string

const (
	// ReserveNone reclaims empty column space for the populated columns.
	ReserveNone ReserveColumnSpace = "none"

	// Reserve keeps empty column space blank, in place.
	Reserve ReserveColumnSpace = "reserve"

	// ReserveAndCenter keeps the amount of empty space but centers the
	// populated columns, accounting for the blank space on both sides.
	ReserveAndCenter ReserveColumnSpace = "reserve-and-center"
)

// Valid reports whether the value is one of the known variants.
func (r ReserveColumnSpace) Valid() bool {
	switch r {
	case ReserveNone, Reserve, ReserveAndCenter:
		return true
	}
	return false
}

// IsReserved reports whether empty column space stays blank.
func (r ReserveColumnSpace) IsReserved() bool {
	return r == Reserve || r == ReserveAndCenter
}
