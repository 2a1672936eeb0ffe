package constants

const (
	MsgInvalidSearch   = "Invalid search parameters"
	MsgInvalidSeatMap  = "Invalid seat map request"
	MsgInvalidFlight   = "Invalid flight payload"
	MsgInvalidBooking  = "Invalid booking payload"
	MsgBookingNotFound = "Booking not found"
	MsgBookingFailed   = "Unable to save booking"
	MsgImportFailed    = "Airport import failed"
	MsgSearchFailed    = "Unable to search flights"
)
