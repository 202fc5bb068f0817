package clock

import "time"

// ist is Asia/Kolkata, the civil timezone all filtering and prompt dates
// use. Falls back to a fixed +05:30 zone if the tz database is missing.
var ist = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// Location returns the Indian Standard Time location.
func Location() *time.Location {
	return ist
}

// Now returns the current time in IST.
func Now() time.Time {
	return time.Now().In(ist)
}
