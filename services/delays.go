package services

import "time"

// Delays holds every simulated-latency window in the app as a named,
// injectable duration so tests can run with zero waits.
type Delays struct {
	LoginVerify    time.Duration // verifying the Everytime login handoff
	Acceptance     time.Duration // match request -> counterpart acceptance
	PartnerReply   time.Duration // persona reply "typing" window
	UnlockAccept   time.Duration // extended-profile request -> acceptance
	BookingConnect time.Duration // scheduler connecting to the partner venue
	BookingReset   time.Duration // confirmed banner before the scheduler resets
}

// DefaultDelays mirrors the production timings.
func DefaultDelays() Delays {
	return Delays{
		LoginVerify:    1500 * time.Millisecond,
		Acceptance:     3000 * time.Millisecond,
		PartnerReply:   1500 * time.Millisecond,
		UnlockAccept:   2500 * time.Millisecond,
		BookingConnect: 2000 * time.Millisecond,
		BookingReset:   1500 * time.Millisecond,
	}
}
