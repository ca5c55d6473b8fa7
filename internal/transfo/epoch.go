package transfo

const (
	// MinEpoch and MaxEpoch bound the epochs of the time-dependent transformations, both included.
	// Outside, the parameters are used at their reference epoch.
	MinEpoch = 1900.
	MaxEpoch = 2100.
)

// EpochInRange returns true if the epoch (decimal year) is in [MinEpoch, MaxEpoch]
func EpochInRange(epoch float64) bool {
	return epoch >= MinEpoch && epoch <= MaxEpoch
}

// Extrapolate returns the 7 parameters at the epoch: value + rate * (epoch - refEpoch).
// Epochs out of range return the parameters at the reference epoch.
func Extrapolate(p Params14, refEpoch, epoch float64) Params7 {
	var res Params7
	copy(res[:], p[:7])
	if !EpochInRange(epoch) {
		return res
	}
	dt := epoch - refEpoch
	for i := range res {
		res[i] += p[7+i] * dt
	}
	return res
}
