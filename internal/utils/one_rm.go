package utils

// CalculateEpley1RM estimates a one-rep max from a set.
func CalculateEpley1RM(kg, reps int) float32 {
	if reps == 0 {
		return 0
	}

	return float32(kg) * (1 + float32(reps)/30)
}
