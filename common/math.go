package common

const (
	BaseWidth  = 960
	BaseHeight = 544
)

// ClampSpeed clamps a signed speed to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
