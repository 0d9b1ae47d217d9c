package sim

// InputIntent is the per-tick movement intent, already merged from whatever
// sources are live (keyboard, gamepad, touch buttons). The collector writes
// it, the stepper only reads it.
type InputIntent struct {
	Left  bool
	Right bool
	Jump  bool
}
