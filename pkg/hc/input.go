package hc

// InputType names a single input the core can query from the frontend.
// Button values are 0 (released) or 1 (pressed); analog axes report a
// signed magnitude; touch reports packed x/y coordinates.
type InputType int32

const (
	InputTypeNull InputType = iota
	InputTypeKeypad1Up
	InputTypeKeypad1Down
	InputTypeKeypad1Left
	InputTypeKeypad1Right
	InputTypeKeypad2Up
	InputTypeKeypad2Down
	InputTypeKeypad2Left
	InputTypeKeypad2Right
	InputTypeButtonA
	InputTypeButtonB
	InputTypeButtonX
	InputTypeButtonY
	InputTypeButtonZ
	InputTypeButtonL1
	InputTypeButtonR1
	InputTypeButtonL2
	InputTypeButtonR2
	InputTypeButtonL3
	InputTypeButtonR3
	InputTypeButtonStart
	InputTypeButtonSelect
	InputTypeTouch
	InputTypeAnalog1Horizontal
	InputTypeAnalog1Vertical
	InputTypeAnalog2Horizontal
	InputTypeAnalog2Vertical

	inputTypeCount
)

// Valid reports whether the input type is a known, non-null value.
func (t InputType) Valid() bool {
	return t > InputTypeNull && t < inputTypeCount
}
