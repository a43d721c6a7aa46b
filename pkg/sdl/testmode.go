package sdl

import "github.com/JxR-TestMeasure/siglent-sdl1000x/pkg/validate"

// TestFunctions groups the auxiliary test mode facades under one access
// point, mirroring the instrument's front panel grouping.
type TestFunctions struct {
	LED  *ModeLED
	Bat  *ModeBattery
	List *ModeList
	Prog *ModeProgram
	OCP  *ModeOCP
	OPP  *ModeOPP
	Time *ModeTime
}

func newTestFunctions(cmd *Command, input *Input, limits validate.TestLimits) *TestFunctions {
	return &TestFunctions{
		LED:  newModeLED(cmd, input, limits),
		Bat:  newModeBattery(cmd, input, limits),
		List: newModeList(cmd, input, limits),
		Prog: newModeProgram(cmd, input, limits),
		OCP:  newModeOCP(cmd, input, limits),
		OPP:  newModeOPP(cmd, input, limits),
		Time: newModeTime(cmd, input, limits),
	}
}
