package scoring

import "github.com/jonathan/talent-matcher/internal/types"

// gradeFor bands a total score into its letter grade.
func gradeFor(total float64) types.Grade {
	switch {
	case total >= 0.9:
		return types.GradeAPlus
	case total >= 0.8:
		return types.GradeA
	case total >= 0.7:
		return types.GradeBPlus
	case total >= 0.6:
		return types.GradeB
	case total >= 0.5:
		return types.GradeCPlus
	case total >= 0.4:
		return types.GradeC
	default:
		return types.GradeD
	}
}
