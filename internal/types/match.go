package types

// Grade is the letter grade band for a total match score.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
)

// ScoreBreakdown holds the five component sub-scores, each in [0,1].
type ScoreBreakdown struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Location   float64 `json:"location"`
	Semantic   float64 `json:"semantic"`
	Cultural   float64 `json:"cultural"`
}

// MatchScore is the result of comparing one job to one candidate. Instances
// are computed fresh per request and never mutated.
type MatchScore struct {
	JobID        int            `json:"job_id"`
	CandidateID  int            `json:"candidate_id"`
	Total        float64        `json:"total"` // 0..1
	Grade        Grade          `json:"grade"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
	CommonSkills []string       `json:"common_skills"`
}
