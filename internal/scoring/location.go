package scoring

import "strings"

// remoteIndicators mark a location string as remote-friendly.
var remoteIndicators = []string{"remote", "anywhere", "virtual", "wfh", "work from home"}

// locationScore rates location compatibility:
// 1.0 for remote jobs or an exact match, 0.8 when the candidate wants remote
// but the job is on-site, 0.5 when either side is unknown, 0.3 otherwise.
func locationScore(jobLocation, candidateLocation string) float64 {
	job := strings.ToLower(strings.TrimSpace(jobLocation))
	candidate := strings.ToLower(strings.TrimSpace(candidateLocation))

	if job == "" || candidate == "" {
		return 0.5
	}
	if isRemote(job) {
		return 1.0
	}
	if job == candidate {
		return 1.0
	}
	if isRemote(candidate) {
		return 0.8
	}
	return 0.3
}

func isRemote(location string) bool {
	for _, indicator := range remoteIndicators {
		if strings.Contains(location, indicator) {
			return true
		}
	}
	return false
}
