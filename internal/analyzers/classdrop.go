package analyzers

import (
	"context"
	"fmt"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// Raw boosts by drop severity. These feed the aggregator's reinforcement-only
// class-drop step.
const (
	boostMajor    = 1.5
	boostModerate = 1.0
	boostMinor    = 0.5
)

// AnalyzeClassDrop compares today's class level against the last running
// line: a drop of two or more levels is MAJOR, one level is MODERATE, and a
// drop from the entrant's recent average is MINOR.
func AnalyzeClassDrop(ctx context.Context, card *model.RaceCard) (*model.ClassDropResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := &model.ClassDropResult{}
	for _, e := range card.Entrants {
		if e.Scratched || len(e.PastRaces) == 0 {
			continue
		}
		drop := e.PastRaces[0].ClassLevel - e.ClassLevel
		switch {
		case drop >= 2:
			result.Findings = append(result.Findings, model.ClassDropFinding{
				ProgramNumber: e.ProgramNumber,
				Severity:      model.DropMajor,
				RawBoost:      boostMajor,
				Note:          fmt.Sprintf("dropping %d class levels", drop),
			})
		case drop == 1:
			result.Findings = append(result.Findings, model.ClassDropFinding{
				ProgramNumber: e.ProgramNumber,
				Severity:      model.DropModerate,
				RawBoost:      boostModerate,
				Note:          "dropping one class level",
			})
		case averageClass(e.PastRaces) > float64(e.ClassLevel):
			result.Findings = append(result.Findings, model.ClassDropFinding{
				ProgramNumber: e.ProgramNumber,
				Severity:      model.DropMinor,
				RawBoost:      boostMinor,
				Note:          "below recent average class",
			})
		}
	}
	return result, nil
}

func averageClass(races []model.PastRace) float64 {
	if len(races) == 0 {
		return 0
	}
	n := len(races)
	if n > 3 {
		n = 3
	}
	sum := 0
	for _, r := range races[:n] {
		sum += r.ClassLevel
	}
	return float64(sum) / float64(n)
}
