package notifier

import (
	"strings"
	"testing"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

func TestFormatTicketReport(t *testing.T) {
	card := &model.RaceCard{
		RaceID: "R5", Track: "Keeneland", RaceNumber: 5, Date: "2026-04-10",
		Entrants: []model.Entrant{
			{ProgramNumber: 1, Name: "Alpha", BaselineRank: 1},
			{ProgramNumber: 2, Name: "Bravo", BaselineRank: 2},
		},
	}
	tc := &model.TicketConstruction{
		RaceID:            "R5",
		RaceType:          model.RaceCompetitive,
		Favorite:          model.FavoriteCall{ProgramNumber: 1, Status: model.FavoriteSolid},
		Value:             model.ValueEntrant{Identified: true, ProgramNumber: 2, Name: "Bravo", Tier: model.ValueStrong, BotCount: 2},
		Template:          model.TemplateA,
		TemplateRationale: "solid favorite with convergent value",
		Exacta:            model.WagerLine{Positions: model.PositionSet{Win: []int{1}, Place: []int{2, 3, 4}}, Combinations: 3, UnitStake: 2, Cost: 6},
		Trifecta:          model.WagerLine{Positions: model.PositionSet{Win: []int{1}, Place: []int{2, 3, 4}, Show: []int{2, 3, 4}}, Combinations: 6, UnitStake: 1, Cost: 6},
		TotalCost:         12,
		ConfidenceScore:   80,
		ConfidenceTier:    model.TierHigh,
		Sizing:            model.Sizing{Multiplier: 1.0, Recommendation: model.SizingStandard},
		Verdict:           model.Verdict{Action: model.ActionBet, Summary: "key the favorite"},
		Insights: []model.EntrantInsight{
			{ProgramNumber: 1, Name: "Alpha", BaselineRank: 1, Comment: "holds baseline rank 1"},
			{ProgramNumber: 2, Name: "Bravo", BaselineRank: 2, Labels: []string{"VALUE PICK"}, Comment: "two analyzers converge"},
		},
	}

	out := FormatTicketReport(card, tc)
	for _, want := range []string{
		"Keeneland R5",
		"Favorite: #1 SOLID",
		"Value: #2 Bravo (STRONG, 2 analyzers)",
		"Template A",
		"3 combos @ $2.00 = $6.00",
		"win [1] / place [2,3,4]",
		"Confidence: 80/100 (HIGH)",
		"BET",
		"VALUE PICK",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "#1 Alpha []") {
		t.Error("unlabeled entrant should not appear in notes")
	}
}

func TestFormatTicketReportEmptyField(t *testing.T) {
	card := &model.RaceCard{RaceID: "R1", Track: "Belmont", RaceNumber: 1}
	tc := &model.TicketConstruction{RaceID: "R1", NoAnalysis: true}
	out := FormatTicketReport(card, tc)
	if !strings.Contains(out, "No runnable entrants") {
		t.Errorf("empty-field report = %s", out)
	}
}
