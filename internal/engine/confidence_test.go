package engine

import (
	"testing"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

func TestScoreConfidence_FixedNoEdgeScore(t *testing.T) {
	card := testCard(8)
	solid := model.FavoriteCall{ProgramNumber: 1, Status: model.FavoriteSolid}
	// A huge score gap would normally add points; the short circuit wins.
	card.Entrants[0].BaselineScore = 150
	got := ScoreConfidence(card, nil, model.RaceChalk, solid, model.ValueEntrant{Tier: model.ValueNone})
	if got != 25 {
		t.Errorf("no-edge score = %d, want fixed 25", got)
	}
	if TierFor(got) != model.TierMinimal {
		t.Errorf("no-edge tier = %s, want MINIMAL", TierFor(got))
	}
}

func TestScoreConfidence_BaseScores(t *testing.T) {
	card := testCard(8)
	vulnerable := model.FavoriteCall{ProgramNumber: 1, Status: model.FavoriteVulnerable}
	tests := []struct {
		name  string
		value model.ValueEntrant
		want  int
	}{
		{"very strong", model.ValueEntrant{Identified: true, Tier: model.ValueVeryStrong, BotCount: 2}, 85},
		{"strong", model.ValueEntrant{Identified: true, Tier: model.ValueStrong, BotCount: 2}, 80},
		{"moderate", model.ValueEntrant{Identified: true, Tier: model.ValueModerate, BotCount: 1}, 70},
		{"weak", model.ValueEntrant{Identified: true, Tier: model.ValueWeak, BotCount: 1}, 50},
		{"vulnerable favorite without value", model.ValueEntrant{Tier: model.ValueNone}, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreConfidence(card, nil, model.RaceCompetitive, vulnerable, tt.value); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreConfidence_Adjustments(t *testing.T) {
	vulnerable := model.FavoriteCall{ProgramNumber: 1, Status: model.FavoriteVulnerable}
	strong := model.ValueEntrant{Identified: true, Tier: model.ValueStrong, BotCount: 2}

	t.Run("wide open subtracts ten", func(t *testing.T) {
		card := testCard(8)
		if got := ScoreConfidence(card, nil, model.RaceWideOpen, vulnerable, strong); got != 70 {
			t.Errorf("score = %d, want 70", got)
		}
	})

	t.Run("three-analyzer convergence adds ten", func(t *testing.T) {
		card := testCard(8)
		v := model.ValueEntrant{Identified: true, Tier: model.ValueVeryStrong, BotCount: 3}
		if got := ScoreConfidence(card, nil, model.RaceCompetitive, vulnerable, v); got != 95 {
			t.Errorf("score = %d, want 95", got)
		}
	})

	t.Run("top-two gap adds five", func(t *testing.T) {
		card := testCard(8)
		card.Entrants[0].BaselineScore = 120 // 28 clear of rank 2
		if got := ScoreConfidence(card, nil, model.RaceCompetitive, vulnerable, strong); got != 85 {
			t.Errorf("score = %d, want 85", got)
		}
	})

	t.Run("widespread conflicts subtract ten", func(t *testing.T) {
		card := testCard(8)
		signals := []model.AggregatedSignal{
			{ProgramNumber: 1, ConflictingSignals: true},
			{ProgramNumber: 4, ConflictingSignals: true},
		}
		if got := ScoreConfidence(card, signals, model.RaceCompetitive, vulnerable, strong); got != 70 {
			t.Errorf("score = %d, want 70", got)
		}
	})

	t.Run("clamped to 100", func(t *testing.T) {
		card := testCard(8)
		card.Entrants[0].BaselineScore = 120
		v := model.ValueEntrant{Identified: true, Tier: model.ValueVeryStrong, BotCount: 4}
		if got := ScoreConfidence(card, nil, model.RaceCompetitive, vulnerable, v); got != 100 {
			t.Errorf("score = %d, want clamp at 100", got)
		}
	})
}

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  model.ConfidenceTier
	}{
		{100, model.TierHigh},
		{80, model.TierHigh},
		{79, model.TierMedium},
		{60, model.TierMedium},
		{59, model.TierLow},
		{40, model.TierLow},
		{39, model.TierMinimal},
		{0, model.TierMinimal},
	}
	for _, tt := range tests {
		if got := TierFor(tt.score); got != tt.want {
			t.Errorf("TierFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestSize_FlatMultipliers(t *testing.T) {
	tests := []struct {
		name     string
		template model.TicketTemplate
		score    int
		wantMult float64
		wantRec  model.SizingRecommendation
	}{
		{"pass template always half stakes", model.TemplatePass, 25, 0.5, model.SizingAlgorithmOnly},
		{"low confidence sits out", model.TemplateB, 35, 0, model.SizingPass},
		{"standard stakes", model.TemplateA, 70, 1.0, model.SizingStandard},
		{"boundary at forty", model.TemplateC, 40, 1.0, model.SizingStandard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Size(tt.template, tt.score)
			if got.Multiplier != tt.wantMult || got.Recommendation != tt.wantRec {
				t.Errorf("sizing = %+v, want %v/%s", got, tt.wantMult, tt.wantRec)
			}
		})
	}
}
