package engine

import (
	"testing"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

func TestClassifyFavorite(t *testing.T) {
	tests := []struct {
		name string
		vf   *model.VulnerableFavoriteResult
		want model.FavoriteStatus
	}{
		{"analyzer absent", nil, model.FavoriteSolid},
		{
			"not vulnerable",
			&model.VulnerableFavoriteResult{ProgramNumber: 1, IsVulnerable: false, Confidence: model.ConfidenceHigh, Reasons: []string{"a", "b"}},
			model.FavoriteSolid,
		},
		{
			"single reason is noise",
			&model.VulnerableFavoriteResult{ProgramNumber: 1, IsVulnerable: true, Confidence: model.ConfidenceHigh, Reasons: []string{"thin margin"}},
			model.FavoriteSolid,
		},
		{
			"two reasons at low confidence",
			&model.VulnerableFavoriteResult{ProgramNumber: 1, IsVulnerable: true, Confidence: model.ConfidenceLow, Reasons: []string{"a", "b"}},
			model.FavoriteSolid,
		},
		{
			"two reasons at medium confidence",
			&model.VulnerableFavoriteResult{ProgramNumber: 1, IsVulnerable: true, Confidence: model.ConfidenceMedium, Reasons: []string{"a", "b"}},
			model.FavoriteVulnerable,
		},
		{
			"three reasons at high confidence",
			&model.VulnerableFavoriteResult{ProgramNumber: 1, IsVulnerable: true, Confidence: model.ConfidenceHigh, Reasons: []string{"a", "b", "c"}},
			model.FavoriteVulnerable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := testCard(6)
			call := ClassifyFavorite(card, &model.AnalyzerSet{VulnerableFavorite: tt.vf})
			if call.Status != tt.want {
				t.Errorf("status = %s, want %s", call.Status, tt.want)
			}
			if call.ProgramNumber != 1 {
				t.Errorf("favorite program = %d, want 1", call.ProgramNumber)
			}
			if tt.want == model.FavoriteVulnerable && len(call.Flags) != len(tt.vf.Reasons) {
				t.Errorf("flags = %v, want the analyzer's reasons carried through", call.Flags)
			}
		})
	}
}

func TestClassifyFavorite_AbsentProgramDiscarded(t *testing.T) {
	card := testCard(6)
	vf := &model.VulnerableFavoriteResult{
		ProgramNumber: 99,
		IsVulnerable:  true,
		Confidence:    model.ConfidenceHigh,
		Reasons:       []string{"thin margin", "class rise"},
	}
	call := ClassifyFavorite(card, &model.AnalyzerSet{VulnerableFavorite: vf})
	if call.Status != model.FavoriteSolid {
		t.Errorf("status = %s, want SOLID for a payload naming an absent program", call.Status)
	}
	if call.ProgramNumber != 1 {
		t.Errorf("favorite program = %d, want 1", call.ProgramNumber)
	}
	if len(call.Flags) != 0 {
		t.Errorf("flags = %v, want none carried from a discarded signal", call.Flags)
	}
}

func TestClassifyFavorite_ScratchedExFavoriteDiscarded(t *testing.T) {
	card := testCard(6)
	card.Entrants[0].Scratched = true
	vf := &model.VulnerableFavoriteResult{
		ProgramNumber: 1,
		IsVulnerable:  true,
		Confidence:    model.ConfidenceHigh,
		Reasons:       []string{"thin margin", "class rise"},
	}
	call := ClassifyFavorite(card, &model.AnalyzerSet{VulnerableFavorite: vf})
	if call.ProgramNumber != 2 {
		t.Fatalf("favorite program = %d, want 2 after the scratch", call.ProgramNumber)
	}
	if call.Status != model.FavoriteSolid {
		t.Errorf("status = %s, want SOLID when the payload names the scratched ex-favorite", call.Status)
	}
}

func TestClassifyFavorite_EmptyField(t *testing.T) {
	card := &model.RaceCard{RaceID: "E"}
	call := ClassifyFavorite(card, nil)
	if call.Status != model.FavoriteSolid {
		t.Errorf("empty field favorite status = %s, want SOLID", call.Status)
	}
}
