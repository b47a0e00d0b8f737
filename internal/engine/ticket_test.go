package engine

import (
	"reflect"
	"testing"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

func TestBuildPositions_CombinationCounts(t *testing.T) {
	tests := []struct {
		template     model.TicketTemplate
		wantExacta   int
		wantTrifecta int
	}{
		{model.TemplateA, 3, 6},
		{model.TemplateB, 9, 18},
		{model.TemplateC, 12, 60},
		{model.TemplatePass, 3, 12},
	}
	card := testCard(8)
	for _, tt := range tests {
		t.Run(string(tt.template), func(t *testing.T) {
			exacta, trifecta := BuildPositions(card, tt.template)
			if got := ExactaCombinations(exacta); got != tt.wantExacta {
				t.Errorf("exacta combinations = %d, want %d", got, tt.wantExacta)
			}
			if got := TrifectaCombinations(trifecta); got != tt.wantTrifecta {
				t.Errorf("trifecta combinations = %d, want %d", got, tt.wantTrifecta)
			}
		})
	}
}

func TestBuildPositions_BaselineOrderNeverPermuted(t *testing.T) {
	// Program numbers deliberately disagree with baseline ranks.
	card := &model.RaceCard{RaceID: "X", Entrants: []model.Entrant{
		{ProgramNumber: 7, Name: "A", BaselineRank: 1, BaselineScore: 95},
		{ProgramNumber: 2, Name: "B", BaselineRank: 2, BaselineScore: 88},
		{ProgramNumber: 9, Name: "C", BaselineRank: 3, BaselineScore: 80},
		{ProgramNumber: 1, Name: "D", BaselineRank: 4, BaselineScore: 72},
		{ProgramNumber: 5, Name: "E", BaselineRank: 5, BaselineScore: 65},
	}}
	exacta, _ := BuildPositions(card, model.TemplateA)
	if !reflect.DeepEqual(exacta.Win, []int{7}) {
		t.Errorf("win slot = %v, want the baseline rank-1 program [7]", exacta.Win)
	}
	if !reflect.DeepEqual(exacta.Place, []int{2, 9, 1}) {
		t.Errorf("place slots = %v, want baseline ranks 2-4 in order [2 9 1]", exacta.Place)
	}
}

func TestBuildPositions_TemplateBExcludesFavoriteFromWin(t *testing.T) {
	card := testCard(8)
	exacta, trifecta := BuildPositions(card, model.TemplateB)
	for _, w := range exacta.Win {
		if w == 1 {
			t.Error("favorite appeared in exacta win slot")
		}
	}
	for _, w := range trifecta.Win {
		if w == 1 {
			t.Error("favorite appeared in trifecta win slot")
		}
	}
	found := false
	for _, p := range exacta.Place {
		if p == 1 {
			found = true
		}
	}
	if !found {
		t.Error("favorite should still appear in the place slot")
	}
}

func TestBuildPositions_ScratchesSkipped(t *testing.T) {
	card := testCard(6)
	card.Entrants[1].Scratched = true // rank 2 out
	exacta, _ := BuildPositions(card, model.TemplateA)
	if !reflect.DeepEqual(exacta.Place, []int{3, 4, 5}) {
		t.Errorf("place slots = %v, want scratch skipped [3 4 5]", exacta.Place)
	}
}

func TestBuildPositions_ShortField(t *testing.T) {
	card := testCard(3)
	exacta, trifecta := BuildPositions(card, model.TemplateC)
	if got := ExactaCombinations(exacta); got != 6 {
		t.Errorf("3-horse template C exacta combinations = %d, want 6", got)
	}
	if got := TrifectaCombinations(trifecta); got != 6 {
		t.Errorf("3-horse template C trifecta combinations = %d, want 6", got)
	}
}

func TestPriceLine(t *testing.T) {
	pos := model.PositionSet{Win: []int{1}, Place: []int{2, 3, 4}}
	line := PriceLine(pos, 3, DefaultExactaUnit, 0.5)
	if line.UnitStake != 1.0 {
		t.Errorf("unit stake = %v, want 1.0", line.UnitStake)
	}
	if line.Cost != 3.0 {
		t.Errorf("cost = %v, want 3.0", line.Cost)
	}

	zero := PriceLine(pos, 3, DefaultExactaUnit, 0)
	if zero.Cost != 0 {
		t.Errorf("zero-multiplier cost = %v, want 0", zero.Cost)
	}
}
