package engine

import (
	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// ClassifyFavorite decides whether the baseline rank-1 entrant is SOLID or
// VULNERABLE. A single reason is deliberately insufficient: one flag is noise,
// two or more with at least MEDIUM confidence is a call.
func ClassifyFavorite(card *model.RaceCard, set *model.AnalyzerSet) model.FavoriteCall {
	call := model.FavoriteCall{Status: model.FavoriteSolid}
	fav := card.Favorite()
	if fav == nil {
		return call
	}
	call.ProgramNumber = fav.ProgramNumber
	if set == nil || set.VulnerableFavorite == nil {
		return call
	}
	vf := set.VulnerableFavorite
	// A payload naming a different program (absent, or a scratched ex-favorite)
	// is discarded, same as the per-entrant aggregation.
	if vf.ProgramNumber != 0 && vf.ProgramNumber != fav.ProgramNumber {
		return call
	}
	if !vf.IsVulnerable || len(vf.Reasons) <= 1 {
		return call
	}
	if vf.Confidence == model.ConfidenceLow {
		return call
	}
	call.Status = model.FavoriteVulnerable
	call.Flags = append([]string(nil), vf.Reasons...)
	return call
}
