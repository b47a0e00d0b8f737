package notifier

import (
	"fmt"
	"strings"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// FormatTicketReport formats one engine decision into a Telegram message.
func FormatTicketReport(card *model.RaceCard, tc *model.TicketConstruction) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🏇 <b>%s R%d</b> | %s\n\n", card.Track, card.RaceNumber, card.Date))

	if tc.NoAnalysis {
		b.WriteString("⚠️ No runnable entrants, race passed.\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Race shape: %s | Field of %d\n", tc.RaceType, card.FieldSize()))
	b.WriteString(fmt.Sprintf("Favorite: #%d %s\n", tc.Favorite.ProgramNumber, tc.Favorite.Status))
	for _, f := range tc.Favorite.Flags {
		b.WriteString(fmt.Sprintf("  • %s\n", f))
	}
	if tc.Value.Identified {
		b.WriteString(fmt.Sprintf("Value: #%d %s (%s, %d analyzers)\n",
			tc.Value.ProgramNumber, tc.Value.Name, tc.Value.Tier, tc.Value.BotCount))
	} else {
		b.WriteString("Value: none identified\n")
	}

	b.WriteString(fmt.Sprintf("\n🎫 <b>Template %s</b> (%s)\n", tc.Template, tc.Template.Label()))
	b.WriteString(fmt.Sprintf("  %s\n", tc.TemplateRationale))
	b.WriteString(formatWagerLine("Exacta", tc.Exacta))
	b.WriteString(formatWagerLine("Trifecta", tc.Trifecta))
	b.WriteString(fmt.Sprintf("  Total cost: $%.2f\n", tc.TotalCost))

	b.WriteString(fmt.Sprintf("\n💡 Confidence: %d/100 (%s)\n", tc.ConfidenceScore, tc.ConfidenceTier))
	b.WriteString(fmt.Sprintf("Sizing: %.1fx (%s)\n", tc.Sizing.Multiplier, tc.Sizing.Recommendation))

	icon := "✅"
	if tc.Verdict.Action == model.ActionPass {
		icon = "🚫"
	}
	b.WriteString(fmt.Sprintf("\n%s <b>%s</b>: %s\n", icon, tc.Verdict.Action, tc.Verdict.Summary))

	if notable := notableInsights(tc.Insights); len(notable) > 0 {
		b.WriteString("\n📋 <b>Notes:</b>\n")
		for _, in := range notable {
			b.WriteString(fmt.Sprintf("  #%d %s [%s] %s\n",
				in.ProgramNumber, in.Name, strings.Join(in.Labels, ", "), in.Comment))
		}
	}

	return b.String()
}

func formatWagerLine(label string, w model.WagerLine) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s: %d combos @ $%.2f = $%.2f\n", label, w.Combinations, w.UnitStake, w.Cost))
	b.WriteString(fmt.Sprintf("    win %s / place %s", programList(w.Positions.Win), programList(w.Positions.Place)))
	if len(w.Positions.Show) > 0 {
		b.WriteString(fmt.Sprintf(" / show %s", programList(w.Positions.Show)))
	}
	b.WriteString("\n")
	return b.String()
}

func programList(programs []int) string {
	parts := make([]string, len(programs))
	for i, p := range programs {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func notableInsights(insights []model.EntrantInsight) []model.EntrantInsight {
	out := make([]model.EntrantInsight, 0, len(insights))
	for _, in := range insights {
		if len(in.Labels) > 0 {
			out = append(out, in)
		}
	}
	return out
}

// FormatStatus formats the scheduler status for the /status command.
func FormatStatus(watchDir string, seen int, lastRace string, conservative bool) string {
	var b strings.Builder
	b.WriteString("📦 <b>Engine Status</b>\n\n")
	b.WriteString(fmt.Sprintf("Watch dir: %s\n", watchDir))
	b.WriteString(fmt.Sprintf("Cards analyzed: %d\n", seen))
	if lastRace != "" {
		b.WriteString(fmt.Sprintf("Last race: %s\n", lastRace))
	}
	mode := "standard"
	if conservative {
		mode = "conservative"
	}
	b.WriteString(fmt.Sprintf("Mode: %s\n", mode))
	return b.String()
}
