package simulation

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang = language.English

// String отчёт в виде двух таблиц: сводка и выигрыши по символам
func (r *Report) String() string {
	p := message.NewPrinter(lang)
	pct := int(r.Confidence*100 + 0.5)

	summary := map[string]string{
		"Seed":         fmt.Sprintf("%d", r.Seed),
		"Paid Spins":   p.Sprintf("%d", r.PaidSpins),
		"Free Spins":   p.Sprintf("%d", r.FreeSpins),
		"Total Bet":    p.Sprintf("%d", r.TotalBet),
		"Total Win":    p.Sprintf("%d", r.TotalWin),
		"Base Win":     p.Sprintf("%d", r.BaseWin),
		"Free Win":     p.Sprintf("%d", r.FreeWin),
		"RTP":          p.Sprintf("%.2f %%", 100*r.RTP),
		"RTP CI":       p.Sprintf("[%.2f%%, %.2f%%]", 100*r.RtpCI.Lo, 100*r.RtpCI.Hi),
		"Hit Rate":     p.Sprintf("%.2f %%", 100*r.HitRate),
		"Hit CI":       p.Sprintf("[%.2f%%, %.2f%%]", 100*r.HitCI.Lo, 100*r.HitCI.Hi),
		"Trigger Rate": p.Sprintf("%.3f %%", 100*r.TriggerRate),
		"Trigger CI":   p.Sprintf("[%.3f%%, %.3f%%]", 100*r.TriggerCI.Lo, 100*r.TriggerCI.Hi),
		"STD":          p.Sprintf("%.3f", r.Std),
		"Elapsed":      r.Elapsed.Round(time.Millisecond).String(),
	}
	keys := []string{
		"Seed", "Paid Spins", "Free Spins", "Total Bet", "Total Win", "Base Win", "Free Win",
		"RTP", "RTP CI", "Hit Rate", "Hit CI", "Trigger Rate", "Trigger CI", "STD", "Elapsed",
	}

	symbols := make(map[string]string, len(r.Alphabet))
	symKeys := make([]string, 0, len(r.Alphabet))
	for _, s := range r.Alphabet {
		st := r.Symbols[s]
		k := string(s)
		symKeys = append(symKeys, k)
		share := 0.0
		if r.TotalWin > 0 {
			share = 100 * float64(st.Win) / float64(r.TotalWin)
		}
		symbols[k] = p.Sprintf("%d lines, %d win, %.1f%%", st.Lines, st.Win, share)
	}

	title := fmt.Sprintf("Dog House Megaways (%d%% CI)", pct)
	return fmtTable(title, keys, summary) + fmtTable("Wins by symbol", symKeys, symbols)
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	maxKey, maxVal := 0, 0
	for _, k := range keys {
		if w := runewidth.StringWidth(k); w > maxKey {
			maxKey = w
		}
		if w := runewidth.StringWidth(msg[k]); w > maxVal {
			maxVal = w
		}
	}
	maxKey += 2
	maxVal += 2

	inner := maxKey + maxVal + 1
	if w := runewidth.StringWidth(title) + 2; w > inner {
		maxVal += w - inner
		inner = w
	}

	var b strings.Builder
	top := "+" + strings.Repeat("-", inner) + "+\n"
	divider := "+" + strings.Repeat("-", maxKey) + "+" + strings.Repeat("-", maxVal) + "+\n"

	titleW := runewidth.StringWidth(title)
	left := (inner - titleW) / 2
	b.WriteString(top)
	b.WriteString("|" + blank(left) + title + blank(inner-titleW-left) + "|\n")
	b.WriteString(divider)
	for _, k := range keys {
		v := msg[k]
		b.WriteString("| " + k + blank(maxKey-2-runewidth.StringWidth(k)))
		b.WriteString(" | " + v + blank(maxVal-2-runewidth.StringWidth(v)) + " |\n")
	}
	b.WriteString(divider)
	return b.String()
}

func blank(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
