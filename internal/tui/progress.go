package tui

import (
	"fmt"
	"strings"

	"github.com/efocats/efowizard/internal/wizard"
)

// RenderProgress draws the step indicator: a numbered badge and label per
// step, joined by connectors that fill in once a step is passed.
func RenderProgress(p wizard.Progress, styles *StyleSet) string {
	var b strings.Builder
	b.WriteString("  ")
	for i, s := range p.Steps {
		badge := styles.StepBadgePending
		if s.Reached {
			badge = styles.StepBadgeReached
		}
		b.WriteString(badge.Render(fmt.Sprintf("%d", s.ID)))
		b.WriteString(" ")
		b.WriteString(styles.SecondaryTxt.Render(s.Label))

		if i < len(p.Steps)-1 {
			conn := styles.ConnectorPending
			if s.Passed {
				conn = styles.ConnectorDone
			}
			b.WriteString(conn.Render(" ──── "))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// RenderNav draws the back button, the "n / total" counter and the
// forward button. Disabled buttons are drawn dimmed.
//
// On the last step the forward button reads 完了 and is enabled as soon
// as the step is valid; pressing it finishes the wizard rather than
// advancing. It is never a permanently disabled placeholder.
func RenderNav(p wizard.Progress, valid bool, styles *StyleSet) string {
	back := styles.ButtonDisabled
	if p.Current > wizard.FirstStep {
		back = styles.ButtonSecondary
	}

	label := "次へ"
	forwardEnabled := valid && p.Current < wizard.LastStep
	if p.Current == wizard.LastStep {
		label = "完了"
		forwardEnabled = valid
	}
	forward := styles.ButtonDisabled
	if forwardEnabled {
		forward = styles.ButtonPrimary
	}

	counter := styles.DimTxt.Render(fmt.Sprintf("%d / %d", p.Current, p.Total))
	return fmt.Sprintf("  %s    %s    %s\n", back.Render("戻る"), counter, forward.Render(label))
}
