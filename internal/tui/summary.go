package tui

import (
	"github.com/efocats/efowizard/internal/tui/components"
	"github.com/efocats/efowizard/internal/wizard"
)

// RenderSummary draws the collected record in a bordered box.
func RenderSummary(styles *StyleSet, d wizard.FormData, width int) string {
	rows := []components.SummaryRow{
		{Key: "氏名", Value: d.Name},
		{Key: "メールアドレス", Value: d.Email},
		{Key: "エリア", Value: d.Area},
		{Key: "プラン", Value: d.Plan},
	}
	box := components.NewSummaryBox(rows, styles.SummaryKey, styles.SummaryValue, styles.BorderedBox)
	return "\n  " + styles.Title.Render("入力内容") + "\n" + box.View(width) + "\n"
}
