package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"verdant/internal/light"
	"verdant/internal/types"
)

// RenderReport formats a full identification record as a care card.
func RenderReport(rec *types.Identification) string {
	var b strings.Builder

	header := TitleStyle.Render(rec.DisplayName())
	if rec.ScientificName != "" && rec.ScientificName != rec.DisplayName() {
		header += "  " + SubtitleStyle.Render(rec.ScientificName)
	}
	b.WriteString(header + "\n")
	if len(rec.CommonNames) > 1 {
		b.WriteString(MutedStyle.Render("Also known as: "+strings.Join(rec.CommonNames[1:], ", ")) + "\n")
	}
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		LabelStyle.Render("Health:"), ScoreStyle(rec.HealthScore).Render(fmt.Sprintf("%d/100", rec.HealthScore)),
		LabelStyle.Render("Confidence:"), fmt.Sprintf("%d%%", rec.Confidence),
		LabelStyle.Render("Personality:"), rec.Personality))

	if rec.Description != "" {
		b.WriteString("\n" + rec.Description + "\n")
	}

	b.WriteString("\n" + renderCare(rec.Care))
	b.WriteString("\n" + renderDiagnostics(rec))
	if rec.NeedsRescue() {
		b.WriteString("\n" + renderRescue(rec.RescuePlan))
	}
	if s := renderSafety(rec.Safety); s != "" {
		b.WriteString("\n" + s)
	}
	if len(rec.Updates) > 0 {
		b.WriteString("\n" + renderTimeline(rec.Updates))
	}

	return b.String()
}

func renderCare(c types.CarePlan) string {
	rows := []string{
		LabelStyle.Render("Care"),
		fmt.Sprintf("Water      %s, %s", c.WaterAmount, c.WaterFrequency),
		fmt.Sprintf("Light      %s", c.SunlightLux),
		fmt.Sprintf("Soil       %s", c.SoilMix),
	}
	if c.Temperature != "" {
		rows = append(rows, fmt.Sprintf("Temp       %s", c.Temperature))
	}
	if c.PotSizeAnalysis != "" {
		rows = append(rows, fmt.Sprintf("Pot        %s", c.PotSizeAnalysis))
	}
	if c.FertilizerSchedule != "" {
		rows = append(rows, fmt.Sprintf("Fertilize  %s", c.FertilizerSchedule))
	}
	if c.Pruning != "" {
		rows = append(rows, fmt.Sprintf("Prune      %s", c.Pruning))
	}
	return SectionStyle.Render(strings.Join(rows, "\n"))
}

func renderDiagnostics(rec *types.Identification) string {
	status := string(rec.Diagnostics.Status)
	styled := GoodStyle.Render(status)
	if rec.Diagnostics.Status != types.StatusHealthy {
		styled = DangerStyle.Render(status)
	}
	rows := []string{LabelStyle.Render("Diagnosis") + "  " + styled}
	if rec.Diagnostics.Details != "" {
		rows = append(rows, rec.Diagnostics.Details)
	}
	if rec.Diagnostics.Treatment != "" {
		rows = append(rows, "Treatment: "+rec.Diagnostics.Treatment)
	}
	if rec.Lifespan != "" {
		rows = append(rows, MutedStyle.Render("Outlook: "+rec.Lifespan))
	}
	return SectionStyle.Render(strings.Join(rows, "\n"))
}

func renderRescue(p *types.RescuePlan) string {
	rows := []string{
		DangerStyle.Render("3-Day Rescue Plan"),
		"Day 1  " + p.Step1,
		"Day 2  " + p.Step2,
		"Day 3  " + p.Step3,
	}
	return SectionStyle.BorderForeground(Blight).Render(strings.Join(rows, "\n"))
}

func renderSafety(s types.SafetyProfile) string {
	var rows []string
	if s.IsPoisonous {
		rows = append(rows, DangerStyle.Render("Poisonous")+"  "+s.PoisonDetails)
	}
	if s.IsInvasive {
		rows = append(rows, WarnStyle.Render("Invasive species"))
	}
	if s.IsEndangered {
		rows = append(rows, WarnStyle.Render("Endangered"))
	}
	if s.IsMedicinal && s.MedicinalUses != "" {
		rows = append(rows, "Medicinal: "+s.MedicinalUses)
	}
	if len(rows) == 0 {
		return ""
	}
	return SectionStyle.Render(strings.Join(append([]string{LabelStyle.Render("Safety")}, rows...), "\n"))
}

func renderTimeline(updates []types.TimelineUpdate) string {
	rows := []string{LabelStyle.Render("Growth Timeline")}
	for _, u := range updates {
		rows = append(rows, fmt.Sprintf("%s  [%s] %s",
			MutedStyle.Render(formatStamp(u.Timestamp)), u.HealthStatus, u.GrowthAnalysis))
	}
	return SectionStyle.Render(strings.Join(rows, "\n"))
}

// RenderToolResult formats one specialist-tool answer.
func RenderToolResult(r types.ToolResult) string {
	rows := []string{TitleStyle.Render(r.Title) + "  " + SubtitleStyle.Render(r.Status)}
	if r.Score != types.ScoreNotApplicable {
		rows = append(rows, LabelStyle.Render("Score: ")+ScoreStyle(r.Score).Render(fmt.Sprintf("%d/100", r.Score)))
	}
	rows = append(rows, "", r.Analysis)
	if len(r.ActionPlan) > 0 {
		rows = append(rows, "", LabelStyle.Render("Action Plan"))
		for i, step := range r.ActionPlan {
			rows = append(rows, fmt.Sprintf("%d. %s", i+1, step))
		}
	}
	if r.Prediction != "" {
		rows = append(rows, "", MutedStyle.Render("Prediction: "+r.Prediction))
	}
	return SectionStyle.Render(strings.Join(rows, "\n"))
}

// RenderHistory formats the stored records as a table, newest first.
func RenderHistory(records []types.Identification) string {
	if len(records) == 0 {
		return MutedStyle.Render("No plants identified yet. Run: verdant identify <photo>")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Plant History (%d)", len(records))) + "\n")
	for _, rec := range records {
		line := fmt.Sprintf("%s  %-28s %s  %s",
			MutedStyle.Render(shortID(rec.ID)),
			rec.DisplayName(),
			ScoreStyle(rec.HealthScore).Render(fmt.Sprintf("%3d", rec.HealthScore)),
			MutedStyle.Render(formatStamp(rec.CapturedAt)))
		if rec.NeedsRescue() {
			line += "  " + DangerStyle.Render("RESCUE")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// RenderReading formats a light-meter reading on one line.
func RenderReading(r light.Reading) string {
	style := MutedStyle
	switch r.Band {
	case light.BandBright:
		style = lipgloss.NewStyle().Foreground(Sun).Bold(true)
	case light.BandMedium:
		style = GoodStyle
	}
	return fmt.Sprintf("%s  %s  %s",
		TitleStyle.Render(fmt.Sprintf("%4d lux", r.Lux)),
		style.Render(string(r.Band)),
		MutedStyle.Render(r.Recommendation))
}

// RenderToolCatalog lists the available tools grouped by category.
func RenderToolCatalog(catalog []types.ToolDefinition) string {
	var b strings.Builder
	var current types.ToolCategory
	for _, tool := range catalog {
		if tool.Category != current {
			current = tool.Category
			b.WriteString("\n" + LabelStyle.Render(strings.ToUpper(string(current))) + "\n")
		}
		b.WriteString(fmt.Sprintf("  %-24s %s\n", tool.ID, MutedStyle.Render(tool.Description)))
	}
	return strings.TrimPrefix(b.String(), "\n")
}

func formatStamp(ms int64) string {
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
