package cli

import (
	"fmt"
	"io"
	"strings"

	"planet-builder/internal/habitability"
	"planet-builder/internal/planet"

	"github.com/charmbracelet/lipgloss"
)

func renderAssessment(w io.Writer, t Theme, a *planet.Assessment) {
	c := a.Classification
	e := a.Explanation
	h := a.Habitability

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", t.Title.Render(strings.ToUpper(string(c.Type))))
	fmt.Fprintf(&b, "%s\n\n", t.Hint.Render(e.Summary))

	field := "none"
	if c.HasMagneticField {
		field = fmt.Sprintf("%d%%", c.MagneticFieldStrength)
	}
	rows := [][2]string{
		{"Temperature", fmt.Sprintf("%.0f K", c.TemperatureK)},
		{"Atmosphere", c.Atmosphere.Description},
		{"Surface", c.SurfaceDescription},
		{"Magnetic field", field},
		{"Geology", string(c.GeologicalActivity)},
		{"Life", yesNo(c.HasLife)},
		{"Color", t.swatch(c.DisplayColor)},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%-16s %s\n", t.Label.Render(row[0]), row[1])
	}

	fmt.Fprintf(&b, "\n%s\n", t.Title.Render("Why "+string(e.Type)))
	for _, cr := range e.Criteria {
		fmt.Fprintf(&b, "  %s %s\n", t.check(cr.Met), cr.Description)
	}
	if len(e.Rejected) > 0 {
		fmt.Fprintf(&b, "  %s\n", t.Hint.Render("ruled out first: "+strings.Join(e.Rejected, ", ")))
	}

	fmt.Fprintf(&b, "\n%s %s\n",
		t.Title.Render(fmt.Sprintf("Habitability %d/100", h.TotalScore)),
		ratingStyle(t, h.Rating).Render(string(h.Rating)))
	for _, f := range factorRows(h.Factors) {
		fmt.Fprintf(&b, "  %-16s %3d  %s\n", f.name, f.factor.Score, t.Hint.Render(f.factor.Reason))
	}

	fmt.Fprintln(w, t.Border.Render(strings.TrimRight(b.String(), "\n")))
}

type factorRow struct {
	name   string
	factor habitability.Factor
}

func factorRows(f habitability.Factors) []factorRow {
	return []factorRow{
		{"Temperature", f.Temperature},
		{"Atmosphere", f.Atmosphere},
		{"Water", f.Water},
		{"Magnetic field", f.MagneticField},
		{"Geology", f.Geology},
		{"Chemistry", f.Chemistry},
		{"Rotation", f.Rotation},
	}
}

func ratingStyle(t Theme, r habitability.Rating) lipgloss.Style {
	switch r {
	case habitability.RatingHighlyHabitable, habitability.RatingHabitable:
		return t.Good
	case habitability.RatingUninhabitable, habitability.RatingExtremelyHarsh:
		return t.Bad
	default:
		return t.Label
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
