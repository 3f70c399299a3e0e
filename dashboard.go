// Package main contains the web interface components for the tier status dashboard.
// It serves the HTML and CSS for the page from an embedded template.
package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
)

// dashboardHTML contains the embedded HTML template and CSS for the dashboard.
//
// Tones map to CSS classes:
// - tone-ok: affirmative styling (green)
// - tone-alert: alert styling (red)
// - node-web, node-was, node-db: per-tier accent colors
//
//go:embed dashboard.html
var dashboardHTML string

// tierIcons holds the inline SVG drawn for each tier tone.
var tierIcons = map[Tone]template.HTML{
	ToneWeb: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><circle cx="12" cy="12" r="10"/><path d="M2 12h20"/><path d="M12 2a15.3 15.3 0 0 1 4 10 15.3 15.3 0 0 1-4 10 15.3 15.3 0 0 1-4-10 15.3 15.3 0 0 1 4-10z"/></svg>`,
	ToneWAS: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><rect x="2" y="2" width="20" height="8" rx="2"/><rect x="2" y="14" width="20" height="8" rx="2"/><path d="M6 6h.01"/><path d="M6 18h.01"/></svg>`,
	ToneDB:  `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><ellipse cx="12" cy="5" rx="9" ry="3"/><path d="M3 5v14a9 3 0 0 0 18 0V5"/><path d="M3 12a9 3 0 0 0 18 0"/></svg>`,
}

func tierIcon(t Tone) template.HTML {
	return tierIcons[t]
}

var dashboardTemplate = template.Must(template.New("dashboard").
	Funcs(template.FuncMap{"icon": tierIcon}).
	Parse(dashboardHTML))

// renderDashboard writes the HTML page for v to w.
// Output is buffered so a failed render never leaves a partial page on w.
func renderDashboard(w io.Writer, v View) error {
	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, v); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
