package main

import "time"

// Tone is the semantic styling key shared by the HTML and terminal surfaces.
type Tone string

const (
	ToneOK    Tone = "ok"    // Affirmative (green)
	ToneAlert Tone = "alert" // Alert (red)
	ToneWeb   Tone = "web"
	ToneWAS   Tone = "was"
	ToneDB    Tone = "db"
)

// timestampLayout renders times as YYYY-MM-DD HH:MM:SS.
const timestampLayout = "2006-01-02 15:04:05"

// Badge is a short status pill.
type Badge struct {
	Text string
	Tone Tone
}

// Node is one tier in the architecture diagram.
type Node struct {
	Label string
	Tone  Tone
}

// Row is a label/value line inside a card. An empty Tone means default styling.
type Row struct {
	Label string
	Value string
	Tone  Tone
}

// Card is the detail panel for one tier.
type Card struct {
	Title    string
	Subtitle string
	Tone     Tone
	Rows     []Row
	Badge    *Badge
}

// View is everything a surface needs to draw the dashboard.
type View struct {
	Banner    Badge
	Title     string
	Subtitle  string
	Nodes     []Node
	Cards     []Card
	Note      string
	Timestamp string
}

// Arrows reports how many connectors join the diagram nodes.
func (v View) Arrows() int {
	if len(v.Nodes) < 2 {
		return 0
	}
	return len(v.Nodes) - 1
}

// connectionBadge derives the database badge from the connectivity flag.
func connectionBadge(connected bool) Badge {
	if connected {
		return Badge{Text: "Connected", Tone: ToneOK}
	}
	return Badge{Text: "Disconnected", Tone: ToneAlert}
}

// formatTimestamp truncates t to the second and formats it in UTC.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// buildView shapes a snapshot into the dashboard layout. It has no side
// effects: the caller reads the clock and passes it in as at.
func buildView(s Snapshot, at time.Time) View {
	badge := connectionBadge(s.Database.Connected)

	return View{
		Banner:   Badge{Text: "System Operational", Tone: ToneOK},
		Title:    "3-Tier Application Dashboard",
		Subtitle: "Real-time infrastructure status overview",
		Nodes: []Node{
			{Label: "Web", Tone: ToneWeb},
			{Label: "WAS", Tone: ToneWAS},
			{Label: "DB", Tone: ToneDB},
		},
		Cards: []Card{
			{
				Title:    "Web Tier",
				Subtitle: "Nginx Frontend Server",
				Tone:     ToneWeb,
				Rows: []Row{
					{Label: "Pod Name", Value: s.Web.PodName},
					{Label: "Pod IP", Value: s.Web.PodIP},
				},
			},
			{
				Title:    "WAS Tier",
				Subtitle: "Tomcat Middleware Server",
				Tone:     ToneWAS,
				Rows: []Row{
					{Label: "Pod Name", Value: s.Application.PodName},
					{Label: "Pod IP", Value: s.Application.PodIP},
				},
			},
			{
				Title:    "DB Tier",
				Subtitle: "MySQL Backend Database",
				Tone:     ToneDB,
				Rows: []Row{
					{Label: "Host / Service", Value: s.Database.Host},
					{Label: "Host IP", Value: s.Database.HostIP},
					{Label: "Status", Value: s.Database.Status, Tone: badge.Tone},
				},
				Badge: &badge,
			},
		},
		Note:      "Each refresh may show a different pod as the load balancer routes your traffic.",
		Timestamp: formatTimestamp(at),
	}
}
