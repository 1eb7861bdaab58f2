package importer

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"tourney-graphics/internal/constants"
	"tourney-graphics/internal/domain"
)

// TeamMember is one species block scraped from a team-list page.
type TeamMember struct {
	Name     string `json:"name"`
	IsShadow bool   `json:"isShadow"`
}

// TeamListResult is the extraction of a single player's team-list page.
type TeamListResult struct {
	PlayerName string       `json:"playerName"`
	EventName  string       `json:"eventName"`
	Pokemon    []TeamMember `json:"pokemon"`
}

// RosterRow is one player row scraped from a roster page.
type RosterRow struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	ScreenName string `json:"screenName"`
	Country    string `json:"country"`
}

// ParseTeamListPage extracts a player name, event name and up to six
// species blocks from a team-list page. Extraction is best-effort over
// third-party markup: when the page repeats the team once per locale,
// only the English section (or failing that, the first) is read, so
// translated copies do not double-count. A page yielding neither a
// player name nor any species is rejected.
func ParseTeamListPage(body []byte) (*TeamListResult, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewFault(domain.ErrMalformedInput, "unparseable page: %v", err)
	}

	res := &TeamListResult{
		PlayerName: firstText(doc, "h3"),
		EventName:  firstText(doc, "h2"),
	}

	section := localeSection(doc)
	walk(section, func(n *html.Node) bool {
		if len(res.Pokemon) >= constants.TeamSize {
			return false
		}
		if n.Type != html.ElementNode || !hasClass(n, "pokemon") {
			return true
		}
		member := TeamMember{Name: childTextByClass(n, "name")}
		if member.Name == "" {
			member.Name = firstLine(nodeText(n))
		}
		walk(n, func(c *html.Node) bool {
			if c.Type == html.ElementNode && hasClass(c, "shadow") {
				member.IsShadow = true
				return false
			}
			return true
		})
		if member.Name != "" {
			res.Pokemon = append(res.Pokemon, member)
		}
		return false // never descend into a block's own markup
	})

	if res.PlayerName == "" && len(res.Pokemon) == 0 {
		return nil, domain.NewFault(domain.ErrMalformedInput, "no player data found on page")
	}
	return res, nil
}

// ParseRosterPage extracts one row per player from a roster table:
// first name, last name, screen name, country. An empty extraction is a
// failure, not an empty success.
func ParseRosterPage(body []byte) ([]RosterRow, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewFault(domain.ErrMalformedInput, "unparseable page: %v", err)
	}

	var rows []RosterRow
	walk(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != "tr" {
			return true
		}
		cells := childCells(n)
		if len(cells) < 4 {
			return false
		}
		rows = append(rows, RosterRow{
			FirstName:  cells[0],
			LastName:   cells[1],
			ScreenName: cells[2],
			Country:    cells[3],
		})
		return false
	})

	if len(rows) == 0 {
		return nil, domain.NewFault(domain.ErrMalformedInput, "no players found on page")
	}
	return rows, nil
}

// localeSection picks the single locale pane to parse when the page
// carries per-language copies of the team. Preference: a tab-pane whose
// id mentions "en", then the first tab-pane, then the whole document.
func localeSection(doc *html.Node) *html.Node {
	var first, english *html.Node
	walk(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode || !hasClass(n, "tab-pane") {
			return true
		}
		if first == nil {
			first = n
		}
		if english == nil && strings.Contains(strings.ToLower(attr(n, "id")), "en") {
			english = n
		}
		return false
	})
	if english != nil {
		return english
	}
	if first != nil {
		return first
	}
	return doc
}

// walk visits n and its descendants depth-first. The callback returns
// false to prune a subtree.
func walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if strings.EqualFold(c, class) {
			return true
		}
	}
	return false
}

// nodeText concatenates the text content below n, whitespace-collapsed.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			sb.WriteString(" ")
		}
		return true
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}

// firstText returns the text of the first element with the given tag.
func firstText(doc *html.Node, tag string) string {
	var out string
	walk(doc, func(n *html.Node) bool {
		if out != "" {
			return false
		}
		if n.Type == html.ElementNode && n.Data == tag {
			out = nodeText(n)
			return false
		}
		return true
	})
	return out
}

// childTextByClass returns the text of the first descendant of n with
// the given class.
func childTextByClass(n *html.Node, class string) string {
	var out string
	walk(n, func(c *html.Node) bool {
		if out != "" {
			return false
		}
		if c != n && c.Type == html.ElementNode && hasClass(c, class) {
			out = nodeText(c)
			return false
		}
		return true
	})
	return out
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// childCells collects the trimmed text of n's direct td children. A row
// whose cells are th elements is a header and yields nothing.
func childCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.Data == "th" {
			return nil
		}
		if c.Data == "td" {
			cells = append(cells, nodeText(c))
		}
	}
	return cells
}
