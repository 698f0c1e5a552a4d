// Package content holds the hardcoded copy shown on the portfolio page.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Project is one card in the projects grid.
type Project struct {
	Title       string
	Description string
	Accent      string
	Links       []StoreLink
}

// Link is a plain outbound link.
type Link struct {
	Label string
	URL   string
}

// Content is everything the page renders besides visibility state.
type Content struct {
	Name         string
	Role         string
	About        template.HTML
	Projects     []Project
	BlogHeadline string
	BlogBody     string
	FooterLinks  []Link
	Year         int
}

// Load renders the markdown copy and assembles the page content. now supplies
// the copyright year.
func Load(now time.Time) (*Content, error) {
	about, err := renderMarkdown(aboutMarkdown)
	if err != nil {
		return nil, fmt.Errorf("render about: %w", err)
	}
	return &Content{
		Name:         OwnerName,
		Role:         OwnerRole,
		About:        about,
		Projects:     Projects(),
		BlogHeadline: blogHeadline,
		BlogBody:     blogBody,
		FooterLinks:  append([]Link(nil), footerLinks...),
		Year:         now.Year(),
	}, nil
}

// Projects returns a copy of the project cards.
func Projects() []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		p.Links = append([]StoreLink(nil), p.Links...)
		out[i] = p
	}
	return out
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
