package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/froest/routegpx"
	"golang.org/x/net/html"
)

// extractFallback scans the whole document for anything shaped like a
// location reference: plus codes in text, and maps links carrying a plus
// code or a literal lat,lng. Candidates are collected in document order and
// synthesized into label-less stop records. prior carries warnings from the
// abandoned primary strategy.
func extractFallback(doc *goquery.Document, prior []string) *routegpx.ExtractResult {
	var stops []routegpx.StopRecord

	for _, root := range doc.Selection.Nodes {
		walk(root, func(n *html.Node) bool {
			if n.Type == html.ElementNode && n.Data == "a" {
				if stop := stopFromAnchor(n, len(stops)+1); stop != nil {
					stops = append(stops, *stop)
					// The link's own text adds nothing new.
					return false
				}
				return true
			}
			if n.Type == html.TextNode {
				for _, token := range strings.Fields(n.Data) {
					if code, status := routegpx.ParseCode(token); status == routegpx.FieldValid {
						stops = append(stops, routegpx.StopRecord{Seq: len(stops) + 1, Code: code})
					}
				}
			}
			return true
		})
	}

	if len(stops) == 0 {
		return &routegpx.ExtractResult{
			Warnings:   append(prior, saveHint),
			Confidence: routegpx.ConfidenceFailed,
		}
	}
	return &routegpx.ExtractResult{
		Stops: stops,
		Warnings: append(prior, fmt.Sprintf(
			"expected route list not found; collected %d location reference(s) from a whole-document scan, results may be incomplete or mis-ordered",
			len(stops))),
		Confidence: routegpx.ConfidenceDegraded,
	}
}

// walk visits nodes depth-first in document order. visit returning false
// prunes that node's subtree.
func walk(n *html.Node, visit func(*html.Node) bool) {
	if !visit(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func stopFromAnchor(n *html.Node, seq int) *routegpx.StopRecord {
	var href string
	for _, attr := range n.Attr {
		if attr.Key == "href" {
			href = attr.Val
			break
		}
	}
	if !strings.Contains(href, "google.com/maps") {
		return nil
	}

	stop := &routegpx.StopRecord{Seq: seq}
	if qLat, qLng, ok := coordsFromMapsURL(href); ok {
		if c, status := routegpx.ParseCoordinates(qLat, qLng); status == routegpx.FieldValid {
			stop.Coords = &c
		}
	}
	if code, status := routegpx.ParseCode(placeIDFromMapsURL(href)); status == routegpx.FieldValid {
		stop.Code = code
	}
	if !stop.Usable() {
		return nil
	}
	return stop
}
