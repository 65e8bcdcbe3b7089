package goquery

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/froest/routegpx"
	"golang.org/x/net/html"
)

var _ routegpx.Extractor = (*Extractor)(nil)

// Extractor locates delivery stops with tiered strategies: first the route
// list signature the web app is known to render, then a whole-document scan
// for anything shaped like a location reference. It never fails outright;
// every structural anomaly becomes a warning and a lower tier takes over.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// saveHint is emitted when nothing could be extracted at all. The raw
// server HTML lacks the route list until client-side Javascript has run, so
// the most likely cause is saving the wrong thing.
const saveHint = "no route data found: check that you saved the complete rendered page from a browser " +
	`("Save Page As..." then "Web Page, complete"), not the raw server response`

// Extract produces stop records from a saved route page.
func (e *Extractor) Extract(rawHTML string) *routegpx.ExtractResult {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return &routegpx.ExtractResult{
			Warnings:   []string{fmt.Sprintf("could not parse document: %v", err), saveHint},
			Confidence: routegpx.ConfidenceFailed,
		}
	}
	res, warnings := extractPrimary(doc)
	if res != nil {
		return res
	}
	return extractFallback(doc, warnings)
}

// extractPrimary parses the known route-list structure: a single <ul>
// inside <main>, one stop per <li>. A nil result means the structure was
// absent or yielded nothing and the caller should fall back; the returned
// warnings describe what was attempted.
func extractPrimary(doc *goquery.Document) (*routegpx.ExtractResult, []string) {
	var warnings []string

	lists := doc.Find("main ul")
	if n := lists.Length(); n != 1 {
		if n > 1 {
			warnings = append(warnings, fmt.Sprintf("found %d route lists where 1 was expected, ignoring all of them", n))
		}
		return nil, warnings
	}
	list := lists.First()

	items := list.ChildrenFiltered("li")
	total := items.Length()
	if total == 0 {
		warnings = append(warnings, "found the route list but no stops in it")
		return nil, warnings
	}

	var stops []routegpx.StopRecord
	clean := true
	items.Each(func(i int, item *goquery.Selection) {
		stop, warns := parseItem(item, i+1, total)
		warnings = append(warnings, warns...)
		if len(warns) > 0 {
			clean = false
		}
		if stop == nil {
			return
		}
		if !stop.Usable() {
			warnings = append(warnings, fmt.Sprintf("stop %d has no address, location code or coordinates, dropping it", i+1))
			clean = false
			return
		}
		stops = append(stops, *stop)
	})
	if len(stops) == 0 {
		return nil, warnings
	}

	confidence := routegpx.ConfidenceHigh
	if !clean {
		confidence = routegpx.ConfidenceDegraded
	}
	return &routegpx.ExtractResult{
		Stops:      stops,
		Title:      routeTitle(list),
		Warnings:   warnings,
		Confidence: confidence,
	}, nil
}

// parseItem understands one <li>. If the full field signature doesn't
// match, it retries with just the stop's map link before giving up.
func parseItem(item *goquery.Selection, seq, total int) (*routegpx.StopRecord, []string) {
	stop, warns, err := parseItemStrict(item, seq)
	if err == nil {
		return stop, warns
	}
	warns = append(warns, fmt.Sprintf("could not fully understand stop %d (of %d): %s; falling back to its map link only",
		seq, total, routegpx.ErrorMessage(err)))
	stop, err = parseItemMapLink(item, seq)
	if err != nil {
		warns = append(warns, fmt.Sprintf("stop %d: %s; dropping it", seq, routegpx.ErrorMessage(err)))
		return nil, warns
	}
	return stop, warns
}

// notHomeBoilerplate prefixes the optional not-home note in the app's
// markup; only the part after it carries information.
const notHomeBoilerplate = "If no-one's home and you can't make contact: "

func parseItemStrict(item *goquery.Selection, seq int) (*routegpx.StopRecord, []string, error) {
	wrappers := item.ChildrenFiltered("div")
	if wrappers.Length() != 1 || hasStrayText(item) {
		return nil, nil, routegpx.Errorf(routegpx.EINVALID, "stop does not contain a single wrapper element")
	}

	layout, err := matchLayout(wrappers.First())
	if err != nil {
		return nil, nil, err
	}

	nameCode := layout.nameCode.Children()
	if nameCode.Length() != 2 || layout.nameCode.ChildrenFiltered("p").Length() != 2 {
		return nil, nil, routegpx.Errorf(routegpx.EINVALID, "expected recipient name and location code together")
	}
	fullName := textOf(nameCode.Eq(0))
	rawCode := textOf(nameCode.Eq(1))

	// Sanity marker: if the portion count isn't where we expect it, our
	// guess about the layout is wrong.
	if !strings.Contains(layout.portions.Text(), "portion") {
		return nil, nil, routegpx.Errorf(routegpx.EINVALID, "portion count marker missing, assuming lost")
	}

	mapURL, phone, err := parseLinks(layout.links)
	if err != nil {
		return nil, nil, err
	}

	// The visible code text and the map link must agree, otherwise we are
	// reading the wrong element as the code.
	if placeID := placeIDFromMapsURL(mapURL); placeID != rawCode {
		return nil, nil, routegpx.Errorf(routegpx.EINVALID,
			"location code %q does not match the map link (%q), assuming lost", rawCode, placeID)
	}

	var warns []string
	stop := &routegpx.StopRecord{
		Seq:     seq,
		Label:   shortenName(fullName),
		Address: textOf(layout.address),
	}

	code, status := routegpx.ParseCode(rawCode)
	switch status {
	case routegpx.FieldValid:
		stop.Code = code
	case routegpx.FieldDowngraded:
		warns = append(warns, fmt.Sprintf("stop %d: %q is not a plus code, keeping it as address text", seq, rawCode))
		stop.Address = joinNonEmpty(" / ", stop.Address, rawCode)
	}

	coords, coordWarns := itemCoordinates(item, mapURL, seq)
	stop.Coords = coords
	warns = append(warns, coordWarns...)

	notes := []string{textOf(layout.insns), textOf(layout.allergies)}
	if layout.notHome != nil {
		notes = append(notes, strings.TrimPrefix(textOf(layout.notHome), notHomeBoilerplate))
	}
	if phone != "" {
		notes = append(notes, "tel "+phone)
	}
	stop.Notes = joinNonEmpty("; ", notes...)

	return stop, warns, nil
}

// itemLayout holds the stop's sub-elements once the field order has been
// confirmed. notHome is nil when the optional element is absent.
type itemLayout struct {
	nameCode  *goquery.Selection
	address   *goquery.Selection
	portions  *goquery.Selection
	insns     *goquery.Selection
	allergies *goquery.Selection
	notHome   *goquery.Selection
	links     *goquery.Selection
}

func matchLayout(wrapper *goquery.Selection) (*itemLayout, error) {
	if hasStrayText(wrapper) {
		return nil, routegpx.Errorf(routegpx.EINVALID, "unexpected loose text between stop fields")
	}
	children := wrapper.Children()
	tags := childTags(children)

	l := &itemLayout{
		nameCode:  children.Eq(0),
		address:   children.Eq(1),
		portions:  children.Eq(2),
		insns:     children.Eq(3),
		allergies: children.Eq(4),
	}
	switch {
	case slices.Equal(tags, []string{"div", "p", "div", "p", "p", "p", "div"}):
		l.notHome = children.Eq(5)
		l.links = children.Eq(6)
	case slices.Equal(tags, []string{"div", "p", "div", "p", "p", "div"}):
		l.links = children.Eq(5)
	default:
		return nil, routegpx.Errorf(routegpx.EINVALID, "stop layout %v does not match the expected field order", tags)
	}
	return l, nil
}

// parseLinks confirms the link block layout and returns the map URL plus
// the phone number from the optional tel: link.
func parseLinks(links *goquery.Selection) (mapURL, phone string, err error) {
	children := links.Children()
	tags := childTags(children)

	var tel, spacer *goquery.Selection
	switch {
	case slices.Equal(tags, []string{"a", "a", "div", "button"}):
		tel = children.Eq(1)
		spacer = children.Eq(2)
	case slices.Equal(tags, []string{"a", "div", "button"}):
		spacer = children.Eq(1)
	default:
		return "", "", routegpx.Errorf(routegpx.EINVALID, "stop link block %v does not match the expected layout", tags)
	}

	// The element between the links and the button is a bare spacer;
	// content there means we are looking at some other layout.
	if spacer.Children().Length() > 0 || hasStrayText(spacer) {
		return "", "", routegpx.Errorf(routegpx.EINVALID, "link block spacer is not empty")
	}

	mapLink := children.Eq(0)
	if !strings.Contains(mapLink.Text(), "Google Maps") {
		return "", "", routegpx.Errorf(routegpx.EINVALID, "expected a Google Maps link, found %q", textOf(mapLink))
	}
	mapURL, _ = mapLink.Attr("href")

	if tel != nil {
		if !strings.Contains(tel.Text(), "Call") {
			return "", "", routegpx.Errorf(routegpx.EINVALID, "expected a Call link, found %q", textOf(tel))
		}
		href, _ := tel.Attr("href")
		rest, ok := strings.CutPrefix(href, "tel:")
		if !ok {
			return "", "", routegpx.Errorf(routegpx.EINVALID, "expected a tel: link, got %q", href)
		}
		if unescaped, uerr := url.PathUnescape(rest); uerr == nil {
			rest = unescaped
		}
		phone = strings.TrimSpace(rest)
	}
	return mapURL, phone, nil
}

// itemCoordinates looks for a direct geolocation on the stop: data-lat /
// data-lng attributes on the item itself, else a literal lat,lng in the map
// link. Malformed values are reported and treated as absent so the caller
// can fall back to the location code.
func itemCoordinates(item *goquery.Selection, mapURL string, seq int) (*routegpx.Coordinates, []string) {
	latText, latOK := item.Attr("data-lat")
	lngText, lngOK := item.Attr("data-lng")
	if latOK || lngOK {
		switch c, status := routegpx.ParseCoordinates(latText, lngText); status {
		case routegpx.FieldValid:
			return &c, nil
		case routegpx.FieldDowngraded:
			return nil, []string{fmt.Sprintf("stop %d: ignoring unusable coordinates (%q, %q)", seq, latText, lngText)}
		}
	}
	if qLat, qLng, ok := coordsFromMapsURL(mapURL); ok {
		switch c, status := routegpx.ParseCoordinates(qLat, qLng); status {
		case routegpx.FieldValid:
			return &c, nil
		case routegpx.FieldDowngraded:
			return nil, []string{fmt.Sprintf("stop %d: ignoring unusable coordinates in map link (%q, %q)", seq, qLat, qLng)}
		}
	}
	return nil, nil
}

// parseItemMapLink is the per-stop fallback: find the stop's single map
// link and use whatever location it carries.
func parseItemMapLink(item *goquery.Selection, seq int) (*routegpx.StopRecord, error) {
	links := item.Find(`a[href*="google.com/maps"]`)
	if links.Length() != 1 {
		return nil, routegpx.Errorf(routegpx.EINVALID, "expected exactly one map link, found %d", links.Length())
	}
	href, _ := links.First().Attr("href")

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
		return nil, routegpx.Errorf(routegpx.EINVALID, "map link carries no usable location")
	}
	return stop, nil
}

// routeTitle captures the route description heading that precedes the
// route list, e.g. "Deliveries for 04/09/2022 in Demo". Absence is not
// worth a warning; GPX consumers mostly ignore it anyway.
func routeTitle(list *goquery.Selection) string {
	header := list.Parent().ChildrenFiltered("div").First()
	if header.Length() == 0 {
		return ""
	}
	inner := header.ChildrenFiltered("div")
	if inner.Length() != 1 {
		return ""
	}
	return strings.Join(strings.Fields(inner.Text()), " ")
}

// hasStrayText reports whether sel has non-whitespace text directly under
// it. Signature matches ignore significant text at their peril.
func hasStrayText(sel *goquery.Selection) bool {
	for _, n := range sel.Contents().Nodes {
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) != "" {
			return true
		}
	}
	return false
}

func childTags(children *goquery.Selection) []string {
	tags := make([]string, 0, children.Length())
	for _, n := range children.Nodes {
		tags = append(tags, n.Data)
	}
	return tags
}

func textOf(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
