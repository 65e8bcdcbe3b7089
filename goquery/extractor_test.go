package goquery_test

import (
	"strings"
	"testing"

	"github.com/froest/routegpx"
	"github.com/froest/routegpx/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routePage assembles a document in the shape the web app renders: a single
// <ul> inside <main>, preceded by the route description header.
func routePage(items string) string {
	return `<!DOCTYPE html>
<html><body>
<main>
  <div><p>Deliveries</p></div>
  <div>
    <div><div>Deliveries for 04/09/2022 in Demo</div><button>Reset</button></div>
    <ul>` + items + `</ul>
    <div><a href="https://example.com">Back to the kitchen</a></div>
  </div>
</main>
</body></html>`
}

const fullItem = `<li>
  <div>
    <div><p>Jane Doe</p><p>9F4299FH+6X</p></div>
    <p>12 Mill Road</p>
    <div><span>4</span><p>portions</p></div>
    <p>Ring the top bell</p>
    <p>No nuts</p>
    <div><a href="https://www.google.com/maps/place/9F4299FH%2B6X">Google Maps</a><div></div><button>Done</button></div>
  </div>
</li>`

const notHomeItem = `<li>
  <div>
    <div><p>F Bloggs</p><p>99FH+6X</p></div>
    <p>3 Station Court</p>
    <div><span>2</span><p>portions</p></div>
    <p>Use the side gate</p>
    <p>None</p>
    <p>If no-one's home and you can't make contact: leave with neighbour</p>
    <div><a href="https://www.google.com/maps/place/99FH%2B6X">Google Maps</a><a href="tel:01223%20123456">Call</a><div></div><button>Done</button></div>
  </div>
</li>`

func TestExtractor_Primary(t *testing.T) {
	t.Parallel()

	t.Run("well-formed page extracts with high confidence", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		result := e.Extract(routePage(fullItem + "<hr/>" + notHomeItem))

		assert.Equal(t, routegpx.ConfidenceHigh, result.Confidence)
		assert.Empty(t, result.Warnings)
		require.Len(t, result.Stops, 2)

		first := result.Stops[0]
		assert.Equal(t, 1, first.Seq)
		assert.Equal(t, "Jane", first.Label)
		assert.Equal(t, "12 Mill Road", first.Address)
		assert.Equal(t, "9F4299FH+6X", first.Code)
		assert.Nil(t, first.Coords)
		assert.Equal(t, "Ring the top bell; No nuts", first.Notes)

		second := result.Stops[1]
		assert.Equal(t, 2, second.Seq)
		assert.Equal(t, "F B.", second.Label)
		assert.Equal(t, "99FH+6X", second.Code)
		assert.Equal(t, "Use the side gate; None; leave with neighbour; tel 01223 123456", second.Notes)
	})

	t.Run("captures the route description heading", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		result := e.Extract(routePage(fullItem))

		assert.Equal(t, "Deliveries for 04/09/2022 in Demo", result.Title)
	})

	t.Run("direct coordinates on the item are preferred", func(t *testing.T) {
		t.Parallel()

		item := `<li data-lat="52.205" data-lng="0.119">` + fullItem[len("<li>"):]

		e := goquery.NewExtractor()
		result := e.Extract(routePage(item))

		require.Len(t, result.Stops, 1)
		require.NotNil(t, result.Stops[0].Coords)
		assert.Equal(t, 52.205, result.Stops[0].Coords.Lat)
		assert.Equal(t, 0.119, result.Stops[0].Coords.Lng)
		assert.Equal(t, routegpx.ConfidenceHigh, result.Confidence)
	})

	t.Run("out-of-range coordinates are dropped in favour of the code", func(t *testing.T) {
		t.Parallel()

		item := `<li data-lat="190" data-lng="0.119">` + fullItem[len("<li>"):]

		e := goquery.NewExtractor()
		result := e.Extract(routePage(item))

		require.Len(t, result.Stops, 1)
		assert.Nil(t, result.Stops[0].Coords)
		assert.Equal(t, "9F4299FH+6X", result.Stops[0].Code)
		assert.Equal(t, routegpx.ConfidenceDegraded, result.Confidence)
		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[0], "coordinates")
	})

	t.Run("non-code place ID is kept as address text", func(t *testing.T) {
		t.Parallel()

		item := `<li>
  <div>
    <div><p>Jane Doe</p><p>ChIJd8zX1</p></div>
    <p>12 Mill Road</p>
    <div><span>4</span><p>portions</p></div>
    <p></p>
    <p></p>
    <div><a href="https://www.google.com/maps/place/ChIJd8zX1">Google Maps</a><div></div><button>Done</button></div>
  </div>
</li>`

		e := goquery.NewExtractor()
		result := e.Extract(routePage(item))

		require.Len(t, result.Stops, 1)
		stop := result.Stops[0]
		assert.Empty(t, stop.Code)
		assert.Equal(t, "12 Mill Road / ChIJd8zX1", stop.Address)
		assert.Equal(t, routegpx.ConfidenceDegraded, result.Confidence)
		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[0], "not a plus code")
	})

	t.Run("mismatched code and map link downgrades the stop to its map link", func(t *testing.T) {
		t.Parallel()

		item := `<li>
  <div>
    <div><p>Jane Doe</p><p>9F4299FH+6X</p></div>
    <p>12 Mill Road</p>
    <div><span>4</span><p>portions</p></div>
    <p></p>
    <p></p>
    <div><a href="https://www.google.com/maps/place/8FVC2222%2B22">Google Maps</a><div></div><button>Done</button></div>
  </div>
</li>`

		e := goquery.NewExtractor()
		result := e.Extract(routePage(item))

		require.Len(t, result.Stops, 1)
		stop := result.Stops[0]
		assert.Empty(t, stop.Label)
		assert.Equal(t, "8FVC2222+22", stop.Code)
		assert.Equal(t, routegpx.ConfidenceDegraded, result.Confidence)
		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[0], "does not match the map link")
	})

	t.Run("unparseable stop with a map link falls back to the link", func(t *testing.T) {
		t.Parallel()

		broken := `<li><p>mystery markup</p><a href="https://www.google.com/maps/place/8FVC2222%2B22">Google Maps</a></li>`

		e := goquery.NewExtractor()
		result := e.Extract(routePage(fullItem + broken))

		assert.Equal(t, routegpx.ConfidenceDegraded, result.Confidence)
		require.Len(t, result.Stops, 2)
		assert.Equal(t, "8FVC2222+22", result.Stops[1].Code)
		assert.Equal(t, 2, result.Stops[1].Seq)
	})

	t.Run("unparseable stop with no map link is dropped with a warning", func(t *testing.T) {
		t.Parallel()

		broken := `<li><p>mystery markup with nothing useful</p></li>`

		e := goquery.NewExtractor()
		result := e.Extract(routePage(fullItem + broken))

		assert.Equal(t, routegpx.ConfidenceDegraded, result.Confidence)
		require.Len(t, result.Stops, 1)

		var mentioned bool
		for _, w := range result.Warnings {
			if strings.Contains(w, "stop 2") && strings.Contains(w, "dropping") {
				mentioned = true
			}
		}
		assert.True(t, mentioned, "expected a warning naming the dropped stop, got %v", result.Warnings)
	})

	t.Run("content in the link-block spacer downgrades the stop to its map link", func(t *testing.T) {
		t.Parallel()

		item := `<li>
  <div>
    <div><p>Jane Doe</p><p>9F4299FH+6X</p></div>
    <p>12 Mill Road</p>
    <div><span>4</span><p>portions</p></div>
    <p></p>
    <p></p>
    <div><a href="https://www.google.com/maps/place/9F4299FH%2B6X">Google Maps</a><div>unexpected content</div><button>Done</button></div>
  </div>
</li>`

		e := goquery.NewExtractor()
		result := e.Extract(routePage(item))

		require.Len(t, result.Stops, 1)
		assert.Empty(t, result.Stops[0].Label)
		assert.Equal(t, "9F4299FH+6X", result.Stops[0].Code)
		assert.Equal(t, routegpx.ConfidenceDegraded, result.Confidence)
		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[0], "spacer is not empty")
	})

	t.Run("a second link without Call text downgrades the stop to its map link", func(t *testing.T) {
		t.Parallel()

		item := `<li>
  <div>
    <div><p>Jane Doe</p><p>9F4299FH+6X</p></div>
    <p>12 Mill Road</p>
    <div><span>4</span><p>portions</p></div>
    <p></p>
    <p></p>
    <div><a href="https://www.google.com/maps/place/9F4299FH%2B6X">Google Maps</a><a href="tel:01223123456">Phone</a><div></div><button>Done</button></div>
  </div>
</li>`

		e := goquery.NewExtractor()
		result := e.Extract(routePage(item))

		require.Len(t, result.Stops, 1)
		assert.Empty(t, result.Stops[0].Label)
		assert.Equal(t, routegpx.ConfidenceDegraded, result.Confidence)
		require.NotEmpty(t, result.Warnings)
		assert.Contains(t, result.Warnings[0], "expected a Call link")
	})

	t.Run("stop order follows document order without dedup", func(t *testing.T) {
		t.Parallel()

		// The same address twice may be two legitimate stops.
		e := goquery.NewExtractor()
		result := e.Extract(routePage(fullItem + fullItem))

		require.Len(t, result.Stops, 2)
		assert.Equal(t, result.Stops[0].Code, result.Stops[1].Code)
		assert.Equal(t, []int{1, 2}, []int{result.Stops[0].Seq, result.Stops[1].Seq})
	})
}
