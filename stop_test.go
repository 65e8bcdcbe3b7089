package routegpx_test

import (
	"testing"

	"github.com/froest/routegpx"
	"github.com/stretchr/testify/assert"
)

func TestStopRecord_Usable(t *testing.T) {
	t.Parallel()

	t.Run("usable with any locating field", func(t *testing.T) {
		t.Parallel()

		withCoords := &routegpx.StopRecord{Coords: &routegpx.Coordinates{Lat: 52.2, Lng: 0.1}}
		withCode := &routegpx.StopRecord{Code: "9F4299FH+6X"}
		withAddress := &routegpx.StopRecord{Address: "12 Mill Road"}

		assert.True(t, withCoords.Usable())
		assert.True(t, withCode.Usable())
		assert.True(t, withAddress.Usable())
	})

	t.Run("not usable with only label and notes", func(t *testing.T) {
		t.Parallel()

		s := &routegpx.StopRecord{Label: "Jane D.", Notes: "ring twice"}
		assert.False(t, s.Usable())
	})
}

func TestCoordinates_InRange(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid pairs including boundaries", func(t *testing.T) {
		t.Parallel()

		assert.True(t, routegpx.Coordinates{Lat: 52.205, Lng: 0.119}.InRange())
		assert.True(t, routegpx.Coordinates{Lat: -90, Lng: 180}.InRange())
		assert.True(t, routegpx.Coordinates{Lat: 90, Lng: -180}.InRange())
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		t.Parallel()

		assert.False(t, routegpx.Coordinates{Lat: 190, Lng: 0}.InRange())
		assert.False(t, routegpx.Coordinates{Lat: 0, Lng: -181}.InRange())
	})
}
