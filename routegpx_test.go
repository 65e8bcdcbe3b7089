package routegpx_test

import (
	"testing"

	"github.com/froest/routegpx"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := routegpx.Errorf(routegpx.EINPUT, "cannot read %q", "route.html")

	assert.Equal(t, routegpx.EINPUT, routegpx.ErrorCode(err))
	assert.Equal(t, "cannot read \"route.html\"", routegpx.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, routegpx.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, routegpx.ErrorMessage(nil))
}
