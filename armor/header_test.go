package armor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SOF3/go-openpgp/armor"
)

func TestHeaders_GetCaseInsensitive(t *testing.T) {
	t.Parallel()
	h := armor.Headers{{Key: "Version", Value: "1.0"}, {Key: "Comment", Value: "first"}, {Key: "Comment", Value: "second"}}

	v, ok := h.Get("VERSION")
	assert.True(t, ok)
	assert.Equal(t, "1.0", v)

	all := h.GetAll("comment")
	assert.Equal(t, []string{"first", "second"}, all)

	_, ok = h.Get("missing")
	assert.False(t, ok)
}
