package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithFieldDoesNotShareBacking(t *testing.T) {
	base := Log().WithField("purchaseId", "p1")
	a := base.WithField("state", "settled")
	b := base.WithField("state", "refunded")

	assert.Equal(t, []interface{}{"purchaseId", "p1", "state", "settled"}, a.fields)
	assert.Equal(t, []interface{}{"purchaseId", "p1", "state", "refunded"}, b.fields)
	assert.Len(t, base.fields, 2)
}

func TestWithFields(t *testing.T) {
	l := Log().WithFields(Fields{"assetId": "token-1"})
	assert.Equal(t, []interface{}{"assetId", "token-1"}, l.fields)
}
