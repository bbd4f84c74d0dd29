package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	s := string(Stack(1))
	assert.True(t, strings.HasPrefix(s, "github.com/x-xyz/escrow/base/utils.TestStack"), s)
}
