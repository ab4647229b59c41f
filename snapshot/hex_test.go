package snapshot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexDumpProducesIntelHexRecords(t *testing.T) {
	region := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	out := HexDump(region, 0x1000)

	assert.True(t, strings.HasPrefix(out, ":"), "Intel HEX records start with ':'")
	assert.Contains(t, out, ":00000001FF", "output must include the EOF record")
}

func TestHexDumpEmptyRegion(t *testing.T) {
	out := HexDump(nil, 0)
	assert.Contains(t, out, ":00000001FF")
}
