package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexHTML_Embedded(t *testing.T) {
	assert.NotEmpty(t, IndexHTML)
	assert.Contains(t, string(IndexHTML), "/api/v1/certificates")
	assert.Contains(t, string(IndexHTML), "/api/v1/events")
}

func TestIndexHTML_RequestsPDFInOneRoundTrip(t *testing.T) {
	page := string(IndexHTML)
	assert.Contains(t, page, "'Accept': 'application/pdf'")
	assert.Contains(t, page, "X-Certificate-File")
	assert.Contains(t, page, "X-Certificate-Notice")
	assert.NotContains(t, page, "download_url") // no second GET leg
}
