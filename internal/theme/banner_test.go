package theme

import (
	"strings"
	"testing"
)

func TestBannerNamesTool(t *testing.T) {
	if !strings.Contains(Banner(), "MENTIONGRAPH") {
		t.Fatal("banner should name the tool")
	}
}
