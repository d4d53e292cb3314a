package reactor

import (
	"bytes"
	"testing"
)

func TestRenderChartProducesPNG(t *testing.T) {
	p := defaultParams()
	res, err := Run(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	png, err := RenderChart(p, res)
	if err != nil {
		t.Fatalf("rendering chart: %v", err)
	}

	sig := []byte{0x89, 'P', 'N', 'G'}
	if len(png) < 4 || !bytes.Equal(png[:4], sig) {
		t.Fatal("expected PNG signature at start of output")
	}
}
