package tui

import (
	"testing"

	"github.com/velourhq/velour/pkg/domain"
)

func TestCategoryStyleCoversAllCategories(t *testing.T) {
	for _, c := range domain.Categories {
		if _, ok := categoryColors[c]; !ok {
			t.Errorf("no color for category %q", c)
		}
	}
}

func TestCategoryStyleUnknownFallsBack(t *testing.T) {
	got := CategoryStyle("Taxidermy").Render("x")
	want := dimStyle.Render("x")
	if got != want {
		t.Errorf("unknown category should use the dim style")
	}
}

func TestShimmerLogoStable(t *testing.T) {
	// Frames differ over time but never come out empty or panic.
	for frame := 0; frame < 200; frame += 17 {
		if renderShimmerLogo(frame) == "" {
			t.Fatalf("empty logo at frame %d", frame)
		}
	}
}

func TestClampByte(t *testing.T) {
	if clampByte(-4) != 0 {
		t.Error("negative should clamp to 0")
	}
	if clampByte(300) != 255 {
		t.Error("overflow should clamp to 255")
	}
	if clampByte(128.7) != 128 {
		t.Error("in-range should truncate")
	}
}
