package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestNewRGBAImage(t *testing.T) {
	img := NewRGBAImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
}

func TestRGBAImageClone(t *testing.T) {
	img := NewRGBAImage(10, 10)
	img.SetRGB(5, 5, RGB{R: 255, G: 0, B: 0})

	clone := img.Clone()
	if clone.GetRGB(5, 5) != img.GetRGB(5, 5) {
		t.Error("Clone should have same pixel values")
	}

	clone.SetRGB(5, 5, RGB{R: 0, G: 255, B: 0})
	if img.GetRGB(5, 5).G != 0 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestRGBFromColorIgnoresAlpha(t *testing.T) {
	// Premultiplied half-transparent red.
	c := color.RGBA{R: 128, G: 0, B: 0, A: 128}
	got := RGBFromColor(c)
	if got.R != 255 || got.G != 0 || got.B != 0 {
		t.Errorf("Expected straight red, got %v", got)
	}

	n := color.NRGBA{R: 10, G: 20, B: 30, A: 7}
	if got := RGBFromColor(n); got != (RGB{10, 20, 30}) {
		t.Errorf("Expected NRGBA channels to pass through, got %v", got)
	}
}

func TestRGBAImageFromImageOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 7, 8, 9))
	src.SetNRGBA(5, 7, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	src.SetNRGBA(7, 8, color.NRGBA{R: 9, G: 8, B: 7, A: 255})

	img := RGBAImageFromImage(src)
	if img.Width() != 3 || img.Height() != 2 {
		t.Fatalf("Expected 3x2, got %dx%d", img.Width(), img.Height())
	}
	if img.GetRGB(0, 0) != (RGB{1, 2, 3}) {
		t.Errorf("Top-left not copied: %v", img.GetRGB(0, 0))
	}
	if img.GetRGB(2, 1) != (RGB{9, 8, 7}) {
		t.Errorf("Bottom-right not copied: %v", img.GetRGB(2, 1))
	}
}

func TestGrayImageRow(t *testing.T) {
	img := NewGrayImage(4, 3)
	img.SetGrayValue(2, 1, 200)

	row := img.Row(1)
	if len(row) != 4 {
		t.Fatalf("Expected row length 4, got %d", len(row))
	}
	if row[2] != 200 || img.GetGray(2, 1) != 200 {
		t.Errorf("Expected 200 at (2,1), got %d", row[2])
	}
}

func TestGrayImageToRGBA(t *testing.T) {
	img := NewGrayImage(2, 1)
	img.SetGrayValue(1, 0, 77)

	rgba := img.ToRGBA()
	if rgba.GetRGB(1, 0) != (RGB{77, 77, 77}) {
		t.Errorf("Expected gray 77, got %v", rgba.GetRGB(1, 0))
	}
	if rgba.RGBAAt(0, 0).A != 255 {
		t.Error("Expanded pixels should be opaque")
	}
}

func TestToGrayscale(t *testing.T) {
	testCases := []struct {
		name    string
		c       RGB
		weights LumaWeights
		want    uint8
	}{
		{"white BT601", RGB{255, 255, 255}, BT601, 255},
		{"black BT601", RGB{0, 0, 0}, BT601, 0},
		{"red BT601", RGB{255, 0, 0}, BT601, 76},
		{"white Rec709", RGB{255, 255, 255}, Rec709, 255},
		{"black Rec709", RGB{0, 0, 0}, Rec709, 0},
		{"red Rec709", RGB{255, 0, 0}, Rec709, 54},
		{"green Rec709", RGB{0, 255, 0}, Rec709, 182},
		{"blue Rec709", RGB{0, 0, 255}, Rec709, 18},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img := CreateSolidImage(1, 1, tc.c)
			got := ToGrayscaleWeighted(img, tc.weights).GetGray(0, 0)
			if got != tc.want {
				t.Errorf("Expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestToLumaMatchesRec709(t *testing.T) {
	img := CreateColorBarsImage(64, 8)
	a := ToLuma(img)
	b := ToGrayscaleWeighted(img, Rec709)
	if mse := CalculateMSEGray(a, b); mse != 0 {
		t.Errorf("ToLuma should equal Rec709 weighting, MSE=%f", mse)
	}
}

func TestSampleNearestScenario(t *testing.T) {
	// [black, white; white, black] sampled to 2x1 must read row 0.
	src := NewRGBAImage(2, 2)
	src.SetRGB(0, 0, RGB{0, 0, 0})
	src.SetRGB(1, 0, RGB{255, 255, 255})
	src.SetRGB(0, 1, RGB{255, 255, 255})
	src.SetRGB(1, 1, RGB{0, 0, 0})

	dst := SampleNearest(src, 2, 1)
	if dst.Width() != 2 || dst.Height() != 1 {
		t.Fatalf("Expected 2x1, got %dx%d", dst.Width(), dst.Height())
	}
	if dst.GetRGB(0, 0) != (RGB{0, 0, 0}) || dst.GetRGB(1, 0) != (RGB{255, 255, 255}) {
		t.Errorf("Expected black, white; got %v, %v", dst.GetRGB(0, 0), dst.GetRGB(1, 0))
	}
}

func TestSampleNearestGrid(t *testing.T) {
	testCases := []struct {
		name       string
		srcW, srcH int
		dstW, dstH int
	}{
		{"identity", 16, 12, 16, 12},
		{"downscale 2x", 16, 12, 8, 6},
		{"downscale uneven", 17, 13, 5, 3},
		{"upscale", 3, 2, 7, 5},
		{"single pixel", 1, 1, 4, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := CreateIndexedImage(tc.srcW, tc.srcH)
			dst := SampleNearest(src, tc.dstW, tc.dstH)

			for dy := 0; dy < tc.dstH; dy++ {
				for dx := 0; dx < tc.dstW; dx++ {
					c := dst.GetRGB(dx, dy)
					wantX := dx * tc.srcW / tc.dstW
					wantY := dy * tc.srcH / tc.dstH
					if int(c.R) != wantX || int(c.G) != wantY {
						t.Errorf("(%d,%d) sampled (%d,%d), want (%d,%d)",
							dx, dy, c.R, c.G, wantX, wantY)
					}
				}
			}
		})
	}
}

func TestSampleNearestHonorsBoundsOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 12, 22))
	src.SetNRGBA(10, 20, color.NRGBA{R: 42, A: 255})

	dst := SampleNearest(src, 1, 1)
	if dst.GetRGB(0, 0).R != 42 {
		t.Errorf("Expected origin pixel, got %v", dst.GetRGB(0, 0))
	}
}

func TestSampleIndices(t *testing.T) {
	got := SampleIndices(10, 4)
	want := []int{0, 2, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestResize(t *testing.T) {
	img := CreateGradientImage(100, 100)

	resized := Resize(img, 50, 50, InterpolationCatmullRom)
	if resized.Width() != 50 || resized.Height() != 50 {
		t.Errorf("Expected 50x50, got %dx%d", resized.Width(), resized.Height())
	}

	resized = Resize(img, 200, 200, InterpolationLinear)
	if resized.Width() != 200 || resized.Height() != 200 {
		t.Errorf("Expected 200x200, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestEnlarge(t *testing.T) {
	img := NewGrayImage(2, 1)
	img.SetGrayValue(1, 0, 255)

	big := Enlarge(img, 4)
	if big.Width() != 8 || big.Height() != 4 {
		t.Fatalf("Expected 8x4, got %dx%d", big.Width(), big.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			want := uint8(0)
			if x >= 4 {
				want = 255
			}
			if got := big.GetRGB(x, y).R; got != want {
				t.Errorf("(%d,%d): expected %d, got %d", x, y, want, got)
			}
		}
	}

	if same := Enlarge(img, 0); same.Width() != 2 {
		t.Errorf("Factor 0 should behave as 1, got width %d", same.Width())
	}
}

func TestFitWithin(t *testing.T) {
	testCases := []struct {
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{100, 50, 200, 200, 100, 50},
		{400, 200, 200, 200, 200, 100},
		{200, 400, 200, 200, 100, 200},
		{1000, 1, 10, 10, 10, 1},
	}
	for _, tc := range testCases {
		w, h := FitWithin(tc.w, tc.h, tc.maxW, tc.maxH)
		if w != tc.wantW || h != tc.wantH {
			t.Errorf("FitWithin(%d,%d,%d,%d) = %d,%d; want %d,%d",
				tc.w, tc.h, tc.maxW, tc.maxH, w, h, tc.wantW, tc.wantH)
		}
	}
}

func TestLoadSaveImage(t *testing.T) {
	tmpDir := t.TempDir()
	img := CreateColorBarsImage(64, 64)

	pngPath := filepath.Join(tmpDir, "test.png")
	if err := SaveImage(img.RGBA, pngPath); err != nil {
		t.Fatalf("Failed to save PNG: %v", err)
	}

	loaded, err := LoadImage(pngPath)
	if err != nil {
		t.Fatalf("Failed to load PNG: %v", err)
	}

	if mse := CalculateMSE(img, RGBAImageFromImage(loaded)); mse > 0.01 {
		t.Errorf("PNG should be lossless, MSE=%f", mse)
	}
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	if _, _, err := DecodeImage(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("Expected error decoding garbage")
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestCalculateMSE(t *testing.T) {
	img1 := CreateSolidImage(10, 10, RGB{0, 0, 0})
	img2 := CreateSolidImage(10, 10, RGB{10, 10, 10})

	if mse := CalculateMSE(img1, img1.Clone()); mse != 0 {
		t.Errorf("Identical images should have MSE=0, got %f", mse)
	}
	if mse := CalculateMSE(img1, img2); mse != 100.0 {
		t.Errorf("Expected MSE=100, got %f", mse)
	}
}

// TestSaveTestImages saves test images to testdata for visual inspection.
// Run with: SAVE_TEST_IMAGES=1 go test -run TestSaveTestImages -v
func TestSaveTestImages(t *testing.T) {
	if os.Getenv("SAVE_TEST_IMAGES") != "1" {
		t.Skip("Set SAVE_TEST_IMAGES=1 to generate test images")
	}

	testdataDir := "../testdata"
	if err := os.MkdirAll(testdataDir, 0755); err != nil {
		t.Fatal(err)
	}

	SaveImage(CreateGradientImage(256, 256).RGBA, filepath.Join(testdataDir, "gradient.png"))
	SaveImage(CreateVerticalGradientImage(256, 256).RGBA, filepath.Join(testdataDir, "vgradient.png"))
	SaveImage(CreateCheckerboardImage(256, 256, 32).RGBA, filepath.Join(testdataDir, "checkerboard.png"))
	SaveImage(CreateColorBarsImage(256, 256).RGBA, filepath.Join(testdataDir, "colorbars.png"))

	t.Log("Test images saved to testdata/")
}
