package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/inamate/core2d/internal/shapes"
	"github.com/inamate/core2d/internal/typeid"
)

func str(s string) *string { return &s }

func lastShape(t *testing.T, e *Engine) shapes.Shape {
	t.Helper()
	all := e.Editor().Page().CurrentLayer().Shapes()
	if len(all) == 0 {
		t.Fatal("Expected a committed shape")
	}
	return all[len(all)-1]
}

func drawWith(t *testing.T, e *Engine, tool string, x1, y1, x2, y2 float64) {
	t.Helper()
	if err := e.SetTool(tool); err != nil {
		t.Fatal(err)
	}
	e.PointerDown(at(x1, y1))
	e.PointerMove(at(x2, y2))
	e.PointerDown(at(x2, y2))
}

func TestCircleModeDrawsSquareBox(t *testing.T) {
	e := newEngine(t)
	if err := e.SetToolOptions(ToolOptions{EllipseMode: str("circle")}); err != nil {
		t.Fatal(err)
	}
	if got := e.ToolOptions().EllipseMode; got == nil || *got != "circle" {
		t.Fatalf("Expected circle mode, got %v", got)
	}

	drawWith(t, e, "ellipse", 100, 100, 130, 110)
	ellipse, ok := lastShape(t, e).(*shapes.Ellipse)
	if !ok {
		t.Fatalf("Expected an ellipse, got %T", lastShape(t, e))
	}
	tl, br := ellipse.TopLeft, ellipse.BottomRight
	if tl.X != 70 || tl.Y != 70 || br.X != 130 || br.Y != 130 {
		t.Errorf("Expected box (70,70)-(130,130), got (%v,%v)-(%v,%v)", tl.X, tl.Y, br.X, br.Y)
	}
}

func TestImageToolNeedsKey(t *testing.T) {
	e := newEngine(t)
	drawWith(t, e, "image", 0, 0, 40, 30)
	if n := e.Editor().Page().CurrentLayer().Len(); n != 0 {
		t.Fatalf("Expected no image without a key, got %d shapes", n)
	}

	if err := e.SetToolOptions(ToolOptions{ImageKey: str("shape_bad")}); err == nil {
		t.Error("Expected an error for a non-asset key")
	}

	key := typeid.NewAssetID()
	if err := e.SetToolOptions(ToolOptions{ImageKey: &key}); err != nil {
		t.Fatal(err)
	}
	drawWith(t, e, "image", 0, 0, 40, 30)
	image, ok := lastShape(t, e).(*shapes.Image)
	if !ok {
		t.Fatalf("Expected an image, got %T", lastShape(t, e))
	}
	if image.Key != key {
		t.Errorf("Expected key %s, got %s", key, image.Key)
	}
}

func TestInvalidOptionsChangeNothing(t *testing.T) {
	e := newEngine(t)
	key := typeid.NewAssetID()
	err := e.SetToolOptions(ToolOptions{ImageKey: &key, EllipseMode: str("oval")})
	if err == nil {
		t.Fatal("Expected an error for an unknown ellipse mode")
	}
	if got := e.ToolOptions().ImageKey; got == nil || *got != "" {
		t.Errorf("Expected the image key to stay unset, got %v", got)
	}
}

func TestTextDefault(t *testing.T) {
	e := newEngine(t)
	if err := e.SetToolOptions(ToolOptions{Text: str("Hello")}); err != nil {
		t.Fatal(err)
	}
	drawWith(t, e, "text", 0, 0, 80, 20)
	text, ok := lastShape(t, e).(*shapes.Text)
	if !ok {
		t.Fatalf("Expected a text box, got %T", lastShape(t, e))
	}
	if text.Text != "Hello" {
		t.Errorf("Expected Hello, got %q", text.Text)
	}
}

func TestViewScale(t *testing.T) {
	e := newEngine(t)
	if err := e.Execute(Command{Name: "view.scale", Scale: 2}); err != nil {
		t.Fatal(err)
	}
	if got := e.Scale(); got != 2 {
		t.Errorf("Expected scale 2, got %v", got)
	}
	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if err := e.Execute(Command{Name: "view.scale", Scale: bad}); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("Expected ErrInvalidScale for %v, got %v", bad, err)
		}
	}
	if got := e.Scale(); got != 2 {
		t.Errorf("Expected scale to stay 2, got %v", got)
	}
}

func TestCutAndPasteCommands(t *testing.T) {
	e := newEngine(t)
	id := drawRect(t, e, 10, 10, 50, 40)
	e.SetSelection([]string{id})
	layer := e.Editor().Page().CurrentLayer()
	undoable := e.Editor().History().Len()

	if err := e.Execute(Command{Name: "cut"}); err != nil {
		t.Fatal(err)
	}
	if layer.Len() != 0 {
		t.Fatalf("Expected cut to empty the layer, got %d shapes", layer.Len())
	}
	if err := e.Execute(Command{Name: "paste"}); err != nil {
		t.Fatal(err)
	}
	if layer.Len() != 1 {
		t.Fatalf("Expected one pasted shape, got %d", layer.Len())
	}
	pasted := lastShape(t, e).(*shapes.Rectangle)
	if pasted.ID() == id || pasted.TopLeft.X != 10 {
		t.Errorf("Expected a new shape where the cut one was, got %s at %v", pasted.ID(), pasted.TopLeft.X)
	}
	if got := e.SelectionIDs(); len(got) != 1 || got[0] != pasted.ID() {
		t.Errorf("Expected the pasted shape selected, got %v", got)
	}
	if got := e.Editor().History().Len() - undoable; got != 2 {
		t.Errorf("Expected one entry each for cut and paste, got %d", got)
	}

	if err := e.Execute(Command{Name: "copy"}); err != nil {
		t.Fatal(err)
	}
	if err := e.Execute(Command{Name: "paste"}); err != nil {
		t.Fatal(err)
	}
	if second := lastShape(t, e).(*shapes.Rectangle); second.TopLeft.X != 20 {
		t.Errorf("Expected the copy offset to 20, got %v", second.TopLeft.X)
	}
}
