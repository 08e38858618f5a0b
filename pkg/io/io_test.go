package io

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/xformstack/pkg/affine"
	errs "github.com/matzehuels/xformstack/pkg/errors"
)

const armTOML = `
kind = "stack"
label = "arm"

[[transform]]
name = "shoulder"
type = "translate"
y = 2.0

[[transform]]
name = "elbow"
type = "rotate"
axis = "z"
degrees = 90.0

[[transform]]
name = "hand"
type = "group"

  [[transform.transform]]
  name = "grip"
  type = "scale"
  x = 2.0

  [[transform.transform]]
  name = "fixed"
  type = "matrix"
  matrix = [
    [1.0, 0.0, 0.0, 0.0],
    [0.0, 1.0, 0.0, 0.0],
    [0.0, 0.0, 1.0, 0.0],
    [0.0, 0.0, 3.0, 1.0],
  ]
`

const eps = 1e-9

func TestReadTOML(t *testing.T) {
	doc, err := ReadTOML(strings.NewReader(armTOML))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	if doc.Kind != KindStack || doc.Label != "arm" {
		t.Errorf("kind/label = %q/%q", doc.Kind, doc.Label)
	}
	if len(doc.Transforms) != 3 {
		t.Fatalf("len(Transforms) = %d, want 3", len(doc.Transforms))
	}
	hand := doc.Transforms[2]
	if hand.Type != TypeGroup || len(hand.Transforms) != 2 {
		t.Errorf("hand = %+v", hand)
	}
	if doc.Count() != 5 {
		t.Errorf("Count() = %d, want 5", doc.Count())
	}
}

func TestBuild(t *testing.T) {
	doc, err := ReadTOML(strings.NewReader(armTOML))
	if err != nil {
		t.Fatal(err)
	}
	scene, err := Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer scene.Release()

	if scene.Label() != "arm" || scene.Count() != 5 {
		t.Errorf("Label/Count = %q/%d", scene.Label(), scene.Count())
	}
	if scene.Stack() == nil {
		t.Fatal("stack document should build a stack")
	}

	// hand maps (1,0,0) to (2,0,3), elbow rotates it to (0,2,3) and
	// shoulder lifts it to (0,4,3).
	x, y, z := scene.Operand().TransformPoint(1, 0, 0)
	if math.Abs(x) > eps || math.Abs(y-4) > eps || math.Abs(z-3) > eps {
		t.Errorf("TransformPoint(1,0,0) = (%g,%g,%g), want (0,4,3)", x, y, z)
	}
}

func TestBuildEditsPropagate(t *testing.T) {
	scene, err := Build(&Document{
		Kind: KindGroup,
		Transforms: []Transform{
			{Name: "move", Type: TypeTranslate},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if scene.Stack() != nil {
		t.Error("group document built a stack")
	}

	info := scene.Root.Snapshot()[0]
	info.Transformation.(*affine.Translate).SetOffset(5, 0, 0)
	if !scene.Operand().ApproxEqual(affine.Translation(5, 0, 0), eps) {
		t.Errorf("Operand() = %v after edit", scene.Operand())
	}
}

func TestValidate(t *testing.T) {
	one := 1.0
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{"bad kind", Document{Kind: "queue"}, "unknown kind"},
		{"empty name", Document{Transforms: []Transform{{Type: TypeTranslate}}}, "transform[0]: bad name"},
		{"missing type", Document{Transforms: []Transform{{Name: "a"}}}, "missing type"},
		{"unknown type", Document{Transforms: []Transform{{Name: "a", Type: "shear"}}}, `unknown type "shear"`},
		{"bad axis", Document{Transforms: []Transform{{Name: "r", Type: TypeRotate, Axis: "w"}}}, "bad axis"},
		{"short matrix", Document{Transforms: []Transform{{Name: "m", Type: TypeMatrix, Matrix: [][]float64{{1}}}}}, "needs 4 rows"},
		{"leaf with children", Document{Transforms: []Transform{{Name: "t", Type: TypeTranslate, X: &one, Transforms: []Transform{{Name: "c", Type: TypeScale}}}}}, "may nest"},
		{"nested error path", Document{Transforms: []Transform{{Name: "g", Type: TypeGroup, Transforms: []Transform{{Name: "bad", Type: "?"}}}}}, "transform[0] (g).transform[0] (bad)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errs.Is(err, errs.ErrCodeInvalidDocument) {
				t.Errorf("code = %s, want INVALID_DOCUMENT", errs.GetCode(err))
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestReadRejectsUnknownKeys(t *testing.T) {
	_, err := ReadTOML(strings.NewReader("kind = \"stack\"\n[[transform]]\nname = \"a\"\ntype = \"rotate\"\naxis = \"z\"\ndegree = 90.0\n"))
	if err == nil || !strings.Contains(err.Error(), "degree") {
		t.Errorf("ReadTOML with misspelt key: %v", err)
	}

	_, err = ReadJSON(strings.NewReader(`{"kind": "group", "transforms": [], "extra": 1}`))
	if !errs.Is(err, errs.ErrCodeInvalidDocument) {
		t.Errorf("ReadJSON with unknown field: %v", err)
	}
}

func TestFromChainRoundTrip(t *testing.T) {
	doc, _ := ReadTOML(strings.NewReader(armTOML))
	scene, _ := Build(doc)
	want := scene.Operand()

	exported := FromChain(scene.Root)
	if exported.Kind != KindStack || exported.Label != "arm" {
		t.Errorf("kind/label = %q/%q", exported.Kind, exported.Label)
	}
	if got := exported.Transforms[1].Type; got != TypeMatrix {
		t.Errorf("leaf exported as %q, want matrix", got)
	}
	if got := exported.Transforms[2]; got.Type != TypeGroup || got.Label != "hand" || len(got.Transforms) != 2 {
		t.Errorf("nested group exported as %+v", got)
	}

	for _, format := range []string{"json", "toml"} {
		var buf bytes.Buffer
		var err error
		if format == "json" {
			err = WriteJSON(exported, &buf)
		} else {
			err = WriteTOML(exported, &buf)
		}
		if err != nil {
			t.Fatalf("%s: write: %v", format, err)
		}

		var back *Document
		if format == "json" {
			back, err = ReadJSON(&buf)
		} else {
			back, err = ReadTOML(&buf)
		}
		if err != nil {
			t.Fatalf("%s: read back: %v", format, err)
		}
		rebuilt, err := Build(back)
		if err != nil {
			t.Fatalf("%s: build: %v", format, err)
		}
		if !rebuilt.Operand().ApproxEqual(want, eps) {
			t.Errorf("%s: round trip operand = %v, want %v", format, rebuilt.Operand(), want)
		}
	}
}

func TestImportExportFiles(t *testing.T) {
	dir := t.TempDir()
	doc := &Document{
		Kind:  KindGroup,
		Label: "files",
		Transforms: []Transform{
			{Name: "spin", Type: TypeRotate, Axis: "y", Degrees: 30},
		},
	}

	for _, name := range []string{"scene.json", "scene.toml"} {
		path := filepath.Join(dir, name)
		if err := Export(doc, path); err != nil {
			t.Fatalf("Export(%s): %v", name, err)
		}
		back, err := Import(path)
		if err != nil {
			t.Fatalf("Import(%s): %v", name, err)
		}
		if back.Label != "files" || back.Transforms[0].Degrees != 30 {
			t.Errorf("%s: got %+v", name, back)
		}
	}

	_, err := Import(filepath.Join(dir, "missing.toml"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("Import(missing) = %v, want FILE_NOT_FOUND", err)
	}
}

func TestDescribe(t *testing.T) {
	g := affine.NewGroup()
	g.SetLabel("inner")
	g.Add("a", affine.NewFixed(affine.Identity()))

	tests := []struct {
		t        affine.Transformation
		typ, out string
	}{
		{affine.NewTranslate(1, 2, 3), TypeTranslate, "translate(1, 2, 3)"},
		{affine.NewRotate(affine.AxisY, math.Pi/2), TypeRotate, "rotate y 90°"},
		{affine.NewScale(2, 2, 1), TypeScale, "scale(2, 2, 1)"},
		{affine.NewFixed(affine.Identity()), TypeMatrix, "matrix"},
		{g, TypeGroup, `group "inner" (1)`},
		{affine.NewStack(), TypeStack, ""},
	}
	for _, tt := range tests {
		if got := TypeOf(tt.t); got != tt.typ {
			t.Errorf("TypeOf(%T) = %q, want %q", tt.t, got, tt.typ)
		}
		if tt.out != "" && Describe(tt.t) != tt.out {
			t.Errorf("Describe(%T) = %q, want %q", tt.t, Describe(tt.t), tt.out)
		}
	}
}
