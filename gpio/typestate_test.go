package gpio

import (
	"go/ast"
	"go/parser"
	gotoken "go/token"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

type importerFunc func(path string) (*types.Package, error)

func (f importerFunc) Import(path string) (*types.Package, error) { return f(path) }

// loadGPIO returns the type information of this package as user code sees it.
func loadGPIO(t *testing.T) *types.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedImports | packages.NeedDeps,
	}
	pkgs, err := packages.Load(cfg, "esp32hal/gpio")
	if err != nil {
		t.Fatal(err)
	}
	if len(pkgs) != 1 {
		t.Fatalf("loaded %d packages", len(pkgs))
	}
	if len(pkgs[0].Errors) > 0 {
		t.Fatal(pkgs[0].Errors[0])
	}
	return pkgs[0].Types
}

// typeCheck compiles body inside a function that receives the split pins.
func typeCheck(t *testing.T, gpio *types.Package, body string) error {
	t.Helper()
	src := "package user\n\nimport \"esp32hal/gpio\"\n\nfunc use(p gpio.Parts) {\n" + body + "\n}\n"
	fset := gotoken.NewFileSet()
	f, err := parser.ParseFile(fset, "user.go", src, 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	conf := types.Config{Importer: importerFunc(func(path string) (*types.Package, error) {
		if path != gpio.Path() {
			t.Fatalf("unexpected import %q", path)
		}
		return gpio, nil
	})}
	_, err = conf.Check("user", fset, []*ast.File{f}, nil)
	return err
}

func TestTypeStateAcceptsValidUse(t *testing.T) {
	pkg := loadGPIO(t)
	body := `
	out := p.Gpio2.IntoPushPullOutput()
	out.SetHigh()
	var _ gpio.Alternate[gpio.Gpio1, gpio.AF1] = p.Gpio1.IntoAlternate1()
	var _ gpio.Input[gpio.Gpio4, gpio.PullUp] = p.Gpio4.IntoPullUpInput()
	in := p.Gpio34.IntoFloatingInput()
	_ = in.IsHigh()
	_ = gpio.NewLine(p.Gpio21.IntoOpenDrainOutput()).IsLow()`
	if err := typeCheck(t, pkg, body); err != nil {
		t.Fatalf("valid use rejected: %v", err)
	}
}

func TestTypeStateRejectsInvalidUse(t *testing.T) {
	pkg := loadGPIO(t)
	tests := []struct {
		name string
		body string
		want string
	}{
		{"input-only pin with pull", `var _ gpio.Input[gpio.Gpio34, gpio.PullUp]`, "does not satisfy"},
		{"input-only pin as output", `var _ gpio.Output[gpio.Gpio36, gpio.PushPull]`, "does not satisfy"},
		{"drive marker as bias", `var _ gpio.Input[gpio.Gpio2, gpio.PushPull]`, "does not satisfy"},
		{"bias marker as drive", `var _ gpio.Output[gpio.Gpio2, gpio.PullUp]`, "does not satisfy"},
		{"drive marker as function", `var _ gpio.Alternate[gpio.Gpio2, gpio.OpenDrain]`, "does not satisfy"},
		{"function 3", `var _ gpio.Alternate[gpio.Gpio2, gpio.AF3]`, "undefined"},
		{"unimplemented pin", `var _ gpio.Gpio24`, "undefined"},
		{"output transition on input-only pin", `p.Gpio34.IntoPushPullOutput()`, "has no field or method"},
		{"pull on input-only pin", `p.Gpio39.IntoPullUpInput()`, "has no field or method"},
		{"alternate on input-only pin", `p.Gpio35.IntoAlternate1()`, "has no field or method"},
		{"level read on push-pull output", `_ = p.Gpio2.IntoPushPullOutput().IsHigh()`, "has no field or method"},
		{"write to input", `p.Gpio4.SetHigh()`, "has no field or method"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := typeCheck(t, pkg, tt.body)
			if err == nil {
				t.Fatalf("%q type-checked", tt.body)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
