package macro

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tabletop/ecs"
	"github.com/milk9111/tabletop/ecs/system"
	"github.com/milk9111/tabletop/scene"
)

// Runner executes table macros: short tengo scripts that inspect the
// board, manipulate the selection, and gather pieces to a point.
type Runner struct {
	world     *ecs.World
	table     *scene.Table
	selection *scene.Selection
	registry  *scene.Registry
}

func NewRunner(w *ecs.World, table *scene.Table, selection *scene.Selection, registry *scene.Registry) *Runner {
	return &Runner{world: w, table: table, selection: selection, registry: registry}
}

// Run compiles and executes a macro script. The script sees the
// builtins pieces, selected, select_piece, deselect_piece,
// clear_selection, and gather, plus the math and fmt stdlib modules.
func (r *Runner) Run(src string) error {
	if r == nil {
		return fmt.Errorf("macro: nil runner")
	}
	script := tengo.NewScript([]byte(src))
	script.SetImports(stdlib.GetModuleMap("math", "fmt"))

	builtins := map[string]tengo.CallableFunc{
		"pieces":          r.pieces,
		"selected":        r.selected,
		"select_piece":    r.selectPiece,
		"deselect_piece":  r.deselectPiece,
		"clear_selection": r.clearSelection,
		"gather":          r.gather,
	}
	for name, fn := range builtins {
		if err := script.Add(name, &tengo.UserFunction{Name: name, Value: fn}); err != nil {
			return fmt.Errorf("macro: bind %s: %w", name, err)
		}
	}

	if _, err := script.Run(); err != nil {
		return fmt.Errorf("macro: run: %w", err)
	}
	return nil
}

func (r *Runner) pieces(_ ...tengo.Object) (tengo.Object, error) {
	arr := &tengo.Array{}
	for _, p := range r.table.Pieces() {
		arr.Value = append(arr.Value, &tengo.String{Value: p.ID})
	}
	return arr, nil
}

func (r *Runner) selected(_ ...tengo.Object) (tengo.Object, error) {
	arr := &tengo.Array{}
	for _, p := range r.selection.Pieces() {
		arr.Value = append(arr.Value, &tengo.String{Value: p.ID})
	}
	return arr, nil
}

func (r *Runner) selectPiece(args ...tengo.Object) (tengo.Object, error) {
	id, err := stringArg("select_piece", args)
	if err != nil {
		return nil, err
	}
	p := r.table.Piece(id)
	if p == nil {
		return tengo.FalseValue, nil
	}
	r.selection.Add(p)
	return tengo.TrueValue, nil
}

func (r *Runner) deselectPiece(args ...tengo.Object) (tengo.Object, error) {
	id, err := stringArg("deselect_piece", args)
	if err != nil {
		return nil, err
	}
	if p := r.table.Piece(id); p != nil {
		r.selection.Remove(p)
	}
	return tengo.UndefinedValue, nil
}

func (r *Runner) clearSelection(_ ...tengo.Object) (tengo.Object, error) {
	r.selection.Clear()
	return tengo.UndefinedValue, nil
}

func (r *Runner) gather(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 2 {
		return nil, tengo.ErrWrongNumArguments
	}
	x, ok := tengo.ToFloat64(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "x", Expected: "number", Found: args[0].TypeName()}
	}
	y, ok := tengo.ToFloat64(args[1])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "y", Expected: "number", Found: args[1].TypeName()}
	}
	system.Congregate(r.world, r.registry, cp.Vector{X: x, Y: y}, r.selection.Pieces())
	return tengo.UndefinedValue, nil
}

func stringArg(name string, args []tengo.Object) (string, error) {
	if len(args) != 1 {
		return "", tengo.ErrWrongNumArguments
	}
	s, ok := tengo.ToString(args[0])
	if !ok {
		return "", tengo.ErrInvalidArgumentType{Name: name, Expected: "string", Found: args[0].TypeName()}
	}
	return s, nil
}
