//go:build js && wasm

package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"syscall/js"

	"github.com/inamate/core2d/internal/config"
	"github.com/inamate/core2d/internal/engine"
	"github.com/inamate/core2d/internal/tools"
)

var eng *engine.Engine

func main() {
	eng = engine.NewEngine(config.DefaultEditor())

	// Create the engine API object
	core2dEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	core2dEngine.Set("pointerDown", js.FuncOf(input(eng.PointerDown)))
	core2dEngine.Set("pointerUp", js.FuncOf(input(eng.PointerUp)))
	core2dEngine.Set("altDown", js.FuncOf(input(eng.AltDown)))
	core2dEngine.Set("altUp", js.FuncOf(input(eng.AltUp)))
	core2dEngine.Set("pointerMove", js.FuncOf(input(eng.PointerMove)))
	core2dEngine.Set("setTool", js.FuncOf(setTool))
	core2dEngine.Set("setToolOptions", js.FuncOf(setToolOptions))
	core2dEngine.Set("setScale", js.FuncOf(setScale))
	core2dEngine.Set("setSelection", js.FuncOf(setSelection))
	core2dEngine.Set("execute", js.FuncOf(execute))
	core2dEngine.Set("undo", js.FuncOf(undo))
	core2dEngine.Set("redo", js.FuncOf(redo))

	// --- Queries (frontend ← backend) ---
	core2dEngine.Set("needsRender", js.FuncOf(needsRender))
	core2dEngine.Set("render", js.FuncOf(render))
	core2dEngine.Set("hitTest", js.FuncOf(hitTest))
	core2dEngine.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	core2dEngine.Set("getSelection", js.FuncOf(getSelection))
	core2dEngine.Set("getTool", js.FuncOf(getTool))
	core2dEngine.Set("getTools", js.FuncOf(getTools))
	core2dEngine.Set("getToolOptions", js.FuncOf(getToolOptions))
	core2dEngine.Set("getHistory", js.FuncOf(getHistory))
	core2dEngine.Set("exportSVG", js.FuncOf(exportSVG))
	core2dEngine.Set("exportPNG", js.FuncOf(exportPNG))

	// Register on global scope
	js.Global().Set("core2dEngine", core2dEngine)

	// Signal that WASM is ready
	js.Global().Set("core2dWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func errorResult(err error) interface{} {
	return js.ValueOf(map[string]interface{}{"error": err.Error()})
}

func okResult() interface{} {
	return js.ValueOf(map[string]interface{}{"ok": true})
}

// --- Command Handlers ---

// input adapts a pointer method to (x, y, modifier) arguments. It
// returns whether the event reached the tool.
func input(fn func(tools.InputArgs) bool) func(js.Value, []js.Value) interface{} {
	return func(this js.Value, args []js.Value) interface{} {
		if len(args) < 2 {
			return js.ValueOf(false)
		}
		in := tools.InputArgs{X: args[0].Float(), Y: args[1].Float()}
		if len(args) > 2 && args[2].Type() == js.TypeNumber {
			in.Modifier = tools.Modifier(args[2].Int())
		}
		return js.ValueOf(fn(in))
	}
}

func setTool(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing tool name"})
	}
	if err := eng.SetTool(args[0].String()); err != nil {
		return errorResult(err)
	}
	return okResult()
}

// setToolOptions takes an engine.ToolOptions as JSON.
func setToolOptions(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing options JSON"})
	}
	var o engine.ToolOptions
	if err := json.Unmarshal([]byte(args[0].String()), &o); err != nil {
		return errorResult(err)
	}
	if err := eng.SetToolOptions(o); err != nil {
		return errorResult(err)
	}
	return okResult()
}

func setScale(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing scale"})
	}
	if err := eng.SetScale(args[0].Float()); err != nil {
		return errorResult(err)
	}
	return okResult()
}

func setSelection(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		eng.SetSelection(nil)
		return nil
	}

	arr := args[0]
	if arr.Type() != js.TypeObject {
		eng.SetSelection(nil)
		return nil
	}

	length := arr.Length()
	ids := make([]string, length)
	for i := 0; i < length; i++ {
		ids[i] = arr.Index(i).String()
	}
	eng.SetSelection(ids)
	return nil
}

// execute takes an engine.Command as JSON.
func execute(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing command JSON"})
	}
	var cmd engine.Command
	if err := json.Unmarshal([]byte(args[0].String()), &cmd); err != nil {
		return errorResult(err)
	}
	if err := eng.Execute(cmd); err != nil {
		return errorResult(err)
	}
	return okResult()
}

func undo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Undo())
}

func redo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Redo())
}

// --- Query Handlers ---

func needsRender(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.NeedsRender())
}

func render(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Render())
}

func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	x := args[0].Float()
	y := args[1].Float()
	return js.ValueOf(eng.HitTest(x, y))
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetSelectionBounds())
}

func getSelection(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetSelection())
}

func getTool(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetTool())
}

func getTools(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetTools())
}

func getToolOptions(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(eng.ToolOptions())
	if err != nil {
		return errorResult(err)
	}
	return js.ValueOf(string(data))
}

func getHistory(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetHistory())
}

func exportSVG(this js.Value, args []js.Value) interface{} {
	var buf bytes.Buffer
	eng.ExportSVG(&buf, nil)
	return js.ValueOf(buf.String())
}

// exportPNG returns the page as a base64 data URL.
func exportPNG(this js.Value, args []js.Value) interface{} {
	var buf bytes.Buffer
	if err := eng.ExportPNG(&buf, nil); err != nil {
		return errorResult(err)
	}
	return js.ValueOf("data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()))
}
