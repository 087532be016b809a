package dispatch

import (
	"fmt"

	"github.com/cantonlabs/ledgerview/internal/errors"
)

// Result is the transport-agnostic outcome of a tool invocation.
// Exactly one variant applies and Text is always populated, so both
// transports can render it uniformly.
type Result struct {
	Text    string
	IsError bool
}

// Ok creates a success Result.
func Ok(text string) Result {
	return Result{Text: text}
}

// Err creates an error Result.
func Err(text string) Result {
	return Result{Text: text, IsError: true}
}

// Dispatcher resolves operation identifiers against the registry,
// merges parameter defaults, invokes handlers, and normalizes every
// outcome into a Result. It is the single point where internal faults
// become the external error contract: no handler fault, panics
// included, crosses into a transport adapter unconverted.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Registry returns the operation table the dispatcher resolves against.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// CallTool invokes the named tool with the given argument bag. An
// unknown name is the one failure reported as a Go error (there is no
// handler to invoke); every other failure is carried inside the Result.
func (d *Dispatcher) CallTool(name string, args map[string]any) (Result, error) {
	tool, ok := d.registry.Tool(name)
	if !ok {
		return Result{}, errors.ToolNotFound(name)
	}

	merged := make(map[string]any, len(args))
	for k, v := range args {
		merged[k] = v
	}
	for _, param := range tool.Params {
		if _, present := merged[param.Name]; present {
			continue
		}
		if param.Required {
			return Err(errors.InvalidParams(fmt.Sprintf("%s is required", param.Name)).Error()), nil
		}
		merged[param.Name] = param.Default
	}

	return invoke(tool, merged), nil
}

// ReadResource returns the text of the resource with the given URI.
// Unknown URIs are a Go error; registered resources always succeed.
func (d *Dispatcher) ReadResource(uri string) (string, error) {
	res, ok := d.registry.Resource(uri)
	if !ok {
		return "", errors.ResourceNotFound(uri)
	}
	return res.Handler(), nil
}

// invoke runs the handler and converts its outcome, recovering any
// panic into an error Result.
func invoke(tool Tool, args map[string]any) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Err(errors.New(errors.CodeInternal,
				fmt.Sprintf("tool %q panicked: %v", tool.Name, r)).Error())
		}
	}()

	text, err := tool.Handler(args)
	if err != nil {
		return Err(err.Error())
	}
	return Ok(text)
}

// StringArg extracts a string argument from a loosely-typed argument
// bag, returning the empty string for absent or non-string values.
func StringArg(args map[string]any, key string) string {
	value, _ := args[key].(string)
	return value
}
