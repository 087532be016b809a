package dispatch

import "fmt"

// ToolHandler executes a tool with its merged argument map and returns
// the response text. A returned error becomes an error Result; the
// handler never talks to a transport directly.
type ToolHandler func(args map[string]any) (string, error)

// ResourceHandler produces a resource's text. Resources are always
// successful reads; a missing backing document is reported inside the
// text itself.
type ResourceHandler func() string

// Param describes one tool parameter. All catalog parameters are
// strings; Default is applied by the dispatcher when an optional
// parameter is absent.
type Param struct {
	Name        string
	Description string
	Required    bool
	Default     string
}

// Tool is a named, possibly side-effecting operation invocable by the
// agent.
type Tool struct {
	Name        string
	Description string
	Params      []Param
	Handler     ToolHandler
}

// Resource is a named, read-only, argument-free document fetch
// addressed by URI.
type Resource struct {
	Name        string
	URI         string
	Description string
	MIMEType    string
	Handler     ResourceHandler
}

// Registry is the immutable operation table. It is populated exactly
// once at startup from the fixed catalog and treated as read-only
// thereafter; both transport adapters resolve against the same
// instance.
type Registry struct {
	tools         map[string]Tool
	toolOrder     []string
	resources     map[string]Resource
	resourceOrder []string
}

// NewRegistry builds a registry from the given operations. Names and
// URIs must be unique within their kind.
func NewRegistry(tools []Tool, resources []Resource) (*Registry, error) {
	r := &Registry{
		tools:     make(map[string]Tool, len(tools)),
		resources: make(map[string]Resource, len(resources)),
	}

	for _, tool := range tools {
		if tool.Name == "" || tool.Handler == nil {
			return nil, fmt.Errorf("tool %q must have a name and a handler", tool.Name)
		}
		if _, exists := r.tools[tool.Name]; exists {
			return nil, fmt.Errorf("duplicate tool name %q", tool.Name)
		}
		r.tools[tool.Name] = tool
		r.toolOrder = append(r.toolOrder, tool.Name)
	}

	for _, res := range resources {
		if res.URI == "" || res.Handler == nil {
			return nil, fmt.Errorf("resource %q must have a URI and a handler", res.URI)
		}
		if _, exists := r.resources[res.URI]; exists {
			return nil, fmt.Errorf("duplicate resource URI %q", res.URI)
		}
		r.resources[res.URI] = res
		r.resourceOrder = append(r.resourceOrder, res.URI)
	}

	return r, nil
}

// Tool looks up a tool by name.
func (r *Registry) Tool(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Tools returns all tools in registration order.
func (r *Registry) Tools() []Tool {
	tools := make([]Tool, 0, len(r.toolOrder))
	for _, name := range r.toolOrder {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// Resource looks up a resource by URI.
func (r *Registry) Resource(uri string) (Resource, bool) {
	res, ok := r.resources[uri]
	return res, ok
}

// Resources returns all resources in registration order.
func (r *Registry) Resources() []Resource {
	resources := make([]Resource, 0, len(r.resourceOrder))
	for _, uri := range r.resourceOrder {
		resources = append(resources, r.resources[uri])
	}
	return resources
}
