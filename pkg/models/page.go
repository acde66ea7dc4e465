package models

// DataSourceRef points at an external data source a page's bindings use.
// Connection details live with the data-source service, not in the page.
type DataSourceRef struct {
	ID       string            `json:"id"   validate:"required"`
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Endpoint string            `json:"endpoint,omitempty"`
	Headers  map[string]string `json:"headers,omitempty"`
}

// GlobalSettings are the page-level knobs persisted with a definition.
type GlobalSettings struct {
	Theme       string         `json:"theme"`
	GridSize    int            `json:"gridSize"`
	Breakpoints map[string]int `json:"breakpoints"`
}

// DefaultGlobalSettings returns the settings a freshly saved page carries.
func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{
		Theme:    "light",
		GridSize: CellSize,
		Breakpoints: map[string]int{
			"mobile":  768,
			"tablet":  1024,
			"desktop": 1200,
		},
	}
}

// PageDefinition is the persisted unit: the single JSON document
// round-tripped between the builder's save path and the renderer's load
// path. Widget layout is stored in grid units only.
type PageDefinition struct {
	PageID         string                `json:"pageId"   validate:"required"`
	Name           string                `json:"name"     validate:"required"`
	Widgets        []*Widget             `json:"widgets"`
	Layout         map[string]LayoutRect `json:"layout"`
	DataSources    []DataSourceRef       `json:"dataSources"`
	GlobalSettings GlobalSettings        `json:"globalSettings"`
}

// Page is one renderable page of a published app. Definition holds the
// raw page-definition JSON; legacy pages reference flat component ids
// through a "components" list inside that document instead of widgets.
type Page struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Definition string `json:"page_definition"`
}
