package models

// BindingSource tells the resolver how a widget's data is obtained.
type BindingSource string

const (
	BindingStatic   BindingSource = "static"
	BindingAPI      BindingSource = "api"
	BindingDatabase BindingSource = "database"
	BindingComputed BindingSource = "computed"
)

// DataBinding describes a declarative source of external data feeding a
// widget's props. Only the fields relevant to Source are interpreted.
type DataBinding struct {
	Source             BindingSource  `json:"source"                       validate:"required,oneof=static api database computed"`
	Endpoint           string         `json:"endpoint,omitempty"`
	Query              string         `json:"query,omitempty"`
	DataSourceID       string         `json:"dataSourceId,omitempty"`
	XField             string         `json:"xField,omitempty"`
	YField             string         `json:"yField,omitempty"`
	StaticData         []any          `json:"staticData,omitempty"`
	ComputedExpression string         `json:"computedExpression,omitempty"`
	Environment        map[string]any `json:"environment,omitempty"`
	RefreshInterval    int            `json:"refreshInterval,omitempty"    validate:"min=0"`
}

// Clone returns a copy that shares no mutable state with the receiver.
func (b DataBinding) Clone() DataBinding {
	clone := b
	clone.Environment = CloneMap(b.Environment)

	if b.StaticData != nil {
		clone.StaticData = make([]any, len(b.StaticData))
		for i, row := range b.StaticData {
			clone.StaticData[i] = cloneValue(row)
		}
	}

	return clone
}

// QueryResult is the shape returned by the query-execution collaborator.
type QueryResult struct {
	Success         bool     `json:"success"`
	Data            []any    `json:"data,omitempty"`
	Columns         []string `json:"columns,omitempty"`
	RowCount        int      `json:"row_count"`
	Error           string   `json:"error,omitempty"`
	ExecutionTimeMS int64    `json:"execution_time_ms,omitempty"`
}
