// Package palette holds the static widget catalog: every placeable widget
// kind with its display name, category and default props. New widgets are
// seeded from this catalog; unknown types simply miss the catalog and fall
// through to the renderer's fallback.
package palette

import "github.com/pageforge/pageforge/pkg/models"

// Entry describes one palette item.
type Entry struct {
	Type         models.WidgetType `json:"type"`
	Name         string            `json:"name"`
	Category     string            `json:"category"`
	DefaultProps map[string]any    `json:"defaultProps"`
}

var catalog = []Entry{
	{Type: models.WidgetButton, Name: "Button", Category: "Basic",
		DefaultProps: map[string]any{"text": "Click me", "variant": "contained", "color": "primary"}},
	{Type: models.WidgetText, Name: "Text", Category: "Basic",
		DefaultProps: map[string]any{"text": "Sample text", "variant": "body1"}},
	{Type: models.WidgetInput, Name: "Input Field", Category: "Form",
		DefaultProps: map[string]any{"label": "Enter text", "placeholder": "Type here...", "type": "text"}},
	{Type: models.WidgetTextarea, Name: "Text Area", Category: "Form",
		DefaultProps: map[string]any{"label": "Message", "placeholder": "Enter your message...", "rows": 4}},
	{Type: models.WidgetSelect, Name: "Select Dropdown", Category: "Form",
		DefaultProps: map[string]any{"label": "Choose option", "options": []any{"Option 1", "Option 2", "Option 3"}}},
	{Type: models.WidgetCheckbox, Name: "Checkbox", Category: "Form",
		DefaultProps: map[string]any{"label": "Check me", "checked": false}},
	{Type: models.WidgetRadio, Name: "Radio Button", Category: "Form",
		DefaultProps: map[string]any{"label": "Select option", "value": "option1"}},
	{Type: models.WidgetForm, Name: "Form", Category: "Form",
		DefaultProps: map[string]any{"fields": []any{}, "submitText": "Submit", "resetText": "Reset"}},

	{Type: models.WidgetContainer, Name: "Container", Category: "Layout",
		DefaultProps: map[string]any{"padding": "16px", "backgroundColor": "transparent"}},
	{Type: models.WidgetCard, Name: "Card", Category: "Layout",
		DefaultProps: map[string]any{"title": "Card Title", "content": "Card content goes here", "elevation": 1}},
	{Type: models.WidgetGrid, Name: "Grid", Category: "Layout",
		DefaultProps: map[string]any{"columns": 2, "spacing": 2, "items": []any{}}},
	{Type: models.WidgetFlex, Name: "Flex Container", Category: "Layout",
		DefaultProps: map[string]any{"direction": "row", "justify": "flex-start", "align": "stretch"}},
	{Type: models.WidgetHeader, Name: "Header", Category: "Layout",
		DefaultProps: map[string]any{"title": "Page Header", "subtitle": "Page subtitle"}},
	{Type: models.WidgetFooter, Name: "Footer", Category: "Layout",
		DefaultProps: map[string]any{"content": "© 2024 My App. All rights reserved."}},
	{Type: models.WidgetSidebar, Name: "Sidebar", Category: "Layout",
		DefaultProps: map[string]any{"items": []any{"Menu 1", "Menu 2", "Menu 3"}, "width": 250}},
	{Type: models.WidgetDivider, Name: "Divider", Category: "Layout",
		DefaultProps: map[string]any{"orientation": "horizontal", "variant": "fullWidth"}},

	{Type: models.WidgetNavbar, Name: "Navigation Bar", Category: "Navigation",
		DefaultProps: map[string]any{
			"brand": "My App", "links": []any{"Home", "About", "Contact"},
			"width": "100%", "height": "64px", "backgroundColor": "primary.main",
			"textColor": "white", "position": "fixed", "top": "0px", "left": "0px",
			"elevation": 1, "zIndex": 1000,
		}},
	{Type: models.WidgetBreadcrumb, Name: "Breadcrumb", Category: "Navigation",
		DefaultProps: map[string]any{"items": []any{"Home", "Category", "Current Page"}}},
	{Type: models.WidgetPagination, Name: "Pagination", Category: "Navigation",
		DefaultProps: map[string]any{"page": 1, "totalPages": 10, "showFirstLast": true}},
	{Type: models.WidgetTabs, Name: "Tabs", Category: "Navigation",
		DefaultProps: map[string]any{"tabs": []any{"Tab 1", "Tab 2", "Tab 3"}, "activeTab": 0}},

	{Type: models.WidgetTable, Name: "Table", Category: "Data",
		DefaultProps: map[string]any{"rows": 3, "columns": 3, "showHeaders": true}},
	{Type: models.WidgetList, Name: "List", Category: "Data",
		DefaultProps: map[string]any{"items": []any{"Item 1", "Item 2", "Item 3"}, "ordered": false}},
	{Type: models.WidgetChart, Name: "Chart", Category: "Data",
		DefaultProps: map[string]any{
			"type": "bar",
			"data": []any{
				map[string]any{"label": "Jan", "value": 100},
				map[string]any{"label": "Feb", "value": 150},
				map[string]any{"label": "Mar", "value": 200},
				map[string]any{"label": "Apr", "value": 120},
			},
			"title": "Sales Chart", "dataSource": "", "query": "",
			"xAxis": "label", "yAxis": "value",
		}},

	{Type: models.WidgetImage, Name: "Image", Category: "Media",
		DefaultProps: map[string]any{"src": "https://via.placeholder.com/150", "alt": "Placeholder image"}},
	{Type: models.WidgetCarousel, Name: "Carousel", Category: "Media",
		DefaultProps: map[string]any{"images": []any{}, "autoPlay": true, "interval": 3000}},

	{Type: models.WidgetAlert, Name: "Alert", Category: "Feedback",
		DefaultProps: map[string]any{"message": "This is an alert", "type": "info", "dismissible": true}},
	{Type: models.WidgetBadge, Name: "Badge", Category: "Feedback",
		DefaultProps: map[string]any{"text": "New", "color": "primary", "variant": "standard"}},
	{Type: models.WidgetProgress, Name: "Progress Bar", Category: "Feedback",
		DefaultProps: map[string]any{"value": 50, "max": 100, "variant": "determinate"}},
	{Type: models.WidgetSpinner, Name: "Loading Spinner", Category: "Feedback",
		DefaultProps: map[string]any{"size": "medium", "color": "primary"}},

	{Type: models.WidgetModal, Name: "Modal", Category: "Advanced",
		DefaultProps: map[string]any{"title": "Modal Title", "content": "Modal content", "open": false}},
	{Type: models.WidgetAccordion, Name: "Accordion", Category: "Advanced",
		DefaultProps: map[string]any{"items": []any{map[string]any{"title": "Section 1", "content": "Content 1"}}}},
	{Type: models.WidgetStepper, Name: "Stepper", Category: "Advanced",
		DefaultProps: map[string]any{"steps": []any{"Step 1", "Step 2", "Step 3"}, "activeStep": 0}},
	{Type: models.WidgetTimeline, Name: "Timeline", Category: "Advanced",
		DefaultProps: map[string]any{"events": []any{map[string]any{"title": "Event 1", "date": "2024-01-01"}}}},
}

var byType = func() map[models.WidgetType]Entry {
	index := make(map[models.WidgetType]Entry, len(catalog))
	for _, entry := range catalog {
		index[entry.Type] = entry
	}

	return index
}()

// Lookup returns the palette entry for a widget type.
func Lookup(widgetType models.WidgetType) (Entry, bool) {
	entry, ok := byType[widgetType]

	return entry, ok
}

// DisplayName returns the human label for a widget type, falling back to
// the raw type string for unknown kinds.
func DisplayName(widgetType models.WidgetType) string {
	if entry, ok := byType[widgetType]; ok {
		return entry.Name
	}

	return string(widgetType)
}

// DefaultProps returns a fresh copy of a type's default props; callers may
// mutate the result freely.
func DefaultProps(widgetType models.WidgetType) map[string]any {
	if entry, ok := byType[widgetType]; ok {
		return models.CloneMap(entry.DefaultProps)
	}

	return map[string]any{}
}

// Entries returns the full catalog in display order.
func Entries() []Entry {
	return catalog
}

// Categories returns the distinct category labels in catalog order.
func Categories() []string {
	seen := make(map[string]bool)
	categories := make([]string, 0, 8)

	for _, entry := range catalog {
		if !seen[entry.Category] {
			seen[entry.Category] = true
			categories = append(categories, entry.Category)
		}
	}

	return categories
}
