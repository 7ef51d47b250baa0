package presenters

// Presenter defines how data should be formatted for output
type Presenter interface {
	// Title returns the title of the output (for table/text views)
	Title() string

	// Headers returns the column headers for table/csv views
	Headers() []string

	// Rows returns the stringified data for table/csv/text views
	Rows() [][]string

	// Raw returns the underlying data structure for JSON/YAML output
	Raw() interface{}
}

// MarkupPresenter is implemented by presenters that can emit HTML directly
type MarkupPresenter interface {
	Presenter
	Markup() string
}
