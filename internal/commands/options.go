package commands

// TocviewOptions holds common command-line flags and options
type TocviewOptions struct {
	OutputFormat string
	Verbosity    int
	Columns      []string
	TableClass   string
	HeadClass    string
}
