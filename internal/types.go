package internal

// Demo is a single entry of the catalog
type Demo struct {
	Name    string
	Summary string
	Run     func(p *printer)
}

// Config holds the parsed command-line settings
type Config struct {
	Only    string
	List    bool
	Format  string
	Verbose bool
	Help    bool
	Version bool
}
