package config

// File represents the structure of the .shipreport configuration file.
// Every field is optional; zero values leave the built-in defaults alone.
type File struct {
	// Format is the default report format for generate.
	Format string `yaml:"format,omitempty"`

	// Output is the default output file for generate.
	Output string `yaml:"output,omitempty"`

	// DBDir overrides the database directory.
	DBDir string `yaml:"dbDir,omitempty"`

	// Export holds the defaults for the export command.
	Export ExportFile `yaml:"export,omitempty"`
}

// ExportFile is the export section of the configuration file.
type ExportFile struct {
	// Dir is the directory export writes to.
	Dir string `yaml:"dir,omitempty"`

	// Formats are the format names export renders.
	Formats []string `yaml:"formats,omitempty"`

	// Basename is the export file name without extension.
	Basename string `yaml:"basename,omitempty"`

	// Concurrency is the number of formats rendered at once.
	Concurrency int `yaml:"concurrency,omitempty"`
}

// Apply copies the values set in the file over c.
// Command-line flags are applied afterwards and take precedence.
func (cf *File) Apply(c *Config) {
	if cf == nil {
		return
	}
	if cf.Format != "" {
		c.Format = cf.Format
	}
	if cf.Output != "" {
		c.OutputFile = cf.Output
	}
	if cf.DBDir != "" {
		c.DBDir = cf.DBDir
	}
	if cf.Export.Dir != "" {
		c.ExportDir = cf.Export.Dir
	}
	if len(cf.Export.Formats) > 0 {
		c.ExportFormats = append([]string(nil), cf.Export.Formats...)
	}
	if cf.Export.Basename != "" {
		c.Basename = cf.Export.Basename
	}
	if cf.Export.Concurrency != 0 {
		c.Concurrency = cf.Export.Concurrency
	}
}
