package cubeturn

// FormatOption configures FormatFace and FormatCube output.
type FormatOption func(*formatConfig)

type formatConfig struct {
	delimiter string
	letters   bool
}

// DefaultDelimiter separates cells within a row.
const DefaultDelimiter = " | "

func defaultFormatConfig() *formatConfig {
	return &formatConfig{
		delimiter: DefaultDelimiter,
		letters:   false,
	}
}

// WithDelimiter sets the string placed between cells of a row.
func WithDelimiter(d string) FormatOption {
	return func(c *formatConfig) {
		c.delimiter = d
	}
}

// WithLetters prints single-letter colors (G, R, W, ...) instead of full
// color names.
func WithLetters(enabled bool) FormatOption {
	return func(c *formatConfig) {
		c.letters = enabled
	}
}
