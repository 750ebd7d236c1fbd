package internal

const (
	Version   = "1.0.0"
	Greeting  = "Hello Gerald!"
	LogPrefix = "[goprimer] "

	FormatText = "text"
	FormatYAML = "yaml"
)

// PI is read by the const demo.
const PI float32 = 3.141
