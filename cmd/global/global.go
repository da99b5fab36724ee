package global

const (
	OutputTable = "table"
	OutputJson  = "json"
	OutputYaml  = "yaml"
)

var (
	CfgFile string
	NoColor bool
	NoStyle bool
	Verbose bool
)
