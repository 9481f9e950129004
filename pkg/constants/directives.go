package constants

// Line prefixes recognised in ConfigFile.
const (
	RetainDirective  = "Number of files"
	PathDirective    = "Path:"
	PatternDirective = "Pattern:"
)

// DefaultPattern matches every file name.
const DefaultPattern = "*"
