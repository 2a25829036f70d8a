package global

var (
	DataDir     string
	Debug       bool
	NoPrefix    bool
	Dev         bool
	ForceBinDir bool
	LogStd      bool
)

// EnvPrefix is prepended to every environment override unless NoPrefix is set.
const EnvPrefix = "BLOG_"
