package savings

// Config defines configuration of application. Values are parsed from environment variables.
type Config struct {
	InitDebug      bool   `split_words:"true"`
	LogFormat      string `split_words:"true" default:"text"`
	AccountNumber  string `split_words:"true"`
	OwnerName      string `split_words:"true"`
	CurrencySymbol string `split_words:"true" default:"$"`
}
