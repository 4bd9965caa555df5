package models

// RetrieverConfig holds the connection and query settings for one mailbox.
// It is constructed once by merging caller overrides onto the defaults and
// is read-only afterwards.
type RetrieverConfig struct {
	Address   string `yaml:"address"`
	Port      int    `yaml:"port"`
	UserName  string `yaml:"userName"`
	Password  string `yaml:"password"`
	Mailbox   string `yaml:"mailbox"`
	Query     string `yaml:"query"`
	EnableSSL bool   `yaml:"enableSsl"`
}
