package presentation

const (
	ContainerParam = "container"
	WildcardParam  = "*"
	DirectoryTag   = "directory"
	SinceTag       = "since"
	UntilTag       = "until"
	TypeKey        = "Content-Type"
	APIKeyHeader   = "X-API-Key"
	ReasonTag      = "X-Reason"
)
