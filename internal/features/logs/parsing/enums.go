package logs_parsing

type LogFormat string

const (
	LogFormatClient LogFormat = "client"
	LogFormatServer LogFormat = "server"
)

func (f LogFormat) IsValid() bool {
	switch f {
	case LogFormatClient, LogFormatServer:
		return true
	default:
		return false
	}
}
