package logs_parsing

import "time"

var parser = &Parser{
	nowFunc: time.Now,
}

func GetParser() *Parser {
	return parser
}
