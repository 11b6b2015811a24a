// Package model contains data structures for launch parameters of the CLI and the search node, and node DTOs
package model

// InputMode - режим работы CLI, определяется по тому, подключен ли stdin к терминалу
type InputMode string

const (
	ModePipe = InputMode("pipe")
	ModeFile = InputMode("file")
)

// HelpQuery - запрос, при котором путь к файлу не требуется
const HelpQuery = "help"

// EnvIgnoreCase - имя переменной окружения для регистронезависимого поиска в файловом режиме
const EnvIgnoreCase = "IGNORE_CASE"

// Config - параметры одного запуска CLI, после сборки только читается
type Config struct {
	Query      string
	SourcePath string // пустой только для запроса "help"
	IgnoreCase bool
}

// NodeConfig - параметры запуска поискового узла minigrepd
type NodeConfig struct {
	Env     string    `yaml:"env"`
	Address string    `yaml:"address"`
	Log     LogConfig `yaml:"log"`
}

type LogConfig struct {
	File       string `yaml:"file"`        // путь к файлу логов (только env=prod)
	MaxSize    int    `yaml:"max_size"`    // мегабайты
	MaxBackups int    `yaml:"max_backups"` // кол-во архивных файлов
	MaxAge     int    `yaml:"max_age"`     // дни
	Compress   bool   `yaml:"compress"`
}

// SearchRequest - задание на поиск, получаемое узлом по HTTP
type SearchRequest struct {
	RequestID  string `json:"request_id,omitempty"`
	Query      string `json:"query"`
	Contents   string `json:"contents"`
	IgnoreCase bool   `json:"ignore_case"`
}

// SearchResult - ответ узла: найденные строки и их хеш-сумма
type SearchResult struct {
	RequestID string   `json:"request_id"`
	HashSumm  uint64   `json:"hash"`
	Count     int      `json:"count"`
	Matches   []string `json:"matches"`
}
