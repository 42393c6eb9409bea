package config

import "flag"

var (
	Dev      bool
	LogPath  string
	Model    string
	Endpoint string
	EnvFile  string
)

func Init() {
	flag.BoolVar(&Dev, "dev", false, "Development mode")
	flag.StringVar(&LogPath, "logPath", "", "Path to save the log file")
	flag.StringVar(&Model, "model", "", "Model id to chat with (defaults to the built-in free model)")
	flag.StringVar(&Endpoint, "endpoint", "", "Override the provider base URL, e.g. https://openrouter.ai")
	flag.StringVar(&EnvFile, "envFile", ".env", "Path to the env file holding the API key")
	flag.Parse()
}
