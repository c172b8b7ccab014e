package config

const (
	defaultBind               = "127.0.0.1:8870"
	defaultStaticDir          = "client"
	defaultRequestTimeout     = 120
	defaultLockPath           = "~/.local/share/sublate/sublate.lock"
	defaultCaptionStrategy    = "timedtext"
	defaultSourceLanguage     = "en"
	defaultCaptionBaseURL     = "https://www.youtube.com"
	defaultTranslatorBaseURL  = "https://generativelanguage.googleapis.com"
	defaultTranslatorModel    = "gemini-2.0-flash"
	defaultTranslatorTimeout  = 60
	defaultOutputMode         = "plain"
	defaultWordsPerCue        = 5
	defaultCueSeconds         = 2.0
	defaultHistoryPath        = "~/.local/share/sublate/history.db"
	defaultLogLevel           = "info"
	defaultLogFormat          = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Bind:           defaultBind,
			StaticDir:      defaultStaticDir,
			AllowedOrigins: []string{"*"},
			RequestTimeout: defaultRequestTimeout,
			LockPath:       defaultLockPath,
		},
		Captions: Captions{
			Strategy:       defaultCaptionStrategy,
			SourceLanguage: defaultSourceLanguage,
			BaseURL:        defaultCaptionBaseURL,
		},
		Translator: Translator{
			BaseURL:        defaultTranslatorBaseURL,
			Model:          defaultTranslatorModel,
			TimeoutSeconds: defaultTranslatorTimeout,
			OutputMode:     defaultOutputMode,
		},
		Subtitles: Subtitles{
			WordsPerCue: defaultWordsPerCue,
			CueSeconds:  defaultCueSeconds,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
