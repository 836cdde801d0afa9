package config

// Config is the full chat toolkit configuration. Zero values are filled by
// Default and out-of-range values are clamped by Normalize, so a partially
// specified file still yields a usable configuration.
type Config struct {
	Features    FeaturesConfig    `yaml:"features"`
	Behavior    BehaviorConfig    `yaml:"behavior"`
	UI          UIConfig          `yaml:"ui"`
	Performance PerformanceConfig `yaml:"performance"`
	Development DevelopmentConfig `yaml:"development"`
}

// FeaturesConfig toggles optional chat capabilities.
type FeaturesConfig struct {
	Reactions      bool `yaml:"reactions"`
	Replies        bool `yaml:"replies"`
	Editing        bool `yaml:"editing"`
	Deletion       bool `yaml:"deletion"`
	Pinning        bool `yaml:"pinning"`
	Forwarding     bool `yaml:"forwarding"`
	Typing         bool `yaml:"typing"`
	Search         bool `yaml:"search"`
	MediaUploads   bool `yaml:"media_uploads"`
	ReadReceipts   bool `yaml:"read_receipts"`
	SystemMessages bool `yaml:"system_messages"`
}

// BehaviorConfig bounds message content and chat membership.
type BehaviorConfig struct {
	MaxMessageLength int   `yaml:"max_message_length"`
	MaxFileSize      int64 `yaml:"max_file_size"`
	MaxImageSize     int64 `yaml:"max_image_size"`
	MaxVideoSize     int64 `yaml:"max_video_size"`
	MaxAudioSize     int64 `yaml:"max_audio_size"`
	MaxParticipants  int   `yaml:"max_participants"`
	RetentionDays    int   `yaml:"retention_days"`
}

// UIConfig selects presentation options.
type UIConfig struct {
	Theme          string `yaml:"theme" validate:"omitempty,oneof=default dark"`
	BubbleStyle    string `yaml:"bubble_style" validate:"omitempty,oneof=default compact"`
	ShowTimestamps bool   `yaml:"show_timestamps"`
	ShowAvatars    bool   `yaml:"show_avatars"`
	Unicode        bool   `yaml:"unicode"`
}

// PerformanceConfig bounds client-side caches and paging.
type PerformanceConfig struct {
	MessageCacheSize int `yaml:"message_cache_size"`
	MediaCacheSize   int `yaml:"media_cache_size"`
	PageSize         int `yaml:"page_size"`
}

// DevelopmentConfig controls diagnostics.
type DevelopmentConfig struct {
	Debug    bool   `yaml:"debug"`
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Features: FeaturesConfig{
			Reactions:      true,
			Replies:        true,
			Editing:        true,
			Deletion:       true,
			Pinning:        true,
			Forwarding:     true,
			Typing:         true,
			Search:         true,
			MediaUploads:   true,
			ReadReceipts:   true,
			SystemMessages: true,
		},
		Behavior: BehaviorConfig{
			MaxMessageLength: 2000,
			MaxFileSize:      50 * 1024 * 1024,
			MaxImageSize:     10 * 1024 * 1024,
			MaxVideoSize:     100 * 1024 * 1024,
			MaxAudioSize:     25 * 1024 * 1024,
			MaxParticipants:  1000,
			RetentionDays:    365,
		},
		UI: UIConfig{
			Theme:          "default",
			BubbleStyle:    "default",
			ShowTimestamps: true,
			ShowAvatars:    true,
			Unicode:        true,
		},
		Performance: PerformanceConfig{
			MessageCacheSize: 1000,
			MediaCacheSize:   100,
			PageSize:         50,
		},
		Development: DevelopmentConfig{
			LogLevel: "info",
		},
	}
}

// Documented floors for the numeric limits. A file may set any value; the
// normalize pass raises sub-minimum values to these instead of rejecting
// the file.
const (
	minMessageLength    = 1
	minMediaSize        = 1024
	minParticipants     = 1
	minRetentionDays    = 1
	minMessageCacheSize = 10
	minMediaCacheSize   = 5
	minPageSize         = 1
)

// Normalize fills unset string fields from the defaults and clamps
// out-of-range numeric values to their documented minimums.
func (c *Config) Normalize() {
	def := Default()

	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
	if c.UI.BubbleStyle == "" {
		c.UI.BubbleStyle = def.UI.BubbleStyle
	}
	if c.Development.LogLevel == "" {
		c.Development.LogLevel = def.Development.LogLevel
	}

	if c.Behavior.MaxMessageLength < minMessageLength {
		c.Behavior.MaxMessageLength = minMessageLength
	}
	if c.Behavior.MaxFileSize < minMediaSize {
		c.Behavior.MaxFileSize = minMediaSize
	}
	if c.Behavior.MaxImageSize < minMediaSize {
		c.Behavior.MaxImageSize = minMediaSize
	}
	if c.Behavior.MaxVideoSize < minMediaSize {
		c.Behavior.MaxVideoSize = minMediaSize
	}
	if c.Behavior.MaxAudioSize < minMediaSize {
		c.Behavior.MaxAudioSize = minMediaSize
	}
	if c.Behavior.MaxParticipants < minParticipants {
		c.Behavior.MaxParticipants = minParticipants
	}
	if c.Behavior.RetentionDays < minRetentionDays {
		c.Behavior.RetentionDays = minRetentionDays
	}

	if c.Performance.MessageCacheSize < minMessageCacheSize {
		c.Performance.MessageCacheSize = minMessageCacheSize
	}
	if c.Performance.MediaCacheSize < minMediaCacheSize {
		c.Performance.MediaCacheSize = minMediaCacheSize
	}
	if c.Performance.PageSize < minPageSize {
		c.Performance.PageSize = minPageSize
	}
}
