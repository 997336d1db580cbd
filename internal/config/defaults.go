package config

const (
	defaultOutputDir     = "compressed_videos"
	defaultStateDir      = "~/.local/share/squish"
	defaultLogDir        = "~/.local/share/squish/logs"
	defaultFFmpegBinary  = "ffmpeg"
	defaultFFprobeBinary = "ffprobe"
	defaultEncodeTimeout = 1800
	defaultHardwareProbe = 15
	defaultPresetName    = "medium"
	defaultSizeLimitMB   = 25
	defaultMaxWidth      = 1280
	defaultMaxHeight     = 720
	defaultAudioBitrate  = "128k"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			StateDir:  defaultStateDir,
			LogDir:    defaultLogDir,
		},
		FFmpeg: FFmpeg{
			Binary:         defaultFFmpegBinary,
			ProbeBinary:    defaultFFprobeBinary,
			EncodeTimeout:  defaultEncodeTimeout,
			HardwareProbes: defaultHardwareProbe,
		},
		Compression: Compression{
			DefaultPreset: defaultPresetName,
			SizeLimitMB:   defaultSizeLimitMB,
			MaxWidth:      defaultMaxWidth,
			MaxHeight:     defaultMaxHeight,
			AudioBitrate:  defaultAudioBitrate,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
