package config

// Settings is the unified representation of the optional configuration
// file. A nil field means the file did not set it.
type Settings struct {
	Prompt    *string
	Banner    *bool
	LogLevel  *string
	LogFormat *string

	// Sources lists the files the settings were read from, in load order.
	Sources []string
}

// Merge copies every field set in other over s.
func (s *Settings) Merge(other *Settings) {
	if other == nil {
		return
	}
	if other.Prompt != nil {
		s.Prompt = other.Prompt
	}
	if other.Banner != nil {
		s.Banner = other.Banner
	}
	if other.LogLevel != nil {
		s.LogLevel = other.LogLevel
	}
	if other.LogFormat != nil {
		s.LogFormat = other.LogFormat
	}
	s.Sources = append(s.Sources, other.Sources...)
}
