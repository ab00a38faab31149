package ecosystems

// detectRuby marks Ruby projects by their Gemfile. A rackup file or the
// conventional config/application.rb indicates Rails.
func detectRuby(fs FSReader, info *ProjectInfo) {
	if !fs.Has("Gemfile") {
		return
	}

	info.Language = "Ruby"
	info.PackageManager = "bundler"

	if fs.Has("config.ru") || fs.Has("config/application.rb") {
		info.Type, info.Framework = TypeBackend, "Ruby on Rails"
	}
}
