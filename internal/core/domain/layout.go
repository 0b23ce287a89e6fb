package domain

import "path/filepath"

const (
	// GameDataDirName is the data directory that sits next to the game executable.
	GameDataDirName = "LimbusCompany_Data"

	// GameExecutableName is the game executable expected in the install root.
	GameExecutableName = "LimbusCompany.exe"

	// LangDirName is the directory under the data directory holding all localizations.
	LangDirName = "Lang"

	// FontDirName is the per-localization directory holding its fonts.
	FontDirName = "Font"

	// FontCacheDirName is the shared, content-addressed font cache under the install root.
	FontCacheDirName = "FontCache"

	// MetadataFileName is the installed metadata document stored in the install root.
	MetadataFileName = "llc_config.toml"

	// GameConfigFileName is the game's active language selection under the Lang directory.
	GameConfigFileName = "config.json"

	// PayloadMarkerDirName marks the payload root inside an extracted archive.
	PayloadMarkerDirName = "StoryData"

	// ArchiveFileName is the archive name used while downloading, also filtered out of payloads.
	ArchiveFileName = "localization.zip"

	// AppDirName is the application directory under the user config location.
	AppDirName = "limbus"

	// SettingsFileName is the application settings document.
	SettingsFileName = "settings.yaml"

	// SteamAppID is the Steam application id of the game.
	SteamAppID = "1973530"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// LangPath returns <root>/LimbusCompany_Data/Lang.
func LangPath(root string) string {
	return filepath.Join(root, GameDataDirName, LangDirName)
}

// LocalizationPath returns the install directory of a localization.
func LocalizationPath(root, id string) string {
	return filepath.Join(LangPath(root), id)
}

// FontPath returns the font directory of an installed localization.
func FontPath(root, id string) string {
	return filepath.Join(LocalizationPath(root, id), FontDirName)
}

// FontCachePath returns the shared font cache directory of an install root.
func FontCachePath(root string) string {
	return filepath.Join(root, FontCacheDirName)
}

// MetadataPath returns the installed metadata file of an install root.
func MetadataPath(root string) string {
	return filepath.Join(root, MetadataFileName)
}

// GameConfigPath returns the game's language selection file.
func GameConfigPath(root string) string {
	return filepath.Join(LangPath(root), GameConfigFileName)
}
